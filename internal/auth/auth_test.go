package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvoronina/charhub/internal/models"
)

// Файл unit-тестов локальной проверки учётных данных.
//
// Покрываем исходы валидации:
//  - пустые поля — ErrEmptyFields, список не просматривается;
//  - нет совпадения по имени или паролю — ErrInvalidCredentials;
//  - совпадение по открытому паролю — копия пользователя;
//  - совпадение по bcrypt-хэшу, когда он задан.

func mockUsers() []models.User {
	return []models.User{
		{ID: 1, Login: models.Credentials{Username: "rick", Password: "portalgun"}},
		{ID: 2, Login: models.Credentials{Username: "morty", Password: "jessica"}},
	}
}

func TestAuthenticate_EmptyFields(t *testing.T) {
	t.Parallel()

	_, err := Authenticate(mockUsers(), "", "portalgun")
	require.ErrorIs(t, err, ErrEmptyFields)

	_, err = Authenticate(mockUsers(), "rick", "")
	require.ErrorIs(t, err, ErrEmptyFields)
}

func TestAuthenticate_NoMatch(t *testing.T) {
	t.Parallel()

	_, err := Authenticate(mockUsers(), "nobody", "portalgun")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(mockUsers(), "rick", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_PlainPasswordMatch(t *testing.T) {
	t.Parallel()

	u, err := Authenticate(mockUsers(), "morty", "jessica")
	require.NoError(t, err)
	require.Equal(t, 2, u.ID)
}

func TestAuthenticate_ReturnsCopy(t *testing.T) {
	t.Parallel()

	users := mockUsers()

	u, err := Authenticate(users, "rick", "portalgun")
	require.NoError(t, err)

	u.FirstName = "changed"
	require.NotEqual(t, u.FirstName, users[0].FirstName)
}

func TestAuthenticate_BcryptHashMatch(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("wubba"), bcrypt.MinCost)
	require.NoError(t, err)

	users := []models.User{{
		ID: 3,
		Login: models.Credentials{
			Username:     "birdperson",
			PasswordHash: string(hash),
		},
	}}

	u, err := Authenticate(users, "birdperson", "wubba")
	require.NoError(t, err)
	require.Equal(t, 3, u.ID)

	_, err = Authenticate(users, "birdperson", "lubba")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
