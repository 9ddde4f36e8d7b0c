// auth содержит локальную проверку учётных данных по замоканному
// списку пользователей.
//
// Исход проверки — не исключение, а локальный результат валидации:
// сентинельные ошибки ниже транслируются слоем приложения в строки
// сообщений для экрана логина.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvoronina/charhub/internal/models"
)

var (
	// ErrEmptyFields — не заполнены имя пользователя или пароль.
	ErrEmptyFields = errors.New("empty credentials")
	// ErrInvalidCredentials — подходящий пользователь не найден.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authenticate ищет в users пользователя с совпадающими учётными данными.
// Возвращает копию найденного пользователя либо сентинельную ошибку.
func Authenticate(users []models.User, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyFields
	}

	for i := range users {
		if match(users[i].Login, username, password) {
			u := users[i]
			return &u, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// match сравнивает учётные данные: при наличии bcrypt-хэша пароль
// проверяется по хэшу, иначе — по открытому значению.
func match(c models.Credentials, username, password string) bool {
	if c.Username != username {
		return false
	}

	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}

	return c.Password == password
}
