package redis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Лёгкие unit-тесты адаптера без живого Redis: префиксация ключей и
// валидация URL. Интеграционное поведение закрыто контрактом storage.KV
// и mock-хранилищем в тестах верхних слоёв.

func TestKeyPrefix(t *testing.T) {
	t.Parallel()

	s := &Storage{prefix: "charhub:"}
	require.Equal(t, "charhub:favorites", s.key("favorites"))

	s = &Storage{prefix: "test:"}
	require.Equal(t, "test:language", s.key("language"))
}

func TestNew_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := New("not-a-url", "")
	require.Error(t, err)
}
