// storage описывает порт долговременного key-value хранилища.
//
// Хранилище — внешний ресурс с семантикой «последняя запись побеждает».
// Ядро пишет в него по принципу best-effort и читает только при гидратации
// на старте сессии; обратного чтения внутри перехода состояния нет.
package storage

import (
	"context"
	"errors"
)

// Ключи, под которыми ядро хранит производные проекции состояния.
const (
	// KeyFavorites — JSON-массив id избранного.
	KeyFavorites = "favorites"
	// KeyLanguage — код языка, сырой строкой.
	KeyLanguage = "language"
	// KeyUser — сериализованный пользователь сессии.
	KeyUser = "user"
	// KeyAuthenticated — строки "true"/"false".
	KeyAuthenticated = "isAuthenticated"
)

// ErrNotFound — значение по ключу отсутствует.
var ErrNotFound = errors.New("not found")

// KV — минимальный контракт строкового key-value хранилища.
type KV interface {
	// Get возвращает значение по ключу; ErrNotFound, если ключа нет.
	Get(ctx context.Context, key string) (string, error)
	// Set записывает значение по ключу.
	Set(ctx context.Context, key, value string) error
	// Remove удаляет ключ. Отсутствие ключа — не ошибка.
	Remove(ctx context.Context, key string) error
}
