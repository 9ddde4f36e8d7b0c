// redis — адаптер порта storage.KV поверх Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mvoronina/charhub/internal/storage"
)

// Storage — key-value хранилище на Redis-клиенте.
type Storage struct {
	rdb    *redis.Client
	prefix string
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "charhub:".
func New(redisURL, prefix string) (*Storage, error) {
	const op = "storage.redis.New"

	if prefix == "" {
		prefix = "charhub:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{rdb: rdb, prefix: prefix}, nil
}

func (s *Storage) key(k string) string { return s.prefix + k }

// Get возвращает значение по ключу; storage.ErrNotFound, если ключа нет.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}

		return "", err
	}

	return val, nil
}

// Set записывает значение по ключу без TTL: проекции состояния
// живут до следующей перезаписи.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.key(key), value, 0).Err()
}

// Remove удаляет ключ; отсутствие ключа не считается ошибкой.
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}

// Close закрывает клиент Redis.
func (s *Storage) Close() error { return s.rdb.Close() }
