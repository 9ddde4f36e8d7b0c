// query реализует кэширующий слой загрузки данных.
//
// Кэш ключуется парой (вид сущности, страница-или-ничего). Конкурентные
// запросы по одинаковому ключу дедуплицируются; неудачные загрузки
// повторяются с ограниченным числом попыток. Ошибки не кэшируются и
// отдаются вызывающему как есть — повторный вызов запускает загрузку заново.
package query

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

// Виды сущностей в ключах кэша.
const (
	KindCharacters = "characters"
	KindNews       = "news"
	KindUsers      = "users"
)

// Key — ключ кэша. Для непагинированных видов Page равен 0.
type Key struct {
	Kind string
	Page int
}

// String возвращает строковую форму ключа для группы дедупликации.
func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Kind, k.Page)
}

// Cache — кэш результатов загрузки с дедупликацией и повторами.
type Cache struct {
	log *slog.Logger

	mu      sync.RWMutex
	entries map[Key]any

	group singleflight.Group

	// maxRetries — число повторов после первой неудачной попытки.
	maxRetries uint64
	// initialInterval — стартовый интервал экспоненциального бэкоффа.
	initialInterval time.Duration
}

// NewCache создаёт кэш с политикой повторов maxRetries.
func NewCache(maxRetries uint64, log *slog.Logger) *Cache {
	return &Cache{
		log:             log,
		entries:         make(map[Key]any),
		maxRetries:      maxRetries,
		initialInterval: 500 * time.Millisecond,
	}
}

// do возвращает кэшированный результат по ключу либо выполняет fn
// с повторами и кэширует успех. Одновременные вызовы по одному ключу
// сводятся к одной загрузке.
func (c *Cache) do(ctx context.Context, key Key, fn func(ctx context.Context) (any, error)) (any, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		return cached, nil
	}

	val, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Ключ мог быть заполнен, пока мы ждали группу.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()

		if ok {
			return cached, nil
		}

		var out any
		attempt := func() error {
			res, err := fn(ctx)
			if err != nil {
				return err
			}

			out = res

			return nil
		}

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = c.initialInterval

		policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)

		if err := backoff.Retry(attempt, policy); err != nil {
			c.log.Warn("cache_fetch_failed",
				slog.String("key", key.String()),
				slog.String("err", err.Error()),
			)

			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = out
		c.mu.Unlock()

		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return val, nil
}

// Invalidate сбрасывает ключ: следующий запрос загрузит данные заново.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
