// middleware содержит наблюдателей конвейера диспетчеризации,
// зеркалирующих отдельные переходы состояния в долговременное хранилище.
//
// Общий контракт:
//   - действие передаётся дальше безусловно и возвращается как есть;
//   - запись в хранилище — best-effort: ошибка логируется и гасится,
//     до диспетчера она не доходит;
//   - записи выполняются в порядке диспетчеризации действий.
package middleware

import (
	"context"
	"log/slog"
	"time"
)

// writeTimeout ограничивает каждую запись в хранилище.
const writeTimeout = 3 * time.Second

func writeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), writeTimeout)
}

func warn(log *slog.Logger, event string, err error) {
	if log == nil {
		return
	}

	log.Warn(event, slog.String("err", err.Error()))
}
