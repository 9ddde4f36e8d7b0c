// fetch содержит клиентов удалённых эндпоинтов сущностей.
//
// Клиенты бесстатусны: один GET на вызов, разбор JSON и минимальное
// формирование ответа (подстановка значений по умолчанию). Повторные
// попытки — забота query-слоя; здесь ошибки возвращаются как есть.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	logctx "github.com/mvoronina/charhub/internal/pkg/log"
)

// getJSON выполняет GET по url и декодирует тело ответа в v.
// Запрос логируется логгером сессии из контекста.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	logctx.From(ctx).Debug("remote_get", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
