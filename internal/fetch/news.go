package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mvoronina/charhub/internal/models"
)

// NoContentPlaceholder подставляется вместо пустого текста новости,
// чтобы Content был гарантированно непуст для потребителей.
const NoContentPlaceholder = "No content available"

// NewsClient — клиент эндпоинта новостей (плоский массив, без пагинации).
type NewsClient struct {
	log    *slog.Logger
	client *http.Client
	url    string
}

// NewNewsClient создаёт клиент с базовым URL и таймаутом запроса.
func NewNewsClient(url string, timeout time.Duration, log *slog.Logger) (*NewsClient, error) {
	if url == "" {
		return nil, fmt.Errorf("empty base url specified")
	}

	return &NewsClient{
		log:    log,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}, nil
}

// List загружает все новости. Элементы с пустым Content получают
// NoContentPlaceholder; остальные проходят без изменений.
func (c *NewsClient) List(ctx context.Context) ([]models.Post, error) {
	const op = "fetch.news.List"

	var out []models.Post
	if err := getJSON(ctx, c.client, c.url, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range out {
		if out[i].Content == "" {
			out[i].Content = NoContentPlaceholder
		}
	}

	c.log.Debug("news_fetched",
		slog.String("op", op),
		slog.Int("items", len(out)),
	)

	return out, nil
}
