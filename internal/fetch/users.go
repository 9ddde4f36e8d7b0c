package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mvoronina/charhub/internal/models"
)

// UsersClient — клиент эндпоинта замоканного списка пользователей.
type UsersClient struct {
	log    *slog.Logger
	client *http.Client
	url    string
}

// NewUsersClient создаёт клиент с базовым URL и таймаутом запроса.
func NewUsersClient(url string, timeout time.Duration, log *slog.Logger) (*UsersClient, error) {
	if url == "" {
		return nil, fmt.Errorf("empty base url specified")
	}

	return &UsersClient{
		log:    log,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}, nil
}

// List загружает список пользователей без изменений.
func (c *UsersClient) List(ctx context.Context) ([]models.User, error) {
	const op = "fetch.users.List"

	var out []models.User
	if err := getJSON(ctx, c.client, c.url, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("users_fetched",
		slog.String("op", op),
		slog.Int("items", len(out)),
	)

	return out, nil
}
