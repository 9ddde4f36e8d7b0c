package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mvoronina/charhub/internal/models"
)

// CharactersClient — клиент пагинированного эндпоинта персонажей.
type CharactersClient struct {
	log    *slog.Logger
	client *http.Client
	url    string
}

// NewCharactersClient создаёт клиент с базовым URL и таймаутом запроса.
func NewCharactersClient(url string, timeout time.Duration, log *slog.Logger) (*CharactersClient, error) {
	if url == "" {
		return nil, fmt.Errorf("empty base url specified")
	}

	return &CharactersClient{
		log:    log,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}, nil
}

// Page загружает страницу персонажей вместе с пагинационным конвертом.
// Номера страниц начинаются с 1; меньшие значения нормализуются к 1.
func (c *CharactersClient) Page(ctx context.Context, page int) (models.CharactersPage, error) {
	const op = "fetch.characters.Page"

	if page < 1 {
		page = 1
	}

	var out models.CharactersPage
	if err := getJSON(ctx, c.client, fmt.Sprintf("%s?page=%d", c.url, page), &out); err != nil {
		return models.CharactersPage{}, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("characters_page_fetched",
		slog.String("op", op),
		slog.Int("page", page),
		slog.Int("results", len(out.Results)),
	)

	return out, nil
}
