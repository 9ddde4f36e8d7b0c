// app собирает ядро клиентской сессии: контейнер состояния, слой
// запросов, порт хранилища и словари строк. Экраны (внешний слой)
// работают только через методы App — это единственные источники
// пользовательских событий для конвейера диспетчеризации.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mvoronina/charhub/internal/auth"
	"github.com/mvoronina/charhub/internal/i18n"
	"github.com/mvoronina/charhub/internal/models"
	"github.com/mvoronina/charhub/internal/query"
	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/storage"
	"github.com/mvoronina/charhub/internal/store"
	"github.com/mvoronina/charhub/internal/view"
)

// App — фасад клиентской сессии.
type App struct {
	log     *slog.Logger
	store   *store.Store
	queries *query.Queries
	kv      storage.KV
	msgs    *i18n.Bundle
}

// New создаёт фасад поверх уже собранных зависимостей.
func New(st *store.Store, q *query.Queries, kv storage.KV, msgs *i18n.Bundle, log *slog.Logger) *App {
	return &App{
		log:     log,
		store:   st,
		queries: q,
		kv:      kv,
		msgs:    msgs,
	}
}

// State возвращает снимок текущего состояния.
func (a *App) State() state.RootState {
	return a.store.State()
}

// Hydrate восстанавливает сохранённые проекции из хранилища на старте
// сессии. Хранилище best-effort: отсутствующие ключи и битые значения
// молча пропускаются, остаются значения по умолчанию.
func (a *App) Hydrate(ctx context.Context) {
	const op = "app.Hydrate"

	if raw, ok := a.read(ctx, op, storage.KeyFavorites); ok {
		var ids []int
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			a.store.Dispatch(state.LoadCharacterFavorites{IDs: ids})
			a.store.Dispatch(state.LoadNewsFavorites{IDs: ids})
		}
	}

	restore := state.RestoreSession{}

	if code, ok := a.read(ctx, op, storage.KeyLanguage); ok && code != "" {
		restore.Language = code
	}

	// Пользователь и флаг аутентификации восстанавливаются только парой:
	// запись пользователя без подтверждённого флага — недописанная сессия
	// (частично упавшие записи наблюдателей), она отбрасывается целиком.
	if raw, ok := a.read(ctx, op, storage.KeyUser); ok {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			if flag, ok := a.read(ctx, op, storage.KeyAuthenticated); ok && flag == "true" {
				restore.User = &u
				restore.Authenticated = true
			}
		}
	}

	if restore != (state.RestoreSession{}) {
		a.store.Dispatch(restore)
	}

	a.log.Info("session_hydrated",
		slog.String("op", op),
		slog.Int("favorites", len(a.store.State().Characters.Favorites)),
		slog.Bool("authenticated", a.store.State().Settings.IsAuthenticated),
	)
}

func (a *App) read(ctx context.Context, op, key string) (string, bool) {
	val, err := a.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("hydrate_read_failed",
				slog.String("op", op),
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}

		return "", false
	}

	return val, true
}

// LoadCharacters загружает страницу персонажей; favoritesOnly подавляет
// и загрузку, и слияние (режим «только избранное»).
func (a *App) LoadCharacters(ctx context.Context, page int, favoritesOnly bool) (*models.CharactersPage, error) {
	return a.queries.Characters(ctx, page, favoritesOnly)
}

// LoadNews загружает новости.
func (a *App) LoadNews(ctx context.Context) ([]models.Post, error) {
	return a.queries.News(ctx)
}

// LoadUsers загружает замоканный список пользователей.
func (a *App) LoadUsers(ctx context.Context) ([]models.User, error) {
	return a.queries.Users(ctx)
}

// RetryCharacters сбрасывает кэш страницы и загружает её заново —
// путь кнопки «повторить» после ошибки.
func (a *App) RetryCharacters(ctx context.Context, page int) (*models.CharactersPage, error) {
	a.queries.Invalidate(query.Key{Kind: query.KindCharacters, Page: page})
	return a.queries.Characters(ctx, page, false)
}

// RetryNews сбрасывает кэш новостей и загружает их заново.
func (a *App) RetryNews(ctx context.Context) ([]models.Post, error) {
	a.queries.Invalidate(query.Key{Kind: query.KindNews})
	return a.queries.News(ctx)
}

// ToggleCharacterFavorite переключает избранность персонажа.
func (a *App) ToggleCharacterFavorite(id int) {
	a.store.Dispatch(state.ToggleCharacterFavorite{ID: id})
}

// ToggleNewsFavorite переключает избранность новости.
func (a *App) ToggleNewsFavorite(id int) {
	a.store.Dispatch(state.ToggleNewsFavorite{ID: id})
}

// SetSearchQuery меняет строку поиска новостей.
func (a *App) SetSearchQuery(q string) {
	a.store.Dispatch(state.SetNewsSearchQuery{Query: q})
}

// SetLanguage меняет язык интерфейса.
func (a *App) SetLanguage(code string) {
	a.store.Dispatch(state.SetLanguage{Code: code})
}

// Login проверяет учётные данные по замоканному списку пользователей и
// при успехе открывает сессию. Если список ещё не загружен, он
// подтягивается через слой запросов.
func (a *App) Login(ctx context.Context, username, password string) error {
	// Пустые поля отсекаются до обращения к источнику пользователей.
	if username == "" || password == "" {
		return auth.ErrEmptyFields
	}

	users := a.store.State().Users.Users

	if len(users) == 0 {
		loaded, err := a.queries.Users(ctx)
		if err != nil {
			return err
		}
		users = loaded
	}

	u, err := auth.Authenticate(users, username, password)
	if err != nil {
		return err
	}

	a.store.Dispatch(state.Login{User: *u})

	return nil
}

// Logout закрывает сессию.
func (a *App) Logout() {
	a.store.Dispatch(state.Logout{})
}

// LoginMessage переводит исход проверки учётных данных в строку для
// экрана логина на текущем языке. Для nil и незнакомых ошибок — пустая
// строка: сетевые ошибки экран показывает своим механизмом.
func (a *App) LoginMessage(err error) string {
	lang := a.store.State().Settings.Language

	switch {
	case err == nil:
		return ""
	case errors.Is(err, auth.ErrEmptyFields):
		return a.msgs.T(lang, "settings.fill_all_fields")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return a.msgs.T(lang, "settings.invalid_credentials")
	default:
		return ""
	}
}

// Character возвращает персонажа из объединённого списка.
// Отсутствие id — валидное состояние «не найдено», не ошибка.
func (a *App) Character(id int) (models.Character, bool) {
	for _, c := range a.store.State().Characters.Characters {
		if c.ID == id {
			return c, true
		}
	}

	return models.Character{}, false
}

// Post возвращает новость из списка; отсутствие — «не найдено».
func (a *App) Post(id int) (models.Post, bool) {
	for _, p := range a.store.State().News.News {
		if p.ID == id {
			return p, true
		}
	}

	return models.Post{}, false
}

// VisibleCharacters — видимый список персонажей для текущего состояния.
func (a *App) VisibleCharacters(favoritesOnly bool, searchQuery string) []models.Character {
	st := a.store.State().Characters
	return view.VisibleCharacters(st.Characters, st.Favorites, favoritesOnly, searchQuery)
}

// VisibleNews — видимый список новостей; строка поиска берётся из партиции.
func (a *App) VisibleNews(favoritesOnly bool) []models.Post {
	st := a.store.State().News
	return view.VisiblePosts(st.News, st.Favorites, favoritesOnly, st.SearchQuery)
}
