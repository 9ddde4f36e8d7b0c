package query

import (
	"context"
	"log/slog"

	"github.com/mvoronina/charhub/internal/models"
	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/store"
)

// CharactersSource — источник страниц персонажей.
type CharactersSource interface {
	Page(ctx context.Context, page int) (models.CharactersPage, error)
}

// NewsSource — источник списка новостей.
type NewsSource interface {
	List(ctx context.Context) ([]models.Post, error)
}

// UsersSource — источник списка пользователей.
type UsersSource interface {
	List(ctx context.Context) ([]models.User, error)
}

// Queries связывает кэширующую загрузку с контейнером состояния:
// успешное разрешение запроса диспетчеризует действие слияния в
// соответствующую партицию. Ошибки загрузки не перехватываются и
// не преобразуются — они прозрачно уходят вызывающему.
type Queries struct {
	log   *slog.Logger
	cache *Cache
	store *store.Store

	characters CharactersSource
	news       NewsSource
	users      UsersSource
}

// New создаёт слой запросов поверх кэша и контейнера состояния.
func New(cache *Cache, st *store.Store, characters CharactersSource, news NewsSource, users UsersSource, log *slog.Logger) *Queries {
	return &Queries{
		log:        log,
		cache:      cache,
		store:      st,
		characters: characters,
		news:       news,
		users:      users,
	}
}

// Characters загружает страницу персонажей через кэш. При disabled
// подавляются и загрузка, и диспетчеризация (режим «только избранное»).
// Непустой список результатов сливается в партицию: первая страница —
// заменой, последующие — дописыванием.
func (q *Queries) Characters(ctx context.Context, page int, disabled bool) (*models.CharactersPage, error) {
	if disabled {
		return nil, nil
	}

	if page < 1 {
		page = 1
	}

	val, err := q.cache.do(ctx, Key{Kind: KindCharacters, Page: page}, func(ctx context.Context) (any, error) {
		return q.characters.Page(ctx, page)
	})
	if err != nil {
		return nil, err
	}

	res := val.(models.CharactersPage)

	if len(res.Results) > 0 {
		q.store.Dispatch(state.SetCharacters{
			Characters: res.Results,
			Mode:       mergeModeFor(page),
		})
	}

	return &res, nil
}

// News загружает новости через кэш и заменяет партицию целиком.
// Пока загрузка не разрешилась или завершилась ошибкой, диспетчеризации нет.
func (q *Queries) News(ctx context.Context) ([]models.Post, error) {
	val, err := q.cache.do(ctx, Key{Kind: KindNews}, func(ctx context.Context) (any, error) {
		return q.news.List(ctx)
	})
	if err != nil {
		return nil, err
	}

	posts := val.([]models.Post)

	if posts != nil {
		q.store.Dispatch(state.SetNews{Posts: posts})
	}

	return posts, nil
}

// Users загружает пользователей через кэш и заменяет партицию целиком.
func (q *Queries) Users(ctx context.Context) ([]models.User, error) {
	val, err := q.cache.do(ctx, Key{Kind: KindUsers}, func(ctx context.Context) (any, error) {
		return q.users.List(ctx)
	})
	if err != nil {
		return nil, err
	}

	users := val.([]models.User)

	if users != nil {
		q.store.Dispatch(state.SetUsers{Users: users})
	}

	return users, nil
}

// Invalidate сбрасывает ключ кэша — путь кнопки «повторить» на экране.
func (q *Queries) Invalidate(key Key) {
	q.cache.Invalidate(key)
}

// mergeModeFor фиксирует связь «страница — режим слияния»:
// первая страница заменяет список, последующие дописываются.
func mergeModeFor(page int) state.MergeMode {
	if page <= 1 {
		return state.MergeReplace
	}

	return state.MergeAppend
}
