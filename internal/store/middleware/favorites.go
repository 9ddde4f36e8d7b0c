package middleware

import (
	"encoding/json"
	"log/slog"

	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/storage"
	"github.com/mvoronina/charhub/internal/store"
)

// Favorites сериализует набор избранного в хранилище после каждого
// действия-переключения. Читается пост-коммитное состояние той партиции,
// к которой относится действие; обе партиции делят ключ KeyFavorites.
func Favorites(kv storage.KV, log *slog.Logger) store.Middleware {
	return func(s *store.Store, next store.Dispatcher) store.Dispatcher {
		return func(a state.Action) state.Action {
			res := next(a)

			switch a.(type) {
			case state.ToggleCharacterFavorite:
				persistFavorites(kv, log, s.State().Characters.Favorites)
			case state.ToggleNewsFavorite:
				persistFavorites(kv, log, s.State().News.Favorites)
			}

			return res
		}
	}
}

func persistFavorites(kv storage.KV, log *slog.Logger, ids []int) {
	if ids == nil {
		ids = []int{}
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		warn(log, "favorites_marshal_failed", err)
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if err := kv.Set(ctx, storage.KeyFavorites, string(raw)); err != nil {
		warn(log, "favorites_persist_failed", err)
	}
}
