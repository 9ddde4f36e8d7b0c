package middleware

import (
	"log/slog"

	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/storage"
	"github.com/mvoronina/charhub/internal/store"
)

// Language зеркалирует смену языка в хранилище: код из действия
// пишется под KeyLanguage сырой строкой, без сериализации.
func Language(kv storage.KV, log *slog.Logger) store.Middleware {
	return func(_ *store.Store, next store.Dispatcher) store.Dispatcher {
		return func(a state.Action) state.Action {
			res := next(a)

			if sl, ok := a.(state.SetLanguage); ok {
				persistLanguage(kv, log, sl.Code)
			}

			return res
		}
	}
}

func persistLanguage(kv storage.KV, log *slog.Logger, code string) {
	ctx, cancel := writeCtx()
	defer cancel()

	if err := kv.Set(ctx, storage.KeyLanguage, code); err != nil {
		warn(log, "language_persist_failed", err)
	}
}
