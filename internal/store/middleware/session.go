package middleware

import (
	"encoding/json"
	"log/slog"

	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/storage"
	"github.com/mvoronina/charhub/internal/store"
)

// Session зеркалирует вход/выход пользователя в хранилище:
// на Login — сериализованный пост-коммитный пользователь под KeyUser и
// строка "true" под KeyAuthenticated; на Logout — удаление KeyUser и "false".
func Session(kv storage.KV, log *slog.Logger) store.Middleware {
	return func(s *store.Store, next store.Dispatcher) store.Dispatcher {
		return func(a state.Action) state.Action {
			res := next(a)

			switch a.(type) {
			case state.Login:
				persistLogin(kv, log, s)
			case state.Logout:
				persistLogout(kv, log)
			}

			return res
		}
	}
}

func persistLogin(kv storage.KV, log *slog.Logger, s *store.Store) {
	user := s.State().Settings.User

	raw, err := json.Marshal(user)
	if err != nil {
		warn(log, "session_marshal_failed", err)
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if err := kv.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		warn(log, "session_persist_failed", err)
	}

	if err := kv.Set(ctx, storage.KeyAuthenticated, "true"); err != nil {
		warn(log, "session_persist_failed", err)
	}
}

func persistLogout(kv storage.KV, log *slog.Logger) {
	ctx, cancel := writeCtx()
	defer cancel()

	if err := kv.Remove(ctx, storage.KeyUser); err != nil {
		warn(log, "session_persist_failed", err)
	}

	if err := kv.Set(ctx, storage.KeyAuthenticated, "false"); err != nil {
		warn(log, "session_persist_failed", err)
	}
}
