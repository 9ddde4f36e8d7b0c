// charhub — клиентское ядро приложения: поднимает контейнер состояния
// с наблюдателями персистентности, гидратирует сохранённую сессию из
// Redis и выполняет первоначальные загрузки сущностей.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mvoronina/charhub/internal/app"
	"github.com/mvoronina/charhub/internal/config"
	"github.com/mvoronina/charhub/internal/fetch"
	"github.com/mvoronina/charhub/internal/i18n"
	logctx "github.com/mvoronina/charhub/internal/pkg/log"
	"github.com/mvoronina/charhub/internal/query"
	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/storage/redis"
	"github.com/mvoronina/charhub/internal/store"
	"github.com/mvoronina/charhub/internal/store/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env).With(slog.String("session_id", uuid.NewString()))
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам; несёт логгер сессии.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = logctx.Into(rootCtx, log)

	// Долговременное хранилище, fail-fast при недоступности.
	kv, err := redis.New(cfg.Storage.RedisURL, cfg.Storage.Prefix)
	if err != nil {
		log.Error("redis_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()
	log.Info("redis_connected")

	charactersClient, err := fetch.NewCharactersClient(cfg.API.CharactersURL, cfg.API.Timeout, log)
	if err != nil {
		log.Error("characters_client_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	newsClient, err := fetch.NewNewsClient(cfg.API.NewsURL, cfg.API.Timeout, log)
	if err != nil {
		log.Error("news_client_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	usersClient, err := fetch.NewUsersClient(cfg.API.UsersURL, cfg.API.Timeout, log)
	if err != nil {
		log.Error("users_client_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Контейнер состояния с наблюдателями персистентности.
	st := store.New(state.NewRootState(cfg.App.DefaultLanguage),
		middleware.Favorites(kv, log),
		middleware.Session(kv, log),
		middleware.Language(kv, log),
	)

	cache := query.NewCache(cfg.Query.RetryMax, log)
	queries := query.New(cache, st, charactersClient, newsClient, usersClient, log)

	a := app.New(st, queries, kv, i18n.MustBundle(), log)
	log.Info("session_initialized")

	// Гидратация сохранённой сессии.
	hydrateCtx, hydrateCancel := context.WithTimeout(rootCtx, 10*time.Second)
	a.Hydrate(hydrateCtx)
	hydrateCancel()

	// Первоначальные загрузки; ошибки не фатальны — экран перезапросит.
	if _, err := a.LoadCharacters(rootCtx, 1, false); err != nil {
		log.Warn("initial_characters_failed", slog.String("err", err.Error()))
	}

	if _, err := a.LoadNews(rootCtx); err != nil {
		log.Warn("initial_news_failed", slog.String("err", err.Error()))
	}

	if _, err := a.LoadUsers(rootCtx); err != nil {
		log.Warn("initial_users_failed", slog.String("err", err.Error()))
	}

	snapshot := a.State()
	log.Info("session_ready",
		slog.Int("characters", len(snapshot.Characters.Characters)),
		slog.Int("news", len(snapshot.News.News)),
		slog.Int("users", len(snapshot.Users.Users)),
		slog.String("language", snapshot.Settings.Language),
	)

	<-rootCtx.Done()
	log.Info("shutting down")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
