package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karaku/backend/internal/config"
	"karaku/backend/internal/db"
	"karaku/backend/internal/handler"
	transport "karaku/backend/internal/http"
	"karaku/backend/internal/logger"
	"karaku/backend/internal/network"
	"karaku/backend/internal/remote"
	"karaku/backend/internal/remote/ai"
	"karaku/backend/internal/repository"
	"karaku/backend/internal/scheduler"
	"karaku/backend/internal/service"
	"karaku/backend/internal/snowflake"
	"karaku/backend/internal/task"
)

// @title Karaku API
// @version 1.0
// @description Character favorites and translation history.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "module", "app", "action", "start", "resource", "config", "result", "failed", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		logger.Error("init snowflake", "module", "app", "action", "start", "resource", "snowflake", "result", "failed", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "module", "app", "action", "start", "resource", "db", "result", "failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	var storeOpts []repository.Option
	if cfg.UpdateMissing == config.UpdateMissingError {
		storeOpts = append(storeOpts, repository.WithUpdatePolicy(repository.UpdateReportMissing))
	}
	favoriteRepo := repository.NewCharacterRepository(dbConn, storeOpts...)
	historyRepo := repository.NewTranslationRepository(dbConn, storeOpts...)

	clients := network.NewClientFactory(network.StaticProxy(cfg.ProxyURL))
	ctx := context.Background()

	catalog := remote.NewCharacterCatalog(clients.NewHTTPClient(ctx, cfg.HTTPTimeout), cfg.CatalogURL)
	translator, err := newTranslator(ctx, cfg, clients)
	if err != nil {
		logger.Error("init translator", "module", "app", "action", "start", "resource", "translator", "result", "failed", "provider", cfg.Translator.Provider, "error", err)
		os.Exit(1)
	}

	pool := task.NewPool(cfg.Workers)
	characterService := service.NewCharacterService(favoriteRepo, catalog, pool)
	translationService := service.NewTranslationService(historyRepo, translator)
	coordinator := service.NewCoordinator(characterService, translationService)

	router := transport.NewRouter(
		handler.NewCharacterHandler(characterService),
		handler.NewTranslationHandler(translationService),
	)

	// First run is the startup activation.
	sched := scheduler.New(coordinator, cfg.CatalogRefresh)
	sched.Start()

	go func() {
		logger.Info("server listening", "module", "app", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("start server", "module", "app", "action", "start", "resource", "http", "result", "failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down", "module", "app", "action", "stop", "resource", "http", "result", "ok")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown", "module", "app", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
	sched.Stop()
	pool.Wait()
}

// newTranslator builds the configured translation backend behind the
// shared rate limit and result cache.
func newTranslator(ctx context.Context, cfg config.Config, clients *network.ClientFactory) (remote.Translator, error) {
	tc := cfg.Translator
	limiter := remote.NewRateLimiter(tc.QPS)

	var base remote.Translator
	switch tc.Provider {
	case config.TranslatorAzure:
		base = remote.NewAzureTranslator(clients.NewHTTPClient(ctx, cfg.HTTPTimeout), remote.AzureConfig{
			BaseURL:    tc.BaseURL,
			APIVersion: tc.APIVersion,
			Key:        tc.Key,
			Region:     tc.Region,
		}, limiter)
	default:
		provider, err := ai.NewProvider(ai.Config{
			Provider:   tc.Provider,
			APIKey:     tc.Key,
			BaseURL:    tc.BaseURL,
			Model:      tc.Model,
			HTTPClient: clients.NewHTTPClient(ctx, cfg.HTTPTimeout),
		})
		if err != nil {
			return nil, fmt.Errorf("%s provider: %w", tc.Provider, err)
		}
		base = remote.NewLLMTranslator(provider, limiter)
	}
	return remote.NewCachedTranslator(base, tc.CacheTTL), nil
}
