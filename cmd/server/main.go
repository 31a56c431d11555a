package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nulzo/assist-router/cmd"
	"github.com/nulzo/assist-router/internal/catalog"
	"github.com/nulzo/assist-router/internal/chat"
	"github.com/nulzo/assist-router/internal/cli"
	"github.com/nulzo/assist-router/internal/command"
	"github.com/nulzo/assist-router/internal/config"
	"github.com/nulzo/assist-router/internal/history"
	"github.com/nulzo/assist-router/internal/platform/logger"
	"github.com/nulzo/assist-router/internal/platform/otel"
	"github.com/nulzo/assist-router/internal/registry"
	"github.com/nulzo/assist-router/internal/router"
	"github.com/nulzo/assist-router/internal/server"
	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/internal/store/cache"
	"github.com/nulzo/assist-router/internal/store/sqlite"
	"github.com/nulzo/assist-router/pkg/api"
	"go.uber.org/zap"
)

func main() {
	// 1. Logging
	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()
	log := logger.Get()

	cmd.CheckForUpdates()

	// 2. Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Tracing
	shutdownTracer, err := otel.InitTracer("assist-router", log, os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	// 4. Persistence (optional)
	var repo store.Repository
	var recorder history.Recorder
	if cfg.Store.Enabled {
		repo, err = sqlite.NewSQLiteStorage(cfg.Store.Path, log)
		if err != nil {
			log.Fatal("Failed to open transcript store", zap.Error(err))
		}
		recorder = history.NewRecorder(log, repo)
	}

	// 5. Response cache: redis when configured, in-process otherwise
	var cacheSvc cache.CacheService
	if cfg.Redis.Enabled {
		cacheSvc, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		log.Info("Using redis response cache", zap.String("addr", cfg.Redis.Addr))
	} else {
		cacheSvc = cache.NewMemoryCache()
	}

	// 6. Model registry, seeded from config or the built-in catalog
	models, err := cfg.ResolveModels()
	if err != nil {
		log.Fatal("Invalid model configuration", zap.Error(err))
	}
	if len(models) == 0 {
		models = catalog.Defaults()
	}
	reg := registry.NewWithModels(models)
	reg.SetDefaultProvider(mustProvider(cfg.DefaultProvider))

	// 7. Core services
	rt := router.New(log, reg, router.NewSimulatedBackend(), router.WithCache(cacheSvc, cfg.Cache.TTL))
	parser := command.NewParser()
	svc := chat.NewService(log, parser, rt, recorder)

	// 8. HTTP server
	srv := server.New(cfg, log, svc, parser, reg, repo)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if recorder != nil {
		recorder.Start(ctx)
	}

	go func() {
		printBanner(cfg, len(models))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}

	if recorder != nil {
		recorder.Stop()
	}
	if repo != nil {
		_ = repo.Close()
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error("Tracer shutdown failed", zap.Error(err))
	}
}

func mustProvider(raw string) (p api.Provider) {
	p, _ = api.ParseProvider(raw)
	return p
}

func printBanner(cfg *config.Config, modelCount int) {
	fmt.Printf("%s assist-router %s\n", cli.CheckMark(), cmd.AppVersion)
	fmt.Printf("%s listening on :%s (%s)\n", cli.Arrow(), cfg.Server.Port, cfg.Server.Env)
	fmt.Printf("%s %d model(s) registered, default provider %s\n", cli.Arrow(), modelCount, cfg.DefaultProvider)
	if !cfg.Store.Enabled {
		fmt.Printf("%s transcript store disabled, history will not persist\n", cli.WarningSign())
	}
}
