package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-kpi/internal/adapter/cache"
	httpadapter "campaign-kpi/internal/adapter/http"
	"campaign-kpi/internal/adapter/memory"
	"campaign-kpi/internal/adapter/postgres"
	"campaign-kpi/internal/adapter/usecase"
	"campaign-kpi/internal/config"
	"campaign-kpi/internal/core/kpi"
	"campaign-kpi/internal/core/port"
	"campaign-kpi/internal/db"
	"campaign-kpi/internal/metrics"
)

// main is the entry point of the campaign KPI service. It loads
// configuration, prepares the campaign store (optionally migrating and
// seeding PostgreSQL), builds the KPI engine and caches, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	switch cfg.Storage {
	case config.StorageMemory:
		repo = memory.NewCampaignRepository()
		logger.Info("using in-memory campaign store")
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	}

	if cfg.Psql.Seed {
		seed := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		if err = db.Seed(ctx, repo, seed, time.Now()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo campaigns seeded")
	}

	engineOpts := []kpi.Option{}
	if cfg.KPI.BenchmarkFile != "" {
		table, err := kpi.LoadBenchmarkFile(cfg.KPI.BenchmarkFile)
		if err != nil {
			logger.Error("benchmark file error", slog.String("path", cfg.KPI.BenchmarkFile), slog.Any("error", err))
			return
		}
		engineOpts = append(engineOpts, kpi.WithBenchmarks(table))
		logger.Info("benchmark overrides loaded", slog.String("path", cfg.KPI.BenchmarkFile))
	}
	if cfg.KPI.Seed != 0 {
		engineOpts = append(engineOpts, kpi.WithRandomSource(kpi.NewSeededSource(cfg.KPI.Seed)))
	}
	engine := kpi.NewEngine(engineOpts...)

	m := metrics.New()
	svcOpts := []usecase.Option{usecase.WithMetrics(m)}
	if cfg.Cache.Enabled {
		local, err := cache.NewLocal(cfg.Cache)
		if err != nil {
			logger.Error("cache init error", slog.Any("error", err))
			return
		}
		defer local.Close()

		var kpiCache port.KPICache = local
		if cfg.Redis.Addr != "" {
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer client.Close()
			if err = client.Ping(ctx).Err(); err != nil {
				// the cache tolerates an unavailable backend
				logger.Warn("redis unreachable", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			}
			kpiCache = cache.NewTiered(local, cache.NewRemote(client, cfg.Cache.TTL))
		}
		svcOpts = append(svcOpts, usecase.WithCache(kpiCache))
	}
	svc := usecase.NewCampaignUseCase(repo, engine, logger, svcOpts...)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
		Metrics:        m,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}
