package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "sniptaste-popups/internal/adapter/http"
	"sniptaste-popups/internal/adapter/memory"
	"sniptaste-popups/internal/adapter/postgres"
	redisadapter "sniptaste-popups/internal/adapter/redis"
	"sniptaste-popups/internal/adapter/storage"
	"sniptaste-popups/internal/adapter/usecase"
	"sniptaste-popups/internal/config"
	"sniptaste-popups/internal/config/configs"
	"sniptaste-popups/internal/core/port"
	"sniptaste-popups/internal/db"
)

// main is the entry point of the popup service. It loads configuration,
// opens the configured record store, optionally seeds a demo catalog, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)
	logger.Info("starting popup service",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.NormalizedDriver()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// ctx is cancelled only when the server fails; signals arrive on quit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records, closer, err := openRecordStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init error", slog.Any("error", err))
		return
	}
	defer closer.Close()

	clock := port.ClockFunc(time.Now)
	keys := storage.KeysFor(cfg.Storage.KeyPrefix)
	campaigns := storage.NewCampaignStore(records, keys.Campaigns, clock, logger)
	ledger := storage.NewViewLedger(records, keys.Views, logger)

	if cfg.Storage.SeedDemo {
		n, err := db.Seed(ctx, campaigns, clock.Now())
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else if n > 0 {
			logger.Info("demo campaigns seeded", slog.Int("count", n))
		}
	}

	svc := usecase.NewPopupUseCase(campaigns, ledger, clock, logger)
	handler := httpadapter.NewHandler(svc, clock, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	exitCode = awaitStop(ctx, quit)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// awaitStop blocks until a termination signal arrives on quit or ctx is
// cancelled by a server failure. It returns the process exit code: 128 plus
// the signal number for a signal, 1 for a failure.
func awaitStop(ctx context.Context, quit <-chan os.Signal) int {
	select {
	case value := <-quit:
		if sig, ok := value.(syscall.Signal); ok {
			return 128 + int(sig)
		}
		return 1
	case <-ctx.Done():
		return 1
	}
}

// openRecordStore builds the record store selected by STORAGE_DRIVER. The
// returned closer releases the underlying connection.
func openRecordStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.RecordStore, io.Closer, error) {
	switch cfg.Storage.NormalizedDriver() {
	case configs.DriverRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return redisadapter.NewRecordStore(client), client, nil

	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		return postgres.NewRecordStore(pool), closerFunc(pool.Close), nil

	default:
		return memory.NewRecordStore(), closerFunc(func() {}), nil
	}
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
