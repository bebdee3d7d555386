package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/expense-api/internal/api"
	"github.com/baharkarakas/expense-api/internal/config"
	"github.com/baharkarakas/expense-api/internal/db"
	"github.com/baharkarakas/expense-api/internal/logger"
	"github.com/baharkarakas/expense-api/internal/metrics"
	"github.com/baharkarakas/expense-api/internal/repository"
	"github.com/baharkarakas/expense-api/internal/repository/cache"
	"github.com/baharkarakas/expense-api/internal/repository/memory"
	"github.com/baharkarakas/expense-api/internal/repository/postgres"
	"github.com/baharkarakas/expense-api/internal/repository/sqlite"
	"github.com/baharkarakas/expense-api/internal/seed"
	"github.com/baharkarakas/expense-api/internal/services"
	"github.com/baharkarakas/expense-api/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store open", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer repos.Close()

	if cfg.RedisURL != "" {
		rdb, err := newRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("redis connect", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		repos = cache.Wrap(repos, rdb, cfg.CacheTTL, log)
		log.Info("redis cache enabled", "ttl", cfg.CacheTTL)
	}

	wp := worker.NewPool(cfg.Workers)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		UserSvc:    services.NewUserService(repos.Users),
		ExpenseSvc: services.NewExpenseService(repos.Expenses),
		Seeder:     seed.NewSeeder(repos, wp),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown(shutdownCtx, srv, wp); err != nil {
		log.Error("shutdown", "err", err)
	}
}

// shutdown drains the server and then stops the worker pool. The pool is
// left running when handlers are still in flight, since they may yet submit
// seeding jobs to it.
func shutdown(ctx context.Context, srv *http.Server, wp *worker.Pool) error {
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	wp.Stop()
	return nil
}

// openStore builds the entity store selected by cfg.StoreDriver.
func openStore(ctx context.Context, cfg config.Config) (repository.Repositories, error) {
	switch cfg.StoreDriver {
	case "", "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath)
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repository.Repositories{}, err
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return repository.Repositories{}, fmt.Errorf("migrations: %w", err)
			}
		}
		return postgres.NewRepositories(pool), nil
	default:
		return repository.Repositories{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func newRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
