package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/config"
	"github.com/heartmarshall/freshkeep-backend/internal/metrics"
	"github.com/heartmarshall/freshkeep-backend/internal/transport/middleware"
	"github.com/heartmarshall/freshkeep-backend/internal/transport/rest"
	"github.com/heartmarshall/freshkeep-backend/internal/worker"
	"github.com/heartmarshall/freshkeep-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, wires every service and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	m := metrics.New()

	c, err := newContainer(ctx, cfg, pool, m, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer c.close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Logger:      logger,
		Validator:   c.auth,
		Recorder:    m,
		RateLimiter: limiter,
		RateLimit:   cfg.RateLimit,
		CORS:        cfg.CORS,
		AudioDir:    c.audioDir,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = m.Handler()
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           rest.NewRouter(c.handlers(cfg, pool, logger), deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	var sched *worker.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = worker.NewScheduler(logger, cfg.Scheduler, c.jobs(logger), m)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		sched.Start()
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Warn("scheduler stop", slog.String("error", err.Error()))
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
