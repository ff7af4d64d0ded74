// Package app wires configuration, logging, storage, services, and the
// HTTP server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/termforge/termgate/internal/adapter/postgres"
	"github.com/termforge/termgate/internal/adapter/postgres/term"
	"github.com/termforge/termgate/internal/config"
	"github.com/termforge/termgate/internal/service/admission"
	"github.com/termforge/termgate/internal/service/review"
	"github.com/termforge/termgate/internal/transport/middleware"
	"github.com/termforge/termgate/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, runs migrations when configured, builds
// the services, and serves HTTP until ctx is canceled.
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	termRepo := term.New(pool)
	txManager := postgres.NewTxManager(pool)

	admissionSvc := admission.New(termRepo, txManager, logger, cfg.Admission)
	reviewSvc := review.New(termRepo, logger, cfg.Listing)

	termHandler := rest.NewTermHandler(admissionSvc, reviewSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(termHandler, healthHandler))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
