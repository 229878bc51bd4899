package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"streetcast/internal/adapter/events"
	httpadapter "streetcast/internal/adapter/http"
	"streetcast/internal/adapter/postgres"
	"streetcast/internal/adapter/usecase"
	"streetcast/internal/db"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE:  runServe,
}

// runServe optionally migrates, connects to Postgres and NATS, then serves
// HTTP until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	publisher, err := events.New(cfg.NATS.URL)
	if err != nil {
		return err
	}
	defer publisher.Close()
	if cfg.NATS.URL != "" {
		logger.Info("publishing events to NATS", slog.String("subject_prefix", cfg.NATS.SubjectPrefix))
	}

	svc := usecase.NewSignageUseCase(postgres.NewRepository(pool),
		usecase.WithLogger(logger),
		usecase.WithPublisher(publisher, cfg.NATS.SubjectPrefix),
		usecase.WithRecentLimit(cfg.Analytics.RecentLimit),
		usecase.WithDeviceWindows(cfg.Device.OnlineWindow, cfg.Device.WarningWindow),
	)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		RateLimit:   cfg.HTTP.RateLimit,
		TrustProxy:  cfg.HTTP.TrustProxy,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
