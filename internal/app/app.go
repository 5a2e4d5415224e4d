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

	"github.com/heartmarshall/returns-backend/internal/config"
	"github.com/heartmarshall/returns-backend/internal/transport/middleware"
	"github.com/heartmarshall/returns-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate limit buckets are swept.
const rateLimitCleanup = time.Minute

// Run is the server entry point. It loads configuration, connects to the
// database, wires the services and serves HTTP until ctx is cancelled.
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

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	svc, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := NewHandler(cfg, svc, limiter, logger)

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
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// NewHandler builds the HTTP handler tree over svc.
func NewHandler(cfg *config.Config, svc *Services, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	var cachePinger interface {
		Ping(ctx context.Context) error
	}
	if svc.Cache != nil {
		cachePinger = svc.Cache
	}

	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(svc.Pool, cachePinger, Version),
		Returns:   rest.NewReturnHandler(svc.Returns, logger),
		Import:    rest.NewImportHandler(svc.Importer, cfg.Server.MaxUploadSize, logger),
		Export:    rest.NewExportHandler(svc.Export, logger),
		Inventory: rest.NewInventoryHandler(svc.Inventory, logger),
	}

	var importLimit middleware.Middleware
	if limiter != nil {
		importLimit = limiter.Limit(cfg.Import.RateLimit)
	}

	return rest.NewRouter(handlers, importLimit, middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Actor(),
	))
}
