package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"image-resizer/internal/config"
	"image-resizer/internal/http-server/handler/notification"
	"image-resizer/internal/http-server/router"
	"image-resizer/internal/usecase/compressor"
	"image-resizer/internal/usecase/processor"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	cfg    *config.Config
	server *http.Server
	logger *zlog.Zerolog
}

func NewApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	store, err := NewBlobStore(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store: %w", err)
	}

	resizer := processor.NewImageResizer(cfg.Resize.MaxPixels)
	comp := compressor.NewCompressor(store, resizer, cfg.TargetBucket, logger)

	h := &router.Handler{
		NotificationHandler: notification.NewNotificationHandler(comp, logger),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Addr,
		Handler:      router.SetupRouter(h, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:    cfg,
		server: server,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Str("addr", a.cfg.Server.Addr).Str("target_bucket", a.cfg.TargetBucket).Msg("Starting server")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		a.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}
