package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/handlers"
	"studio-portfolio/pkg/services"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the portfolio gallery, project pages and JSON feed via HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return serveWebsite(cmd.Context(), cfg, logger)
		},
	}
}

// NewServer builds the HTTP server for the shared service
func NewServer(cfg *config.Config, logger *zap.Logger) *http.Server {
	h := handlers.New(services.Default(), cfg.ViewsDir, logger)
	return &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           handlers.NewRouter(h, cfg.PublicDir),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serveWebsite runs the web server until interrupted
func serveWebsite(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() {
		if err := services.Default().Close(); err != nil {
			logger.Warn("failed to close service", zap.Error(err))
		}
	}()

	// warm the cache so a broken catalog fails at startup rather than on the first request
	if _, err := services.Default().Catalog(ctx); err != nil {
		return err
	}

	srv := NewServer(cfg, logger)
	errCh := make(chan error, 1)
	go func() {
		cfg.PrintServerStartMessage()
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.Int("page_size", cfg.PageSize))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
