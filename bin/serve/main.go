package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/handlers"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Must(cfg.LogLevel)
	defer logger.Sync()

	// Initialize services
	if err := services.InitService(cfg, logger); err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer services.Default().Close()
	if _, err := services.Default().Catalog(context.Background()); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	h := handlers.New(services.Default(), cfg.ViewsDir, logger)

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), handlers.NewRouter(h, cfg.PublicDir)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
