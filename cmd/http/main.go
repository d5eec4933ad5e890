package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/core/logger"
)

// @title       Products API
// @version     1.0
// @description Products and product options catalogue

// @host     localhost:8080
// @BasePath /

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Println("invalid configuration: " + err.Error())
		os.Exit(1)
	}
	if err := logger.Initialize(logger.Options{
		CollectorEndpoint: cfg.Logger.Endpoint,
		ServiceName:       cfg.Logger.ServiceName,
		Level:             logger.ParseLevel(cfg.Logger.Level),
		IsProduction:      cfg.Logger.IsProduction,
	}); err != nil {
		// logger not available yet, fall back to stdout
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for the server and background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to start application", err, map[string]any{"store": cfg.Store.Driver})
		os.Exit(1)
	}

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()
	}()

	runErr := app.Run(ctx)
	if runErr != nil {
		logger.Error(ctx, "HTTP server stopped with error", runErr, nil)
	}
	if err := app.Close(); err != nil {
		logger.Error(ctx, "Failed to close connections", err, nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Println("logger shutdown error: " + err.Error())
	}

	if runErr != nil {
		os.Exit(1)
	}
}
