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

	"github.com/joho/godotenv"

	"github.com/docceastland/church-content/internal/api"
	"github.com/docceastland/church-content/pkg/churchcontent"
	"github.com/docceastland/church-content/pkg/churchcontent/config"
)

func main() {
	// Local development convenience; missing .env files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, blobs, err := cfg.BuildStores(ctx)
	if err != nil {
		slog.Error("Failed to build stores", "error", err)
		os.Exit(1)
	}

	options := []churchcontent.Option{churchcontent.WithDocumentStore(store)}
	if blobs != nil {
		options = append(options, churchcontent.WithBlobStore(blobs))
	}
	svc, err := churchcontent.New(options...)
	if err != nil {
		slog.Error("Failed to create service", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewRouter(svc, blobs),
	}

	go func() {
		slog.Info("Server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"database", cfg.Database.Type,
			"storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
