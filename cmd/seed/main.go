// Command seed purges the content collections and refills them with the
// starter fixture set. Intended for first-time setup of a new deployment.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/docceastland/church-content/pkg/churchcontent/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	svc, err := cfg.BuildService(ctx)
	if err != nil {
		slog.Error("Failed to build service", "error", err)
		os.Exit(1)
	}

	result, err := svc.Seed(ctx)
	if result != nil {
		for _, line := range result.Logs {
			fmt.Println(line)
		}
	}
	if err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Database seeded successfully")
}
