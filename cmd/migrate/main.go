// Command migrate applies the embedded database migrations and exits.
// It is meant for deploy pipelines that keep auto_migrate disabled.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/app"
	"github.com/heartmarshall/poetic-threads/internal/config"
	"github.com/heartmarshall/poetic-threads/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
