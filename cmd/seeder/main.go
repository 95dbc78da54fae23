// Command seeder loads starter themes from a YAML file. Themes whose title
// already exists are skipped, so it is safe to re-run.
//
// Flags:
//
//	--file     path to the seed YAML file (required)
//	--dry-run  report what would be inserted without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/schema"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/theme"
	"github.com/heartmarshall/poetic-threads/internal/app"
	"github.com/heartmarshall/poetic-threads/internal/app/seeder"
	"github.com/heartmarshall/poetic-threads/internal/config"
)

var _ seeder.ThemeRepo = (*theme.Repo)(nil)

func main() {
	fileFlag := flag.String("file", "", "path to the seed YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg, err := seeder.LoadConfig(*fileFlag)
	if err != nil {
		logger.Error("load seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seedCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	sch, err := schema.Detect(ctx, pool)
	if err != nil {
		logger.Error("detect schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := seeder.NewPipeline(logger, theme.New(pool, sch), *seedCfg).Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Bool("dry_run", seedCfg.DryRun),
		slog.Duration("duration", res.Duration),
	)
}
