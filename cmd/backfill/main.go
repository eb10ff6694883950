package main

import (
	"context"
	"log/slog"
	"os"

	"cpucatalog/internal/config"
	"cpucatalog/internal/storage"
	"cpucatalog/internal/worker"
)

// backfill fills in missing generation codenames for existing records.
// It runs once and exits.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewPostgres(cfg.Storage.DSN)
	if err != nil {
		log.Error("connect to storage", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	updated, total, err := worker.NewBackfill(repo, log).Run(context.Background())
	if err != nil {
		log.Error("backfill failed", "error", err, "updated", updated, "candidates", total)
		os.Exit(1)
	}
}
