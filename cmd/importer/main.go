package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"cpucatalog/internal/config"
	"cpucatalog/internal/dataset"
	"cpucatalog/internal/generation"
	"cpucatalog/internal/storage"
)

// importer loads a CPU specification CSV into the catalog, classifying
// records the file does not label.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		configPath = flag.String("config", "config.yaml", "path to the config file")
		csvPath    = flag.String("file", "cpu_specifications.csv", "path to the CSV file to import")
		clearFirst = flag.Bool("clear", false, "delete existing records before importing")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
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

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Error("open csv", "path", *csvPath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	cpus, rowErrs, err := dataset.ParseCSV(file)
	if err != nil {
		log.Error("parse csv", "error", err)
		os.Exit(1)
	}
	for _, rowErr := range rowErrs {
		log.Warn("skipped row", "row", rowErr.Row, "error", rowErr.Err)
	}

	ctx := context.Background()

	if *clearFirst {
		if err := repo.DeleteAll(ctx); err != nil {
			log.Error("clear catalog", "error", err)
			os.Exit(1)
		}
	}

	imported := 0
	for _, cpu := range cpus {
		if cpu.Codename == "" && cpu.Model != "" && cpu.LaunchYear != nil {
			cpu.Codename = generation.Classify(cpu.Model, *cpu.LaunchYear, cpu.Family)
		}

		if _, err := repo.Save(ctx, cpu); err != nil {
			log.Error("save record", "model", cpu.ModelName, "error", err)
			continue
		}
		imported++
	}

	log.Info("import complete", "imported", imported, "skipped", len(rowErrs))
}
