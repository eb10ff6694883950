package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cpucatalog/internal/cache"
	"cpucatalog/internal/config"
	"cpucatalog/internal/queue"
	"cpucatalog/internal/watcher"
	"cpucatalog/internal/worker"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	rdb, err := cache.New(cfg.Redis.Addr)
	if err != nil {
		log.Error("connect to redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	publisher, err := queue.NewKafka(cfg.Queue.Brokers, cfg.Queue.Topic)
	if err != nil {
		log.Error("create publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	rss := watcher.NewRSS()

	w := worker.NewWatcher(rss, publisher, rdb, cfg.Watcher, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go w.Start(ctx)

	log.Info("watcher started", "feeds", len(cfg.Watcher.Feeds), "interval", cfg.Watcher.Interval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
}
