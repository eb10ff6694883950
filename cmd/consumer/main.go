package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cpucatalog/internal/cache"
	"cpucatalog/internal/config"
	"cpucatalog/internal/notifier"
	"cpucatalog/internal/queue"
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

	consumer, err := queue.NewKafkaConsumer(cfg.Queue.Brokers, cfg.Queue.GroupID, cfg.Queue.Topic)
	if err != nil {
		log.Error("create consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	var nt notifier.Notifier
	if cfg.Notifier.TelegramToken != "" {
		nt = notifier.NewTelegram(cfg.Notifier.TelegramToken, cfg.Notifier.TelegramChatIDs)
	}

	w := worker.NewConsumer(consumer, rdb, nt, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("consumer stopped", "error", err)
		}
	}()

	log.Info("consumer started", "topic", cfg.Queue.Topic)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
}
