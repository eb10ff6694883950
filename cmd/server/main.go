package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cpucatalog/internal/api"
	"cpucatalog/internal/auth"
	"cpucatalog/internal/cache"
	"cpucatalog/internal/config"
	"cpucatalog/internal/storage"
)

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

	var rdb *cache.Client
	if cfg.Redis.Addr != "" {
		rdb, err = cache.New(cfg.Redis.Addr)
		if err != nil {
			log.Error("connect to redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
	}

	authSvc := auth.New(cfg.Auth.Secret, cfg.Auth.AdminToken, cfg.Auth.TokenTTL)

	server := api.NewServer(repo, rdb, authSvc, cfg.Auth.AdminPassword)

	go func() {
		log.Info("server starting", "addr", cfg.Server.Port)
		if err := server.Start(cfg.Server.Port); err != nil {
			log.Error("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	server.Shutdown()
}
