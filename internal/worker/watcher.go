package worker

import (
	"context"
	"log/slog"
	"time"

	"cpucatalog/internal/cache"
	"cpucatalog/internal/config"
	"cpucatalog/internal/queue"
	"cpucatalog/internal/watcher"
)

// Watcher polls the configured vendor feeds and publishes unseen
// announcements to the ingest queue. Dedupe state lives in redis so
// restarts do not replay old items.
type Watcher struct {
	watcher   watcher.Watcher
	publisher queue.Publisher
	seen      *cache.Client
	feeds     []config.FeedConfig
	interval  time.Duration
	log       *slog.Logger
}

func NewWatcher(w watcher.Watcher, p queue.Publisher, seen *cache.Client, cfg config.WatcherConfig, log *slog.Logger) *Watcher {
	return &Watcher{
		watcher:   w,
		publisher: p,
		seen:      seen,
		feeds:     cfg.Feeds,
		interval:  cfg.Interval,
		log:       log,
	}
}

func (w *Watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.fetchAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAll(ctx)
		}
	}
}

func (w *Watcher) fetchAll(ctx context.Context) {
	for _, feed := range w.feeds {
		announcements, err := w.watcher.Fetch(ctx, feed)
		if err != nil {
			w.log.Error("fetch feed", "feed", feed.Name, "error", err)
			continue
		}

		published := 0
		for _, ann := range announcements {
			fresh, err := w.seen.MarkSeen(ctx, ann.ID)
			if err != nil {
				w.log.Error("mark seen", "feed", feed.Name, "error", err)
				continue
			}
			if !fresh {
				continue
			}

			if err := w.publisher.Publish(ctx, ann); err != nil {
				w.log.Error("publish announcement", "feed", feed.Name, "error", err)
				continue
			}
			published++
		}

		w.log.Info("feed polled", "feed", feed.Name, "fetched", len(announcements), "published", published)
	}
}
