package watcher

import (
	"context"

	"cpucatalog/internal/config"
	"cpucatalog/internal/domain"
)

type Watcher interface {
	Fetch(ctx context.Context, feed config.FeedConfig) ([]domain.Announcement, error)
}
