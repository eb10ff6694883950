package queue

import (
	"context"

	"cpucatalog/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, ann domain.Announcement) error
	Close() error
}

type Consumer interface {
	Consume(ctx context.Context, handler func(ann domain.Announcement) error) error
	Close() error
}
