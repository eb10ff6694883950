package storage

import (
	"context"

	"cpucatalog/internal/domain"
)

type CPURepository interface {
	Save(ctx context.Context, cpu domain.CPU) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.CPU, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.CPU, error)
	Search(ctx context.Context, query string) ([]domain.CPU, error)
	Update(ctx context.Context, cpu domain.CPU) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (domain.Stats, error)

	// FindUnclassified returns records with no codename but enough input
	// for classification (model and launch year present). SetCodename is
	// the matching narrow write used by the backfill.
	FindUnclassified(ctx context.Context) ([]domain.CPU, error)
	SetCodename(ctx context.Context, id int64, codename string) error
}
