package notifier

import (
	"context"

	"cpucatalog/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, cand domain.Candidate) error
}
