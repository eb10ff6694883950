package worker

import (
	"context"
	"log/slog"

	"cpucatalog/internal/generation"
	"cpucatalog/internal/storage"
)

// Backfill sweeps the catalog once and fills in missing codenames. Records
// that already carry a codename are never touched; records the classifier
// cannot place are left as they are.
type Backfill struct {
	repo storage.CPURepository
	log  *slog.Logger
}

func NewBackfill(repo storage.CPURepository, log *slog.Logger) *Backfill {
	return &Backfill{repo: repo, log: log}
}

// Run returns how many records were updated out of how many candidates.
func (b *Backfill) Run(ctx context.Context) (updated, total int, err error) {
	cpus, err := b.repo.FindUnclassified(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, cpu := range cpus {
		codename := generation.Classify(cpu.Model, cpu.Year(), cpu.Family)
		if codename == generation.Unknown {
			continue
		}

		if err := b.repo.SetCodename(ctx, cpu.ID, codename); err != nil {
			return updated, len(cpus), err
		}
		updated++
	}

	b.log.Info("backfill complete", "updated", updated, "candidates", len(cpus))
	return updated, len(cpus), nil
}
