package worker

import (
	"context"
	"log/slog"

	"cpucatalog/internal/cache"
	"cpucatalog/internal/domain"
	"cpucatalog/internal/generation"
	"cpucatalog/internal/notifier"
	"cpucatalog/internal/queue"
)

// Consumer drains the announcement queue, classifies each item, and keeps
// the recent-candidates list current. It never writes to the catalog;
// candidates are surfaced for curation.
type Consumer struct {
	consumer   queue.Consumer
	candidates *cache.Client
	notifier   notifier.Notifier
	log        *slog.Logger
}

func NewConsumer(c queue.Consumer, candidates *cache.Client, n notifier.Notifier, log *slog.Logger) *Consumer {
	return &Consumer{
		consumer:   c,
		candidates: candidates,
		notifier:   n,
		log:        log,
	}
}

func (w *Consumer) Start(ctx context.Context) error {
	return w.consumer.Consume(ctx, func(ann domain.Announcement) error {
		return w.handle(ctx, ann)
	})
}

func (w *Consumer) handle(ctx context.Context, ann domain.Announcement) error {
	cand := Classify(ann)

	w.log.Info("announcement classified",
		"source", ann.Source,
		"model", cand.Model,
		"codename", cand.Codename)

	if err := w.candidates.PushCandidate(ctx, cand); err != nil {
		w.log.Error("push candidate", "error", err)
		return err
	}

	if cand.Codename != generation.Unknown && w.notifier != nil {
		if err := w.notifier.Notify(ctx, cand); err != nil {
			w.log.Error("notify", "error", err)
		}
	}

	return nil
}

// Classify turns an announcement into a classification candidate: model
// string from the title, launch year from the publication date, family
// from the feed's hint.
func Classify(ann domain.Announcement) domain.Candidate {
	model := extractModel(ann.Title)
	year := ann.PublishedAt.Year()

	return domain.Candidate{
		Announcement: ann,
		Model:        model,
		LaunchYear:   year,
		Codename:     generation.Classify(model, year, ann.FamilyHint),
	}
}
