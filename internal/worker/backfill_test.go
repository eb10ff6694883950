package worker

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpucatalog/internal/domain"
	"cpucatalog/internal/generation"
	"cpucatalog/internal/storage"
)

func intp(v int) *int { return &v }

func TestBackfillRun(t *testing.T) {
	repo := storage.NewMemory()
	ctx := context.Background()

	naplesID, err := repo.Save(ctx, domain.CPU{
		ModelName: "AMD EPYC 7301", Family: "AMD EPYC", Model: "EPYC 7301", LaunchYear: intp(2017),
	})
	require.NoError(t, err)

	labeledID, err := repo.Save(ctx, domain.CPU{
		ModelName: "Intel Xeon Gold 6240", Family: "Intel Xeon Gold", Model: "Gold 6240",
		Codename: "Hand Labeled", LaunchYear: intp(2019),
	})
	require.NoError(t, err)

	unknownID, err := repo.Save(ctx, domain.CPU{
		ModelName: "AMD Opteron 6380", Family: "AMD Opteron", Model: "Opteron 6380", LaunchYear: intp(2012),
	})
	require.NoError(t, err)

	// Missing year: not a backfill candidate at all.
	noYearID, err := repo.Save(ctx, domain.CPU{
		ModelName: "AMD EPYC 7302", Family: "AMD EPYC", Model: "EPYC 7302",
	})
	require.NoError(t, err)

	updated, total, err := NewBackfill(repo, slog.Default()).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 2, total)

	naples, err := repo.FindByID(ctx, naplesID)
	require.NoError(t, err)
	assert.Equal(t, generation.Naples, naples.Codename)

	labeled, err := repo.FindByID(ctx, labeledID)
	require.NoError(t, err)
	assert.Equal(t, "Hand Labeled", labeled.Codename)

	unknown, err := repo.FindByID(ctx, unknownID)
	require.NoError(t, err)
	assert.Empty(t, unknown.Codename)

	noYear, err := repo.FindByID(ctx, noYearID)
	require.NoError(t, err)
	assert.Empty(t, noYear.Codename)
}

func TestClassifyAnnouncement(t *testing.T) {
	ann := domain.Announcement{
		Source:      "amd-newsroom",
		FamilyHint:  "AMD EPYC",
		Title:       "AMD Launches EPYC 9354 Processors for the Modern Data Center",
		PublishedAt: time.Date(2023, 6, 13, 0, 0, 0, 0, time.UTC),
	}

	cand := Classify(ann)
	assert.Equal(t, "EPYC 9354", cand.Model)
	assert.Equal(t, 2023, cand.LaunchYear)
	assert.Equal(t, generation.Genoa, cand.Codename)
}

func TestClassifyAnnouncementNoModel(t *testing.T) {
	ann := domain.Announcement{
		Source:      "intel-newsroom",
		FamilyHint:  "Intel Xeon",
		Title:       "Intel Reports Quarterly Results",
		PublishedAt: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
	}

	cand := Classify(ann)
	assert.Empty(t, cand.Model)
	assert.Equal(t, generation.Unknown, cand.Codename)
}

func TestExtractModel(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"AMD Launches EPYC 9354 Processors", "EPYC 9354"},
		{"4th Gen Intel Xeon Platinum 8480+ Now Available", "Xeon Platinum 8480+"},
		{"Intel Xeon E5-2690 v3 Refresh", "E5-2690 v3"},
		{"Nothing to see here", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractModel(tt.title), tt.title)
	}
}
