package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forecast24/internal/hvakoster"
	"forecast24/internal/models"
	"forecast24/internal/repository"
)

// Fetcher produces the raw upstream payload for one area-day.
type Fetcher interface {
	FetchDay(ctx context.Context, area models.Area, date time.Time) ([]hvakoster.Record, error)
}

// DayResult reports the outcome of ingesting a single (area, date) pair.
type DayResult struct {
	Area    models.Area
	Date    time.Time
	Added   int
	Skipped int
	// Dropped counts raw records the normalizer rejected.
	Dropped int
	// NoData marks a day the upstream has no prices for. Not an error.
	NoData bool
}

// Ingestor ingests one area-day at a time, idempotently: re-running the
// same pair adds nothing and leaves the stored rows unchanged.
type Ingestor struct {
	fetcher Fetcher
	repo    repository.SpotPriceRepository
}

// NewIngestor creates a day ingestor on top of a fetcher and a store.
func NewIngestor(fetcher Fetcher, repo repository.SpotPriceRepository) *Ingestor {
	return &Ingestor{fetcher: fetcher, repo: repo}
}

// IngestDay fetches, normalizes and stores one area-day. A missing
// upstream day returns a NoData result and a nil error. Duplicate rows,
// whether caught by the advisory existence check or by the storage
// constraint, count as skipped and never fail the day.
func (in *Ingestor) IngestDay(ctx context.Context, area models.Area, date time.Time) (DayResult, error) {
	result := DayResult{Area: area, Date: date}

	records, err := in.fetcher.FetchDay(ctx, area, date)
	if err != nil {
		if errors.Is(err, hvakoster.ErrNoData) {
			result.NoData = true
			return result, nil
		}
		return result, fmt.Errorf("fetch %s %s: %w", area, date.Format("2006-01-02"), err)
	}

	observations, dropped := Normalize(area, records)
	result.Dropped = dropped

	for i := range observations {
		sp := &observations[i]

		exists, err := in.repo.Exists(ctx, sp.Area, sp.TimeStart)
		if err != nil {
			return result, fmt.Errorf("existence check %s %s: %w", area, sp.TimeStart, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		// The existence check can go stale under concurrent ingestion;
		// the uniqueness constraint is the backstop.
		if err := in.repo.Insert(ctx, sp); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("insert %s %s: %w", area, sp.TimeStart, err)
		}
		result.Added++
	}

	return result, nil
}
