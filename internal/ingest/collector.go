package ingest

import (
	"context"
	"log"
	"time"

	"forecast24/internal/models"
	"forecast24/internal/repository"
)

// Summary aggregates the outcome of a range collection.
type Summary struct {
	Added      int
	Skipped    int
	Dropped    int
	NoDataDays int
	// FailedDays counts area-days that errored; they stay retryable by
	// a later run without affecting the rest of the range.
	FailedDays  int
	SkippedDays int
	Days        []DayResult
}

// Collector drives the day ingestor across an inclusive date range and
// all configured areas, sequentially, continuing past per-day failures.
type Collector struct {
	ingestor *Ingestor
	repo     repository.SpotPriceRepository
	areas    []models.Area
	// skipExisting skips days that already hold at least one row for
	// the area. A whole-day presence check: a partially ingested day is
	// skipped too, so disable this to force a full re-scan.
	skipExisting bool
}

// NewCollector creates a range collector over the given areas.
func NewCollector(ingestor *Ingestor, repo repository.SpotPriceRepository, areas []models.Area, skipExisting bool) *Collector {
	if len(areas) == 0 {
		areas = models.Areas()
	}
	return &Collector{
		ingestor:     ingestor,
		repo:         repo,
		areas:        areas,
		skipExisting: skipExisting,
	}
}

// Collect ingests every date from start to end inclusive for every
// configured area. A failing day is logged with its area and date and
// does not stop the range; re-running the same range is a safe no-op for
// days that completed.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) Summary {
	return c.CollectAreas(ctx, c.areas, start, end)
}

// CollectAreas is Collect restricted to an explicit area subset.
func (c *Collector) CollectAreas(ctx context.Context, areas []models.Area, start, end time.Time) Summary {
	var summary Summary

	if len(areas) == 0 {
		areas = c.areas
	}
	start = truncateToDay(start)
	end = truncateToDay(end)

	for _, area := range areas {
		existing := map[string]bool{}
		if c.skipExisting {
			var err error
			existing, err = c.repo.ExistingDates(ctx, area, start, end)
			if err != nil {
				log.Printf("[%s] failed to load existing dates, not skipping: %v", area, err)
				existing = map[string]bool{}
			}
		}

		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			if ctx.Err() != nil {
				log.Printf("[%s] collection cancelled at %s", area, date.Format("2006-01-02"))
				return summary
			}

			if existing[date.Format("2006-01-02")] {
				summary.SkippedDays++
				continue
			}

			result, err := c.ingestor.IngestDay(ctx, area, date)
			if err != nil {
				summary.FailedDays++
				log.Printf("[%s] %s: ingest failed: %v", area, date.Format("2006-01-02"), err)
				continue
			}

			summary.Added += result.Added
			summary.Skipped += result.Skipped
			summary.Dropped += result.Dropped
			summary.Days = append(summary.Days, result)

			if result.NoData {
				summary.NoDataDays++
				log.Printf("[%s] %s: no data", area, date.Format("2006-01-02"))
				continue
			}
			log.Printf("[%s] %s: +%d added, %d skipped, %d dropped",
				area, date.Format("2006-01-02"), result.Added, result.Skipped, result.Dropped)
		}
	}

	log.Printf("collection done: +%d added, %d skipped, %d dropped, %d no-data days, %d failed days, %d days skipped as existing",
		summary.Added, summary.Skipped, summary.Dropped, summary.NoDataDays, summary.FailedDays, summary.SkippedDays)

	return summary
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
