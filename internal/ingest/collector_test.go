package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"forecast24/internal/ingest"
	"forecast24/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCollector_Collect(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, cet)
	end := start.AddDate(0, 0, 4) // five days inclusive

	t.Run("Failed Day Does Not Stop The Range", func(t *testing.T) {
		fetcher := newFakeFetcher()
		for i := 0; i < 5; i++ {
			day := start.AddDate(0, 0, i)
			fetcher.setDay(models.AreaNO1, day, hourlyRecords(day, 24))
		}
		day3 := start.AddDate(0, 0, 2)
		fetcher.failDay(models.AreaNO1, day3, errors.New("dial tcp: i/o timeout"))

		repo := newFakeRepo()
		collector := ingest.NewCollector(ingest.NewIngestor(fetcher, repo), repo, []models.Area{models.AreaNO1}, false)

		summary := collector.Collect(context.Background(), start, end)
		require.Equal(t, 4*24, summary.Added)
		require.Equal(t, 1, summary.FailedDays)
		require.Equal(t, 0, summary.NoDataDays)

		// The failed day stays retryable without touching the others.
		fetcher.failures = map[string]error{}
		retry := collector.Collect(context.Background(), start, end)
		require.Equal(t, 24, retry.Added)
		require.Equal(t, 4*24, retry.Skipped)
		require.Equal(t, 0, retry.FailedDays)
		require.Equal(t, 5*24, repo.count())
	})

	t.Run("NoData Days Are Not Failures", func(t *testing.T) {
		fetcher := newFakeFetcher()
		fetcher.setDay(models.AreaNO1, start, hourlyRecords(start, 24))
		// remaining four days have no upstream data

		repo := newFakeRepo()
		collector := ingest.NewCollector(ingest.NewIngestor(fetcher, repo), repo, []models.Area{models.AreaNO1}, false)

		summary := collector.Collect(context.Background(), start, end)
		require.Equal(t, 24, summary.Added)
		require.Equal(t, 4, summary.NoDataDays)
		require.Equal(t, 0, summary.FailedDays)
	})

	t.Run("Covers All Configured Areas", func(t *testing.T) {
		fetcher := newFakeFetcher()
		for _, area := range models.Areas() {
			fetcher.setDay(area, start, hourlyRecords(start, 24))
		}

		repo := newFakeRepo()
		collector := ingest.NewCollector(ingest.NewIngestor(fetcher, repo), repo, nil, false)

		summary := collector.Collect(context.Background(), start, start)
		require.Equal(t, 5*24, summary.Added)
		require.Equal(t, 5*24, repo.count())
	})

	t.Run("Skips Days Already Present", func(t *testing.T) {
		fetcher := newFakeFetcher()
		for i := 0; i < 5; i++ {
			day := start.AddDate(0, 0, i)
			fetcher.setDay(models.AreaNO1, day, hourlyRecords(day, 24))
		}

		repo := newFakeRepo()
		ingestor := ingest.NewIngestor(fetcher, repo)

		day2 := start.AddDate(0, 0, 1)
		_, err := ingestor.IngestDay(context.Background(), models.AreaNO1, day2)
		require.NoError(t, err)
		fetchesBefore := fetcher.calls

		collector := ingest.NewCollector(ingestor, repo, []models.Area{models.AreaNO1}, true)
		summary := collector.Collect(context.Background(), start, end)

		require.Equal(t, 1, summary.SkippedDays)
		require.Equal(t, 4*24, summary.Added)
		// the present day was never re-fetched
		require.Equal(t, 4, fetcher.calls-fetchesBefore)
	})

	t.Run("Cancellation Stops Between Days", func(t *testing.T) {
		fetcher := newFakeFetcher()
		repo := newFakeRepo()
		collector := ingest.NewCollector(ingest.NewIngestor(fetcher, repo), repo, nil, false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary := collector.Collect(ctx, start, end)
		require.Equal(t, 0, summary.Added)
		require.Equal(t, 0, fetcher.calls)
	})
}
