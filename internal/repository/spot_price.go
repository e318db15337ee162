package repository

import (
	"context"
	"time"

	"forecast24/internal/models"
)

// SpotPriceRepository defines the durable keyed store for price
// observations. Insert is the authoritative duplicate detector: Exists is
// an advisory short-circuit only and may race under concurrent ingestion.
type SpotPriceRepository interface {
	Repository
	// Exists reports whether an observation with the same
	// (area, time_start) key is already stored.
	Exists(ctx context.Context, area models.Area, timeStart time.Time) (bool, error)
	// Insert persists one observation in its own transaction. A
	// storage-level uniqueness violation rolls back that attempt,
	// leaves the session clean, and returns ErrDuplicate.
	Insert(ctx context.Context, sp *models.SpotPrice) error
	// ListByAreaAndDate returns all observations for one area-day
	// ordered by time_start ascending. An empty result is valid.
	ListByAreaAndDate(ctx context.Context, area models.Area, date time.Time) ([]models.SpotPrice, error)
	// ListByAreaAndRange returns observations for a date range,
	// ordered by time_start ascending, capped at limit rows.
	ListByAreaAndRange(ctx context.Context, area models.Area, start, end time.Time, limit int) ([]models.SpotPrice, error)
	// ListSince returns observations with time_start at or after since,
	// ordered ascending.
	ListSince(ctx context.Context, area models.Area, since time.Time) ([]models.SpotPrice, error)
	// LatestTimestamp returns the most recent time_start for an area,
	// or ErrNotFound when the area has no rows.
	LatestTimestamp(ctx context.Context, area models.Area) (time.Time, error)
	// ExistingDates returns the set of calendar dates in [start, end]
	// that already hold at least one observation for the area, keyed by
	// YYYY-MM-DD.
	ExistingDates(ctx context.Context, area models.Area, start, end time.Time) (map[string]bool, error)
}
