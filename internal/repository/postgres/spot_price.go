// Package postgres contains the PostgreSQL repository implementations
package postgres

import (
	"context"
	"database/sql"
	"time"

	"forecast24/internal/models"
	"forecast24/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type spotPriceRepository struct {
	repository.BaseRepository
}

// NewSpotPriceRepository creates a new PostgreSQL spot price repository
func NewSpotPriceRepository(db *sql.DB) repository.SpotPriceRepository {
	return &spotPriceRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

const spotPriceColumns = `id, area, date, time_start, time_end, nok_per_kwh, eur_per_kwh, exr, created_at`

func (r *spotPriceRepository) Exists(ctx context.Context, area models.Area, timeStart time.Time) (bool, error) {
	var exists bool
	err := r.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM spot_prices WHERE area = $1 AND time_start = $2)`,
		area, timeStart,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *spotPriceRepository) Insert(ctx context.Context, sp *models.SpotPrice) error {
	// Each attempt runs in its own transaction so a constraint violation
	// rolls back only this row and prior inserts in the run stay
	// committed.
	tx, err := r.DB().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	sp.ID = uuid.New()

	query := `
		INSERT INTO spot_prices (id, area, date, time_start, time_end, nok_per_kwh, eur_per_kwh, exr)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, query,
		sp.ID,
		sp.Area,
		sp.Date,
		sp.TimeStart,
		sp.TimeEnd,
		sp.NOKPerKWh,
		sp.EURPerKWh,
		sp.EXR,
	).Scan(&sp.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return repository.ErrDuplicate
		}
		return err
	}

	return tx.Commit()
}

func (r *spotPriceRepository) ListByAreaAndDate(ctx context.Context, area models.Area, date time.Time) ([]models.SpotPrice, error) {
	query := `
		SELECT ` + spotPriceColumns + `
		FROM spot_prices
		WHERE area = $1 AND date = $2
		ORDER BY time_start ASC`

	return r.queryList(ctx, query, area, date)
}

func (r *spotPriceRepository) ListByAreaAndRange(ctx context.Context, area models.Area, start, end time.Time, limit int) ([]models.SpotPrice, error) {
	query := `
		SELECT ` + spotPriceColumns + `
		FROM spot_prices
		WHERE area = $1 AND date >= $2 AND date <= $3
		ORDER BY time_start ASC
		LIMIT $4`

	return r.queryList(ctx, query, area, start, end, limit)
}

func (r *spotPriceRepository) ListSince(ctx context.Context, area models.Area, since time.Time) ([]models.SpotPrice, error) {
	query := `
		SELECT ` + spotPriceColumns + `
		FROM spot_prices
		WHERE area = $1 AND time_start >= $2
		ORDER BY time_start ASC`

	return r.queryList(ctx, query, area, since)
}

func (r *spotPriceRepository) LatestTimestamp(ctx context.Context, area models.Area) (time.Time, error) {
	var ts time.Time
	err := r.DB().QueryRowContext(ctx,
		`SELECT time_start FROM spot_prices WHERE area = $1 ORDER BY time_start DESC LIMIT 1`,
		area,
	).Scan(&ts)

	if err == sql.ErrNoRows {
		return time.Time{}, repository.ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

func (r *spotPriceRepository) ExistingDates(ctx context.Context, area models.Area, start, end time.Time) (map[string]bool, error) {
	rows, err := r.DB().QueryContext(ctx,
		`SELECT DISTINCT date FROM spot_prices WHERE area = $1 AND date >= $2 AND date <= $3`,
		area, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates[d.Format("2006-01-02")] = true
	}
	return dates, rows.Err()
}

func (r *spotPriceRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]models.SpotPrice, error) {
	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spotPrices []models.SpotPrice
	for rows.Next() {
		var sp models.SpotPrice
		if err := rows.Scan(
			&sp.ID,
			&sp.Area,
			&sp.Date,
			&sp.TimeStart,
			&sp.TimeEnd,
			&sp.NOKPerKWh,
			&sp.EURPerKWh,
			&sp.EXR,
			&sp.CreatedAt,
		); err != nil {
			return nil, err
		}
		spotPrices = append(spotPrices, sp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return spotPrices, nil
}
