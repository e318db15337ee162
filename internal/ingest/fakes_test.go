package ingest_test

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"forecast24/internal/hvakoster"
	"forecast24/internal/models"
	"forecast24/internal/repository"

	"github.com/google/uuid"
)

// hourlyRecords builds n consecutive valid raw records starting at t.
func hourlyRecords(t time.Time, n int) []hvakoster.Record {
	records := make([]hvakoster.Record, 0, n)
	for i := 0; i < n; i++ {
		start := t.Add(time.Duration(i) * time.Hour)
		end := start.Add(time.Hour)
		records = append(records, hvakoster.Record{
			TimeStart: start.Format(time.RFC3339),
			TimeEnd:   end.Format(time.RFC3339),
			NOKPerKWh: raw(fmt.Sprintf("%.3f", 0.5+float64(i)*0.01)),
			EURPerKWh: raw(`0.045`),
			EXR:       raw(`11.45`),
		})
	}
	return records
}

type fakeFetcher struct {
	payloads map[string][]hvakoster.Record
	failures map[string]error
	calls    int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		payloads: make(map[string][]hvakoster.Record),
		failures: make(map[string]error),
	}
}

func fetchKey(area models.Area, date time.Time) string {
	return string(area) + "/" + date.Format("2006-01-02")
}

func (f *fakeFetcher) setDay(area models.Area, date time.Time, records []hvakoster.Record) {
	f.payloads[fetchKey(area, date)] = records
}

func (f *fakeFetcher) failDay(area models.Area, date time.Time, err error) {
	f.failures[fetchKey(area, date)] = err
}

func (f *fakeFetcher) FetchDay(ctx context.Context, area models.Area, date time.Time) ([]hvakoster.Record, error) {
	f.calls++
	key := fetchKey(area, date)
	if err, ok := f.failures[key]; ok {
		return nil, err
	}
	records, ok := f.payloads[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", hvakoster.ErrNoData, key)
	}
	return records, nil
}

// fakeRepo is an in-memory SpotPriceRepository keyed by (area, time_start)
// with the same duplicate semantics as the Postgres store.
type fakeRepo struct {
	mu   sync.Mutex
	rows map[string]models.SpotPrice
	// staleExists makes Exists always answer false, simulating a racing
	// ingestor so Insert's constraint is exercised as the backstop.
	staleExists bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]models.SpotPrice)}
}

func rowKey(area models.Area, ts time.Time) string {
	return string(area) + "|" + ts.UTC().Format(time.RFC3339)
}

func (r *fakeRepo) DB() *sql.DB { return nil }

func (r *fakeRepo) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeRepo) Exists(ctx context.Context, area models.Area, timeStart time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleExists {
		return false, nil
	}
	_, ok := r.rows[rowKey(area, timeStart)]
	return ok, nil
}

func (r *fakeRepo) Insert(ctx context.Context, sp *models.SpotPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := rowKey(sp.Area, sp.TimeStart)
	if _, ok := r.rows[key]; ok {
		return repository.ErrDuplicate
	}
	sp.ID = uuid.New()
	sp.CreatedAt = time.Now().UTC()
	r.rows[key] = *sp
	return nil
}

func (r *fakeRepo) ListByAreaAndDate(ctx context.Context, area models.Area, date time.Time) ([]models.SpotPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SpotPrice
	for _, sp := range r.rows {
		if sp.Area == area && sp.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeStart.Before(out[j].TimeStart) })
	return out, nil
}

func (r *fakeRepo) ListByAreaAndRange(ctx context.Context, area models.Area, start, end time.Time, limit int) ([]models.SpotPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SpotPrice
	for _, sp := range r.rows {
		if sp.Area == area && !sp.Date.Before(start) && !sp.Date.After(end) {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeStart.Before(out[j].TimeStart) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) ListSince(ctx context.Context, area models.Area, since time.Time) ([]models.SpotPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SpotPrice
	for _, sp := range r.rows {
		if sp.Area == area && !sp.TimeStart.Before(since) {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeStart.Before(out[j].TimeStart) })
	return out, nil
}

func (r *fakeRepo) LatestTimestamp(ctx context.Context, area models.Area) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest time.Time
	found := false
	for _, sp := range r.rows {
		if sp.Area == area && sp.TimeStart.After(latest) {
			latest = sp.TimeStart
			found = true
		}
	}
	if !found {
		return time.Time{}, repository.ErrNotFound
	}
	return latest, nil
}

func (r *fakeRepo) ExistingDates(ctx context.Context, area models.Area, start, end time.Time) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dates := make(map[string]bool)
	for _, sp := range r.rows {
		if sp.Area == area && !sp.Date.Before(start) && !sp.Date.After(end) {
			dates[sp.Date.Format("2006-01-02")] = true
		}
	}
	return dates, nil
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
