// Package ingest contains the ingestion pipeline: normalization of raw
// upstream records, idempotent per-day ingestion, and range collection.
package ingest

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"forecast24/internal/hvakoster"
	"forecast24/internal/models"
)

const dateLayout = "2006-01-02"

// Normalize converts raw upstream records into validated price
// observations tagged with the requested area. Records that cannot be
// normalized are dropped individually and counted; a bad record never
// aborts the rest of the day.
func Normalize(area models.Area, records []hvakoster.Record) ([]models.SpotPrice, int) {
	observations := make([]models.SpotPrice, 0, len(records))
	dropped := 0

	for _, rec := range records {
		sp, ok := normalizeRecord(area, rec)
		if !ok {
			dropped++
			continue
		}
		observations = append(observations, sp)
	}

	return observations, dropped
}

func normalizeRecord(area models.Area, rec hvakoster.Record) (models.SpotPrice, bool) {
	// The calendar date comes from the raw string prefix, not the parsed
	// timestamp, so it always matches what the source published.
	if len(rec.TimeStart) < len(dateLayout) {
		return models.SpotPrice{}, false
	}

	start, err := time.Parse(time.RFC3339, rec.TimeStart)
	if err != nil {
		return models.SpotPrice{}, false
	}
	end, err := time.Parse(time.RFC3339, rec.TimeEnd)
	if err != nil {
		return models.SpotPrice{}, false
	}
	if !start.Before(end) {
		return models.SpotPrice{}, false
	}

	date, err := time.Parse(dateLayout, rec.TimeStart[:len(dateLayout)])
	if err != nil {
		return models.SpotPrice{}, false
	}

	nok, ok := parseFloat(rec.NOKPerKWh)
	if !ok {
		return models.SpotPrice{}, false
	}

	return models.SpotPrice{
		Area:      area,
		Date:      date,
		TimeStart: start,
		TimeEnd:   end,
		NOKPerKWh: nok,
		EURPerKWh: parseOptional(rec.EURPerKWh),
		EXR:       parseOptional(rec.EXR),
	}, true
}

// parseFloat reads a raw JSON value as a number, accepting both bare
// numbers and numeric strings.
func parseFloat(raw json.RawMessage) (float64, bool) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseOptional applies the upstream convention for the optional fields:
// a falsy raw value (absent, null, empty, or zero) means the field does
// not apply to this area and period, and is stored as absent rather than
// as numeric zero.
func parseOptional(raw json.RawMessage) *float64 {
	v, ok := parseFloat(raw)
	if !ok || v == 0 {
		return nil
	}
	return &v
}
