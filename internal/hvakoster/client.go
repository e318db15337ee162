// Package hvakoster fetches raw day-ahead spot prices from the
// hvakosterstrommen.no public API, one area-day per request.
package hvakoster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"forecast24/internal/models"

	"github.com/sony/gobreaker"
)

// BaseURL is the base URL for the hvakosterstrommen.no price API
const BaseURL = "https://www.hvakosterstrommen.no/api/v1/prices"

// ErrNoData is returned when the upstream has no prices for an area-day.
// This is expected for future dates and for days outside the source's
// retention window and must not be treated as a failure by callers.
var ErrNoData = errors.New("no price data for area and date")

// Record is a single raw hourly entry as delivered by the upstream API.
// Timestamps stay strings and prices stay raw JSON; all interpretation
// belongs to the normalizer.
type Record struct {
	TimeStart string          `json:"time_start"`
	TimeEnd   string          `json:"time_end"`
	NOKPerKWh json.RawMessage `json:"NOK_per_kWh"`
	EURPerKWh json.RawMessage `json:"EUR_per_kWh"`
	EXR       json.RawMessage `json:"EXR"`
}

// Client requests one area-day of raw price observations per call.
type Client struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a client for the given base URL. An empty baseURL
// selects the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "hvakosterstrommen",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 20 * time.Second},
		breaker: cb,
	}
}

// dayURL builds the request URL. The API encodes the date with a slash
// between year and month: .../2025/01-02_NO1.json
func (c *Client) dayURL(area models.Area, date time.Time) string {
	return fmt.Sprintf("%s/%s_%s.json", c.baseURL, date.Format("2006/01-02"), area)
}

// FetchDay fetches the raw hourly records for one area and calendar date.
// A non-success response is reported as ErrNoData; transport failures are
// returned as-is and are transient by nature. Retrying is the caller's
// responsibility.
func (c *Client) FetchDay(ctx context.Context, area models.Area, date time.Time) ([]Record, error) {
	if !area.Valid() {
		return nil, fmt.Errorf("invalid area %q", area)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dayURL(area, date), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// The breaker guards the transport only. Non-success statuses are a
	// valid upstream answer and must not trip it.
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.Do(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("upstream circuit open: %w", err)
		}
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for %s %s",
			ErrNoData, resp.StatusCode, area, date.Format("2006-01-02"))
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return records, nil
}
