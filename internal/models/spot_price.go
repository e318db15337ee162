package models

import (
	"time"

	"github.com/google/uuid"
)

// SpotPrice represents one stored hourly price observation. Rows are
// immutable once written; the only lifecycle events are insert and read.
type SpotPrice struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Area      Area      `json:"area" db:"area" example:"NO1"`
	Date      time.Time `json:"date" db:"date"`
	TimeStart time.Time `json:"time_start" db:"time_start"`
	TimeEnd   time.Time `json:"time_end" db:"time_end"`
	NOKPerKWh float64   `json:"nok_per_kwh" db:"nok_per_kwh"`
	// EURPerKWh and EXR are nil when the upstream source did not supply
	// them; absent is never coerced to zero.
	EURPerKWh *float64  `json:"eur_per_kwh,omitempty" db:"eur_per_kwh"`
	EXR       *float64  `json:"exr,omitempty" db:"exr"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ForecastPoint is a single hour of the placeholder forecast curve.
type ForecastPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	PriceNOKPerKWh float64   `json:"price_nok_per_kwh" example:"0.85"`
	Hour           int       `json:"hour" example:"17"`
}

// ForecastSummary aggregates the forecast curve for quick display.
type ForecastSummary struct {
	Currency          string    `json:"currency" example:"NOK"`
	Unit              string    `json:"unit" example:"kr/kWh"`
	HorizonHours      int       `json:"horizon_hours" example:"24"`
	MinPrice          float64   `json:"min_price"`
	MaxPrice          float64   `json:"max_price"`
	CheapestHour      int       `json:"cheapest_hour"`
	CheapestTimestamp time.Time `json:"cheapest_timestamp"`
	PriciestHour      int       `json:"priciest_hour"`
	PriciestTimestamp time.Time `json:"priciest_timestamp"`
}

// ForecastResponse is the response of the placeholder forecast endpoint.
type ForecastResponse struct {
	Status      string          `json:"status" example:"ok"`
	Area        Area            `json:"area" example:"NO1"`
	GeneratedAt time.Time       `json:"generated_at"`
	Summary     ForecastSummary `json:"summary"`
	Points      []ForecastPoint `json:"points"`
}
