package handlers

import (
	"net/http"
	"time"

	"forecast24/internal/models"

	"github.com/gin-gonic/gin"
)

// ForecastHandler serves the placeholder forecast curve. The curve is a
// deterministic daily profile, not a model output; it exists so frontend
// work can start before a real forecaster lands.
type ForecastHandler struct{}

// NewForecastHandler creates a new ForecastHandler
func NewForecastHandler() *ForecastHandler {
	return &ForecastHandler{}
}

type forecastQuery struct {
	Area  string `form:"area,default=NO1" binding:"omitempty,area"`
	Hours int    `form:"hours,default=24" binding:"omitempty,min=1,max=72"`
}

// placeholderPrice maps an hour of day onto the static daily profile:
// cheap at night, expensive around the morning and evening load peaks.
func placeholderPrice(hour int) float64 {
	base := 0.8
	switch {
	case hour <= 5:
		return base - 0.15
	case hour <= 9:
		return base + 0.2
	case hour >= 16 && hour <= 20:
		return base + 0.35
	default:
		return base + 0.05
	}
}

// GetForecast godoc
// @Summary Placeholder price forecast
// @Description Returns a deterministic hourly price curve starting at the next full hour. The values follow a fixed daily profile and carry no predictive power.
// @Tags forecast
// @Produce json
// @Param area query string false "Price area (NO1..NO5, default NO1)"
// @Param hours query int false "Forecast horizon in hours (default 24, max 72)"
// @Success 200 {object} models.ForecastResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /forecast [get]
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	var q forecastQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "area must be NO1..NO5 and hours 1..72"})
		return
	}

	now := time.Now().UTC()
	start := now.Truncate(time.Hour).Add(time.Hour)

	points := make([]models.ForecastPoint, 0, q.Hours)
	summary := models.ForecastSummary{
		Currency:     "NOK",
		Unit:         "kr/kWh",
		HorizonHours: q.Hours,
	}

	for i := 0; i < q.Hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		price := placeholderPrice(ts.Hour())
		points = append(points, models.ForecastPoint{
			Timestamp:      ts,
			PriceNOKPerKWh: price,
			Hour:           ts.Hour(),
		})

		if i == 0 || price < summary.MinPrice {
			summary.MinPrice = price
			summary.CheapestHour = ts.Hour()
			summary.CheapestTimestamp = ts
		}
		if i == 0 || price > summary.MaxPrice {
			summary.MaxPrice = price
			summary.PriciestHour = ts.Hour()
			summary.PriciestTimestamp = ts
		}
	}

	c.JSON(http.StatusOK, models.ForecastResponse{
		Status:      "ok",
		Area:        models.Area(q.Area),
		GeneratedAt: now,
		Summary:     summary,
		Points:      points,
	})
}
