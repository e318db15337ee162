package handlers

import (
	"errors"
	"net/http"
	"time"

	"forecast24/internal/models"
	"forecast24/internal/repository"

	"github.com/gin-gonic/gin"
)

// SpotPriceHandler handles spot price-related requests
type SpotPriceHandler struct {
	repo repository.SpotPriceRepository
}

// NewSpotPriceHandler creates a new SpotPriceHandler
func NewSpotPriceHandler(repo repository.SpotPriceRepository) *SpotPriceHandler {
	return &SpotPriceHandler{repo: repo}
}

type dayQuery struct {
	Area string `form:"area" binding:"required,area"`
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// GetSpotPricesForDay godoc
// @Summary Spot prices for one area-day
// @Description Returns all stored observations for an area and calendar date, ordered by interval start. An empty list means no data for that day and is not an error.
// @Tags spot-prices
// @Produce json
// @Param area query string true "Price area (NO1..NO5)"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} models.SpotPrice
// @Failure 400 {object} models.ErrorResponse "Invalid area or date"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /spotprices [get]
func (h *SpotPriceHandler) GetSpotPricesForDay(c *gin.Context) {
	var q dayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "area must be NO1..NO5 and date YYYY-MM-DD"})
		return
	}

	date, _ := time.Parse("2006-01-02", q.Date)

	prices, err := h.repo.ListByAreaAndDate(c.Request.Context(), models.Area(q.Area), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch spot prices"})
		return
	}
	if prices == nil {
		prices = []models.SpotPrice{}
	}

	c.JSON(http.StatusOK, prices)
}

type latestQuery struct {
	Area  string `form:"area" binding:"required,area"`
	Hours int    `form:"hours,default=48" binding:"omitempty,min=1,max=168"`
}

// GetLatestSpotPrices godoc
// @Summary Most recent spot prices for an area
// @Description Returns the stored observations inside a window counted back from the latest stored interval start (default 48 hours, max 168).
// @Tags spot-prices
// @Produce json
// @Param area query string true "Price area (NO1..NO5)"
// @Param hours query int false "Window size in hours"
// @Success 200 {array} models.SpotPrice
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /spotprices/latest [get]
func (h *SpotPriceHandler) GetLatestSpotPrices(c *gin.Context) {
	var q latestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "area must be NO1..NO5 and hours 1..168"})
		return
	}

	area := models.Area(q.Area)
	latest, err := h.repo.LatestTimestamp(c.Request.Context(), area)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, []models.SpotPrice{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch latest timestamp"})
		return
	}

	since := latest.Add(-time.Duration(q.Hours-1) * time.Hour)
	prices, err := h.repo.ListSince(c.Request.Context(), area, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch spot prices"})
		return
	}

	c.JSON(http.StatusOK, prices)
}

type historyQuery struct {
	Area  string `form:"area" binding:"required,area"`
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
	Limit int    `form:"limit,default=5000" binding:"omitempty,min=1,max=20000"`
}

// GetSpotPriceHistory godoc
// @Summary Historical spot prices for an area
// @Description Returns stored observations for an area, optionally bounded by start and end dates (inclusive), ordered by interval start and capped at limit rows.
// @Tags spot-prices
// @Produce json
// @Param area query string true "Price area (NO1..NO5)"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Maximum rows (default 5000, max 20000)"
// @Success 200 {array} models.SpotPrice
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /spotprices/history [get]
func (h *SpotPriceHandler) GetSpotPriceHistory(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid history query"})
		return
	}

	// Unbounded ends default to the full stored range.
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	if q.Start != "" {
		start, _ = time.Parse("2006-01-02", q.Start)
	}
	if q.End != "" {
		end, _ = time.Parse("2006-01-02", q.End)
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "end must not be before start"})
		return
	}

	prices, err := h.repo.ListByAreaAndRange(c.Request.Context(), models.Area(q.Area), start, end, q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch spot price history"})
		return
	}
	if prices == nil {
		prices = []models.SpotPrice{}
	}

	c.JSON(http.StatusOK, prices)
}
