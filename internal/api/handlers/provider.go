package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"forecast24/internal/models"
	"forecast24/internal/provider"

	"github.com/gin-gonic/gin"
)

// maxCollectRangeDays caps manual backfills to one quarter per request.
const maxCollectRangeDays = 92

// ProviderHandler handles manual provider runs
type ProviderHandler struct {
	manager *provider.Manager
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(manager *provider.Manager) *ProviderHandler {
	return &ProviderHandler{manager: manager}
}

// TriggerCollectRequest is the body of a manual collection request.
type TriggerCollectRequest struct {
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02" example:"2025-01-01"`
	EndDate   string   `json:"end_date" binding:"required,datetime=2006-01-02" example:"2025-01-31"`
	Areas     []string `json:"areas" binding:"omitempty,dive,area" example:"NO1,NO5"`
}

// TriggerCollect godoc
// @Summary Trigger a manual collection run
// @Description Starts a background collection of the given date range, optionally restricted to a subset of areas. Days that fail are logged and can be retried by re-running the same range; already stored observations are skipped.
// @Tags providers
// @Accept json
// @Produce json
// @Param name path string true "Provider name"
// @Param request body TriggerCollectRequest true "Date range to collect"
// @Success 202 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Provider not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /providers/{name}/collect [post]
func (h *ProviderHandler) TriggerCollect(c *gin.Context) {
	name := c.Param("name")
	if _, found := h.manager.GetProvider(name); !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "provider not found"})
		return
	}

	var req TriggerCollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "start_date and end_date must be YYYY-MM-DD, areas NO1..NO5"})
		return
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "end_date must not be before start_date"})
		return
	}
	if end.Sub(start) > maxCollectRangeDays*24*time.Hour {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "date range must not exceed 92 days"})
		return
	}

	areas := make([]models.Area, 0, len(req.Areas))
	for _, a := range req.Areas {
		areas = append(areas, models.Area(a))
	}

	opts := &provider.RunOptions{Start: start, End: end, Areas: areas}

	// The run outlives the request; it gets its own context with a
	// ceiling well above the largest allowed range.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := h.manager.RunProvider(ctx, name, opts); err != nil {
			log.Printf("Manual run of provider %s failed: %v", name, err)
		}
	}()

	c.JSON(http.StatusAccepted, models.SuccessResponse{
		Message: "collection started for " + req.StartDate + " to " + req.EndDate,
	})
}
