package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forecast24/internal/api/handlers"
	"forecast24/internal/models"
	"forecast24/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func spotPriceRouter(tc *testutil.TestContext) *gin.Engine {
	h := handlers.NewSpotPriceHandler(tc.SpotPriceRepo)

	r := gin.New()
	r.GET("/spotprices", h.GetSpotPricesForDay)
	r.GET("/spotprices/latest", h.GetLatestSpotPrices)
	r.GET("/spotprices/history", h.GetSpotPriceHistory)
	return r
}

func TestGetSpotPricesForDay(t *testing.T) {
	tc := testutil.NewTestContext(t)
	r := spotPriceRouter(tc)

	tc.SeedDay(models.AreaNO1, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), 0.5)

	t.Run("Returns Full Day Sorted", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices?area=NO1&date=2025-01-02", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var prices []models.SpotPrice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
		require.Len(t, prices, 24)
		for i := 1; i < len(prices); i++ {
			require.True(t, prices[i-1].TimeStart.Before(prices[i].TimeStart))
		}
	})

	t.Run("Empty Day Is Not An Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices?area=NO1&date=2025-01-05", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Rejects Unknown Area", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices?area=NO9&date=2025-01-02", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Rejects Malformed Date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices?area=NO1&date=02.01.2025", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetLatestSpotPrices(t *testing.T) {
	tc := testutil.NewTestContext(t)
	r := spotPriceRouter(tc)

	// Three consecutive days; the default 48h window covers the last two.
	for day := 1; day <= 3; day++ {
		tc.SeedDay(models.AreaNO2, time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC), 0.5)
	}

	t.Run("Default Window", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices/latest?area=NO2", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var prices []models.SpotPrice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
		require.Len(t, prices, 48)
		last := prices[len(prices)-1]
		require.True(t, last.TimeStart.Equal(time.Date(2025, 1, 3, 23, 0, 0, 0, time.UTC)))
	})

	t.Run("Custom Window", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices/latest?area=NO2&hours=12", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var prices []models.SpotPrice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
		require.Len(t, prices, 12)
	})

	t.Run("No Data Yields Empty List", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices/latest?area=NO5", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Rejects Oversized Window", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices/latest?area=NO2&hours=500", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetSpotPriceHistory(t *testing.T) {
	tc := testutil.NewTestContext(t)
	r := spotPriceRouter(tc)

	for day := 1; day <= 4; day++ {
		tc.SeedDay(models.AreaNO1, time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC), 0.5)
	}

	t.Run("Bounded Range", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/spotprices/history?area=NO1&start=2025-01-02&end=2025-01-03", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var prices []models.SpotPrice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
		require.Len(t, prices, 48)
	})

	t.Run("Unbounded Range Returns Everything", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices/history?area=NO1", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var prices []models.SpotPrice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
		require.Len(t, prices, 96)
	})

	t.Run("Limit Caps Result", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/spotprices/history?area=NO1&limit=5", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var prices []models.SpotPrice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
		require.Len(t, prices, 5)
	})

	t.Run("Rejects Inverted Range", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/spotprices/history?area=NO1&start=2025-01-03&end=2025-01-02", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
