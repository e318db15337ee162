// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"forecast24/internal/config"
	"forecast24/internal/models"
	"forecast24/internal/repository"
	"forecast24/internal/repository/postgres"
	"forecast24/internal/testutil/db"
	"forecast24/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoadTestConfig loads the test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return db.LoadTestConfig(t)
}

// TestContext holds common test dependencies
type TestContext struct {
	T             *testing.T
	DB            *sql.DB
	Config        *config.Config
	SpotPriceRepo repository.SpotPriceRepository
}

// NewTestContext creates a new test context backed by a freshly migrated
// test database
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := LoadTestConfig(t)
	testDB := db.SetupTestDB(t, &cfg.Database)

	tc := &TestContext{
		T:             t,
		DB:            testDB,
		Config:        cfg,
		SpotPriceRepo: postgres.NewSpotPriceRepository(testDB),
	}

	t.Cleanup(func() {
		tc.cleanup()
	})

	return tc
}

// cleanup performs necessary cleanup after tests
func (tc *TestContext) cleanup() {
	if tc.DB != nil {
		if err := db.CleanupTestDB(tc.DB); err != nil {
			tc.T.Errorf("Failed to cleanup test database: %v", err)
		}
		tc.DB.Close()
	}
}

// CreateTestPrice inserts a single observation and returns it
func (tc *TestContext) CreateTestPrice(area models.Area, start time.Time, nok float64) *models.SpotPrice {
	tc.T.Helper()

	sp := &models.SpotPrice{
		Area:      area,
		Date:      time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		TimeStart: start,
		TimeEnd:   start.Add(time.Hour),
		NOKPerKWh: nok,
	}

	err := tc.SpotPriceRepo.Insert(context.Background(), sp)
	require.NoError(tc.T, err, "Failed to insert test spot price")

	return sp
}

// SeedDay inserts a full 24-hour day of observations for an area, with
// prices rising by 0.01 per hour from the given base
func (tc *TestContext) SeedDay(area models.Area, date time.Time, base float64) {
	tc.T.Helper()

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for hour := 0; hour < 24; hour++ {
		tc.CreateTestPrice(area, midnight.Add(time.Duration(hour)*time.Hour), base+float64(hour)*0.01)
	}
}
