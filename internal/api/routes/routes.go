// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"

	_ "forecast24/docs" // Import swagger docs
	"forecast24/internal/api/handlers"
	"forecast24/internal/api/middleware"
	"forecast24/internal/config"
	"forecast24/internal/provider"
	"forecast24/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB, providerManager *provider.Manager) *gin.Engine {
	r := gin.Default()

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	spotPriceRepo := postgres.NewSpotPriceRepository(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	spotPriceHandler := handlers.NewSpotPriceHandler(spotPriceRepo)
	forecastHandler := handlers.NewForecastHandler()
	providerHandler := handlers.NewProviderHandler(providerManager)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Spot price routes
		spotPrices := v1.Group("/spotprices")
		{
			spotPrices.GET("", spotPriceHandler.GetSpotPricesForDay)
			spotPrices.GET("/latest", spotPriceHandler.GetLatestSpotPrices)
			spotPrices.GET("/history", spotPriceHandler.GetSpotPriceHistory)
		}

		v1.GET("/forecast", forecastHandler.GetForecast)

		// Provider routes
		providers := v1.Group("/providers")
		{
			providers.POST("/:name/collect", providerHandler.TriggerCollect)
		}
	}

	return r
}
