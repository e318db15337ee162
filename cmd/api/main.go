// Package main provides the entry point for the Forecast24 API server
// @title Forecast24 API
// @version 1.0
// @description Norwegian electricity spot price API.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"forecast24/internal/api/routes"
	"forecast24/internal/config"
	"forecast24/internal/database"
	"forecast24/internal/hvakoster"
	"forecast24/internal/ingest"
	"forecast24/internal/provider"
	"forecast24/internal/provider/hvakosterstrommen"
	"forecast24/internal/repository/postgres"
	"forecast24/internal/validation"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file
	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize validators
	validation.Initialize()

	// Wire the ingestion pipeline
	spotPriceRepo := postgres.NewSpotPriceRepository(db)
	client := hvakoster.NewClient(cfg.Collector.BaseURL)
	ingestor := ingest.NewIngestor(client, spotPriceRepo)
	collector := ingest.NewCollector(ingestor, spotPriceRepo, nil, cfg.Collector.SkipExisting)

	// Initialize provider manager
	providerManager := provider.NewManager()
	providerManager.RegisterProvider(hvakosterstrommen.NewProvider(
		collector, cfg.Provider[hvakosterstrommen.ProviderName]))

	// Run the scheduler until shutdown
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go func() {
		if err := providerManager.StartScheduler(schedulerCtx); err != nil {
			log.Printf("Provider scheduler stopped with error: %v", err)
		}
	}()

	// Setup routes
	router := routes.SetupRoutes(cfg, db, providerManager)

	// Convert port string to int
	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		log.Fatalf("Invalid port number: %v", err)
	}

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	stopScheduler()

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
