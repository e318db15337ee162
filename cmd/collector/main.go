// Package main provides a one-shot collection run for cron or manual use
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"forecast24/internal/config"
	"forecast24/internal/database"
	"forecast24/internal/hvakoster"
	"forecast24/internal/ingest"
	"forecast24/internal/repository/postgres"

	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "Path to env file")
	days := flag.Int("days", 0, "Trailing window in days (overrides COLLECT_DAYS)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatalf("DATABASE_URL is not set")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	window := cfg.Collector.Days
	if *days > 0 {
		window = *days
	}

	repo := postgres.NewSpotPriceRepository(db)
	client := hvakoster.NewClient(cfg.Collector.BaseURL)
	ingestor := ingest.NewIngestor(client, repo)
	collector := ingest.NewCollector(ingestor, repo, nil, cfg.Collector.SkipExisting)

	// Collect the trailing window plus tomorrow, whose day-ahead prices
	// may already be published.
	end := time.Now().AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -window)

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	summary := collector.Collect(ctx, start, end)
	log.Printf("Collection finished: added=%d skipped=%d dropped=%d no-data-days=%d failed-days=%d",
		summary.Added, summary.Skipped, summary.Dropped, summary.NoDataDays, summary.FailedDays)

	if summary.FailedDays > 0 {
		log.Fatalf("%d days failed; re-run to retry them", summary.FailedDays)
	}
}
