// Package hvakosterstrommen wires the ingestion pipeline into the
// provider manager so spot prices are collected on a daily schedule.
package hvakosterstrommen

import (
	"context"
	"fmt"
	"time"

	"forecast24/internal/ingest"
	"forecast24/internal/models"
	"forecast24/internal/provider"
)

// ProviderName is the unique identifier for this provider
const ProviderName = "hvakosterstrommen"

// DefaultConfig returns the default configuration for the provider.
// Day-ahead prices are published around 13:00 CET, so the scheduled run
// happens shortly after and also backfills a short trailing window.
func DefaultConfig() provider.Config {
	return provider.Config{
		Schedule: "30 13 * * *",
		Enabled:  true,
		Areas:    models.Areas(),
		Days:     3,
	}
}

// Provider implements the provider.Provider interface on top of the
// range collector.
type Provider struct {
	provider.BaseProvider
	collector *ingest.Collector
}

// NewProvider creates a new spot price provider
func NewProvider(collector *ingest.Collector, config provider.Config) *Provider {
	if len(config.Areas) == 0 {
		config.Areas = DefaultConfig().Areas
	}
	if config.Schedule == "" {
		config.Schedule = DefaultConfig().Schedule
	}
	if config.Days <= 0 {
		config.Days = DefaultConfig().Days
	}

	return &Provider{
		BaseProvider: provider.NewBaseProvider(config),
		collector:    collector,
	}
}

// Name returns the provider's unique identifier
func (p *Provider) Name() string {
	return ProviderName
}

// Run collects the trailing configured window up to and including
// tomorrow, since day-ahead prices for the next day may already be
// published.
func (p *Provider) Run(ctx context.Context) error {
	end := time.Now().AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -p.GetConfig().Days)

	summary := p.collector.Collect(ctx, start, end)
	if err := ctx.Err(); err != nil {
		return err
	}
	if summary.FailedDays > 0 {
		return fmt.Errorf("collection finished with %d failed days", summary.FailedDays)
	}
	return nil
}

// RunWithOptions collects an explicit date range, optionally restricted
// to a subset of areas (for manual runs). Failed days are logged and
// retryable; they do not fail the run.
func (p *Provider) RunWithOptions(ctx context.Context, opts provider.RunOptions) error {
	if opts.End.Before(opts.Start) {
		return fmt.Errorf("end date %s before start date %s",
			opts.End.Format("2006-01-02"), opts.Start.Format("2006-01-02"))
	}

	areas := opts.Areas
	if len(areas) == 0 {
		areas = p.GetConfig().Areas
	}

	p.collector.CollectAreas(ctx, areas, opts.Start, opts.End)
	return ctx.Err()
}
