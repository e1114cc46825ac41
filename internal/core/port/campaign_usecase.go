package port

import (
	"context"

	"campaign-kpi/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed to the dashboard.
// This interface represents the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// Create validates and stores a new campaign, assigning its id.
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	// Get returns a campaign by id.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// List returns the campaigns matching filter.
	List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	// Update validates and replaces the editable fields of a campaign.
	// Recorded performance and creation time are preserved.
	Update(ctx context.Context, id string, c *domain.Campaign) (*domain.Campaign, error)
	// Delete removes a campaign.
	Delete(ctx context.Context, id string) error
	// Duplicate stores a planned copy of a campaign starting today.
	Duplicate(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateStatus changes the lifecycle status of a campaign.
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Campaign, error)
	// RecordActuals merges reported performance figures into a campaign.
	RecordActuals(ctx context.Context, id string, a domain.Actuals) (*domain.Campaign, error)

	// KPI returns the metrics of a stored campaign.
	KPI(ctx context.Context, id string) (*domain.Metrics, error)
	// Simulate returns projected metrics for an unsaved campaign.
	Simulate(ctx context.Context, c *domain.Campaign) (*domain.Metrics, error)
	// Forecast projects a stored campaign over the next days days.
	Forecast(ctx context.Context, id string, days int) (*domain.Metrics, error)
	// WhatIf compares a stored campaign with a changed variant of it.
	WhatIf(ctx context.Context, id string, s domain.Scenario) (*domain.Comparison, error)
	// PlatformBenchmark returns the benchmark of a platform together with
	// the average recorded performance of its campaigns.
	PlatformBenchmark(ctx context.Context, platform string) (*BenchmarkResp, error)
	// Overview aggregates the metrics of the campaigns matching filter.
	Overview(ctx context.Context, filter domain.CampaignFilter) (*OverviewResp, error)
}

// BenchmarkResp is returned by PlatformBenchmark. Average equals Benchmark
// when Samples is zero.
type BenchmarkResp struct {
	Platform  string           `json:"platform"`
	Benchmark domain.Benchmark `json:"benchmark"`
	Average   domain.Benchmark `json:"average"`
	Samples   int              `json:"samples"`
}

// OverviewResp contains aggregated metrics and the best campaigns by ROAS.
type OverviewResp struct {
	Totals domain.Totals        `json:"totals"`
	Top    []domain.CampaignKPI `json:"top"`
}
