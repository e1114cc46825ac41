package port

import (
	"context"

	"campaign-kpi/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and return domain.ErrCampaignNotFound for unknown ids.
type CampaignRepository interface {
	// List returns the campaigns matching filter ordered by start date.
	List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	// Get returns a campaign by id.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Add stores a new campaign. The caller assigns the id and timestamps.
	Add(ctx context.Context, c *domain.Campaign) error
	// Update replaces a stored campaign.
	Update(ctx context.Context, c *domain.Campaign) error
	// Remove deletes a campaign by id.
	Remove(ctx context.Context, id string) error
}

// KPICache memoizes computed metrics by campaign fingerprint. Get reports
// ok == false on a miss. Errors come from remote backends; callers log
// them and recompute.
type KPICache interface {
	Get(ctx context.Context, key string) (*domain.Metrics, bool, error)
	Set(ctx context.Context, key string, m *domain.Metrics) error
}
