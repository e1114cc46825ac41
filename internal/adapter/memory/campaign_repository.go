package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"campaign-kpi/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository in process memory.
// It stores copies, so callers never share state with the store.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: make(map[string]domain.Campaign)}
}

// List returns the campaigns matching filter ordered by start date, then id.
func (r *CampaignRepository) List(_ context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if !filter.Match(&c) {
			continue
		}
		out = append(out, clone(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return clone(c), nil
}

// Add stores a new campaign.
func (r *CampaignRepository) Add(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[c.ID]; ok {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	r.campaigns[c.ID] = *clone(*c)
	return nil
}

// Update replaces a stored campaign.
func (r *CampaignRepository) Update(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[c.ID]; !ok {
		return domain.ErrCampaignNotFound
	}
	r.campaigns[c.ID] = *clone(*c)
	return nil
}

// Remove deletes a campaign by id.
func (r *CampaignRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrCampaignNotFound
	}
	delete(r.campaigns, id)
	return nil
}

// clone copies c including the end date it points to.
func clone(c domain.Campaign) *domain.Campaign {
	if c.EndDate != nil {
		end := *c.EndDate
		c.EndDate = &end
	}
	return &c
}
