package db

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"campaign-kpi/internal/core/domain"
	"campaign-kpi/internal/core/port"
)

type demoCampaign struct {
	name      string
	platform  string
	objective string
	target    string
	budget    float64
	offset    int // start relative to today, in days
	length    int // 0 means open-ended
	status    domain.Status
}

var demoCampaigns = []demoCampaign{
	{"Lancio primavera", domain.PlatformFacebook, domain.ObjectiveConversion, "PMI italiane B2B", 1500, -45, 30, domain.StatusCompleted},
	{"Brand awareness giovani", domain.PlatformTikTok, domain.ObjectiveAwareness, "giovani 18-24", 2000, -20, 40, domain.StatusActive},
	{"Lead generation professionisti", domain.PlatformLinkedIn, domain.ObjectiveConsideration, "professionisti e aziende", 3000, -10, 0, domain.StatusActive},
	{"Retargeting carrello", domain.PlatformInstagram, domain.ObjectiveRetention, "clienti esistenti", 800, -30, 30, domain.StatusPaused},
	{"Ricerca prodotti premium", domain.PlatformGoogleAds, domain.ObjectiveConversion, "acquirenti lusso", 5000, 5, 30, domain.StatusPlanned},
	{"Tutorial video senior", domain.PlatformYouTube, domain.ObjectiveConsideration, "pensionati over 65", 1200, 10, 21, domain.StatusPlanned},
}

// Seed inserts demo campaigns through repo. Campaigns that already started
// get random recorded performance drawn from r.
func Seed(ctx context.Context, repo port.CampaignRepository, r *rand.Rand, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, d := range demoCampaigns {
		c := &domain.Campaign{
			ID:        uuid.NewString(),
			Name:      d.name,
			Platform:  d.platform,
			Objective: d.objective,
			Target:    d.target,
			Budget:    d.budget,
			StartDate: today.AddDate(0, 0, d.offset),
			Status:    d.status,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if d.length > 0 {
			end := c.StartDate.AddDate(0, 0, d.length-1)
			c.EndDate = &end
		}
		if d.offset < 0 {
			randomPerformance(r, c.Budget).Apply(c)
		}
		if err := repo.Add(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %q: %w", d.name, err)
		}
	}
	return nil
}

// randomPerformance draws a plausible funnel for budget.
func randomPerformance(r *rand.Rand, budget float64) domain.Actuals {
	impressions := math.Floor(budget * (r.Float64()*1000 + 500))
	clicks := math.Floor(impressions * (r.Float64()*0.1 + 0.01))
	conversions := math.Floor(clicks * (r.Float64()*0.2 + 0.05))
	return domain.Actuals{
		ActualSpend: budget * (r.Float64()*0.5 + 0.5),
		Impressions: int64(impressions),
		Clicks:      int64(clicks),
		Conversions: int64(conversions),
		Revenue:     budget * (r.Float64()*3 + 0.5),
	}
}
