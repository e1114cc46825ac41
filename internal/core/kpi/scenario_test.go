package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-kpi/internal/core/domain"
)

func sampleCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:        "c1",
		Name:      "Spring promo",
		Platform:  domain.PlatformFacebook,
		Objective: domain.ObjectiveConversion,
		Target:    "PMI italiane B2B",
		Budget:    3100,
		StartDate: date("2025-01-01"),
		EndDate:   datePtr("2025-01-31"),
	}
}

func TestForecast(t *testing.T) {
	e := newTestEngine(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	c := sampleCampaign()
	c.ActualSpend = 2000
	c.Clicks = 10

	m, err := e.Forecast(c, 10)
	require.NoError(t, err)

	// 3100 over 31 days is 100 a day, so the 10-day projection spends 1000.
	assert.Equal(t, domain.SourceSimulated, m.Source)
	assert.Equal(t, 10, m.DurationDays)
	assert.Equal(t, "2025-03-01", m.CostPerDay[0].Date)
	assert.Equal(t, "2025-03-10", m.CostPerDay[9].Date)
	assert.Equal(t, int64(80240), m.Impressions)
	assert.InDelta(t, 0.72*LearningFactor, m.CTR, 1e-9)
	assert.InDelta(t, 26.604*LearningFactor, m.ROAS, 0.001)
	assert.Equal(t, 10, m.Effectiveness)

	// the source campaign is untouched
	assert.Equal(t, 3100.0, c.Budget)
	assert.Equal(t, date("2025-01-01"), c.StartDate)
}

func TestForecastDefaultHorizon(t *testing.T) {
	e := newTestEngine(date("2025-03-01"))
	m, err := e.Forecast(sampleCampaign(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultForecastDays, m.DurationDays)
}

func TestForecastBeforeStart(t *testing.T) {
	e := newTestEngine(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	open := sampleCampaign()
	open.StartDate = date("2025-04-01")
	open.EndDate = nil
	bounded := sampleCampaign()
	bounded.StartDate = date("2025-04-01")
	bounded.EndDate = datePtr("2025-04-30")

	// Both spread 3100 over the 30 days of April.
	m, err := e.Forecast(open, 30)
	require.NoError(t, err)
	want, err := e.Forecast(bounded, 30)
	require.NoError(t, err)
	assert.InDelta(t, want.Impressions, m.Impressions, 1)
	assert.InDelta(t, want.Clicks, m.Clicks, 1)

	sim, err := e.Simulate(open)
	require.NoError(t, err)
	assert.InDelta(t, float64(sim.Impressions)*LearningFactor, float64(m.Impressions), 2)
	assert.Equal(t, "2025-03-01", m.CostPerDay[0].Date)
}

func TestWhatIf(t *testing.T) {
	e := newTestEngine(date("2025-03-01"))
	c := sampleCampaign()

	change := 100.0
	cmp, err := e.WhatIf(c, domain.Scenario{BudgetChange: &change})
	require.NoError(t, err)
	assert.InDelta(t, 2*cmp.Baseline.Revenue, cmp.Scenario.Revenue, 1e-6)
	assert.InDelta(t, cmp.Baseline.ROAS, cmp.Scenario.ROAS, 1e-9)
	assert.Equal(t, cmp.Scenario.Impressions-cmp.Baseline.Impressions, cmp.Delta.Impressions)
	assert.InDelta(t, cmp.Baseline.Revenue, cmp.Delta.Revenue, 1e-6)

	platform := domain.PlatformGoogleAds
	objective := domain.ObjectiveAwareness
	target := "giovani"
	cmp, err = e.WhatIf(c, domain.Scenario{Platform: &platform, Objective: &objective, Target: &target})
	require.NoError(t, err)
	assert.Less(t, cmp.Scenario.Impressions, cmp.Baseline.Impressions)
	assert.Less(t, cmp.Delta.Revenue, 0.0)
	assert.Equal(t, domain.PlatformFacebook, c.Platform)
}

func TestWhatIfWithoutChanges(t *testing.T) {
	e := newTestEngine(date("2025-03-01"))
	cmp, err := e.WhatIf(sampleCampaign(), domain.Scenario{})
	require.NoError(t, err)
	assert.Zero(t, cmp.Delta.Impressions)
	assert.Zero(t, cmp.Delta.Revenue)
	assert.Zero(t, cmp.Delta.Effectiveness)
}

func TestWhatIfNegativeBudget(t *testing.T) {
	e := newTestEngine(date("2025-03-01"))
	cut := -150.0
	cmp, err := e.WhatIf(sampleCampaign(), domain.Scenario{BudgetChange: &cut})
	require.NoError(t, err)
	assert.Zero(t, cmp.Scenario.Impressions)
	assert.Zero(t, cmp.Scenario.ROAS)
	assert.Equal(t, 1, cmp.Scenario.Effectiveness)
}
