package kpi

import (
	"campaign-kpi/internal/core/domain"
)

const (
	// DefaultForecastDays is used when a forecast horizon is not positive.
	DefaultForecastDays = 30
	// LearningFactor models the improvement of a campaign that keeps running.
	LearningFactor = 1.05
)

// Forecast projects the campaign over the next days days starting today,
// spending its current daily budget, and applies LearningFactor to the
// resulting volumes and ratios. The daily budget spreads the budget over the
// days elapsed so far, or over SimulationDays for an open-ended campaign
// that has not started yet.
func (e *Engine) Forecast(c *domain.Campaign, days int) (*domain.Metrics, error) {
	if c == nil {
		return nil, domain.ErrNilCampaign
	}
	if days <= 0 {
		days = DefaultForecastDays
	}
	dailyBudget := nonNegative(c.Budget) / float64(e.budgetDays(c))

	start := truncateDay(e.now())
	end := start.AddDate(0, 0, days-1)
	future := projection(c)
	future.Budget = dailyBudget * float64(days)
	future.StartDate = start
	future.EndDate = &end

	m, err := e.Simulate(future)
	if err != nil {
		return nil, err
	}
	m.Impressions = roundCount(float64(m.Impressions) * LearningFactor)
	m.Clicks = roundCount(float64(m.Clicks) * LearningFactor)
	m.Conversions = roundCount(float64(m.Conversions) * LearningFactor)
	m.CTR *= LearningFactor
	m.ConversionRate *= LearningFactor
	m.Revenue *= LearningFactor
	m.ROAS *= LearningFactor
	m.ROI *= LearningFactor
	m.Effectiveness = Effectiveness(m.ROAS, m.ConversionRate)
	m.Rating = RatingFor(m.Effectiveness)
	return m, nil
}

// WhatIf simulates the campaign as it is and with the changes described by
// s, and reports both along with their differences.
func (e *Engine) WhatIf(c *domain.Campaign, s domain.Scenario) (*domain.Comparison, error) {
	if c == nil {
		return nil, domain.ErrNilCampaign
	}
	baseline, err := e.Simulate(c)
	if err != nil {
		return nil, err
	}

	variant := projection(c)
	if s.BudgetChange != nil {
		variant.Budget = c.Budget * (1 + *s.BudgetChange/100)
	}
	if s.Platform != nil {
		variant.Platform = *s.Platform
	}
	if s.Objective != nil {
		variant.Objective = *s.Objective
	}
	if s.Target != nil {
		variant.Target = *s.Target
	}
	scenario, err := e.Simulate(variant)
	if err != nil {
		return nil, err
	}

	return &domain.Comparison{
		Baseline: baseline,
		Scenario: scenario,
		Delta: domain.Delta{
			Impressions:   scenario.Impressions - baseline.Impressions,
			Clicks:        scenario.Clicks - baseline.Clicks,
			Conversions:   scenario.Conversions - baseline.Conversions,
			Revenue:       scenario.Revenue - baseline.Revenue,
			ROAS:          scenario.ROAS - baseline.ROAS,
			ROI:           scenario.ROI - baseline.ROI,
			Effectiveness: scenario.Effectiveness - baseline.Effectiveness,
		},
	}, nil
}

// projection copies the inputs the simulator reads, leaving recorded
// performance behind.
// budgetDays is the number of days the budget of c is spread over.
func (e *Engine) budgetDays(c *domain.Campaign) int {
	if c.EndDate == nil && truncateDay(c.StartDate).After(e.now()) {
		return SimulationDays(c)
	}
	return e.ElapsedDays(c)
}

func projection(c *domain.Campaign) *domain.Campaign {
	p := &domain.Campaign{
		ID:        c.ID,
		Name:      c.Name,
		Platform:  c.Platform,
		Objective: c.Objective,
		Target:    c.Target,
		Budget:    c.Budget,
		StartDate: c.StartDate,
		Status:    c.Status,
	}
	if c.EndDate != nil {
		end := *c.EndDate
		p.EndDate = &end
	}
	return p
}
