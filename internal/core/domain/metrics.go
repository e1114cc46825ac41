package domain

import (
	"fmt"
	"math"
)

// Benchmark holds the baseline funnel ratios of an advertising platform.
// CTR and ConversionRate are percentages.
type Benchmark struct {
	CTR            float64 `json:"ctr" yaml:"ctr"`
	CPC            float64 `json:"cpc" yaml:"cpc"`
	CPM            float64 `json:"cpm" yaml:"cpm"`
	ConversionRate float64 `json:"conversionRate" yaml:"conversionRate"`
	CPA            float64 `json:"cpa" yaml:"cpa"`
	ROAS           float64 `json:"roas" yaml:"roas"`
}

// Factors are multiplicative corrections applied to a benchmark.
type Factors struct {
	CPM        float64 `json:"cpmFactor"`
	CTR        float64 `json:"ctrFactor"`
	Conversion float64 `json:"conversionFactor"`
}

// NeutralFactors leave a benchmark unchanged.
var NeutralFactors = Factors{CPM: 1, CTR: 1, Conversion: 1}

// MetricsSource tells which path produced a Metrics value.
type MetricsSource string

const (
	SourceActual    MetricsSource = "actual"
	SourceSimulated MetricsSource = "simulated"
)

// Rating is a coarse label for an effectiveness score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// DailyPoint is one day of a daily series. Date is formatted as 2006-01-02.
type DailyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Metrics is the derived performance of a campaign. It is recomputed on
// demand and never persisted. Percentages (CTR, ConversionRate, ROI) are
// expressed as 0-100 values, ROAS as a multiplier.
type Metrics struct {
	Source MetricsSource `json:"source"`

	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`

	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	ConversionRate float64 `json:"conversionRate"`
	CPA            float64 `json:"cpa"`
	Revenue        float64 `json:"revenue"`
	ROAS           float64 `json:"roas"`
	ROI            float64 `json:"roi"`

	Effectiveness int    `json:"effectiveness"`
	Rating        Rating `json:"rating"`

	DurationDays      int          `json:"durationDays"`
	CostPerDay        []DailyPoint `json:"costPerDay"`
	ImpressionsPerDay []DailyPoint `json:"impressionsPerDay"`
	ClicksPerDay      []DailyPoint `json:"clicksPerDay"`
	ConversionsPerDay []DailyPoint `json:"conversionsPerDay"`
}

// Scenario describes a what-if change to a campaign. Nil fields are left
// untouched; BudgetChange is a percentage (20 means +20%).
type Scenario struct {
	BudgetChange *float64 `json:"budgetChange,omitempty"`
	Platform     *string  `json:"platform,omitempty"`
	Objective    *string  `json:"objective,omitempty"`
	Target       *string  `json:"target,omitempty"`
}

// Validate rejects budget changes that are not finite or would remove the
// whole budget.
func (s Scenario) Validate() error {
	if s.BudgetChange == nil {
		return nil
	}
	v := *s.BudgetChange
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= -100 {
		return fmt.Errorf("%w: budget change must be a finite percentage above -100", ErrInvalidScenario)
	}
	return nil
}

// Comparison pairs baseline and scenario metrics with the differences
// (scenario minus baseline) of the headline figures.
type Comparison struct {
	Baseline *Metrics `json:"baseline"`
	Scenario *Metrics `json:"scenario"`
	Delta    Delta    `json:"delta"`
}

// Delta holds scenario minus baseline for headline figures.
type Delta struct {
	Impressions   int64   `json:"impressions"`
	Clicks        int64   `json:"clicks"`
	Conversions   int64   `json:"conversions"`
	Revenue       float64 `json:"revenue"`
	ROAS          float64 `json:"roas"`
	ROI           float64 `json:"roi"`
	Effectiveness int     `json:"effectiveness"`
}

// Totals aggregates the metrics of many campaigns. Ratios are blended
// from the summed counts, not averaged.
type Totals struct {
	Campaigns      int     `json:"campaigns"`
	Budget         float64 `json:"budget"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	CPA            float64 `json:"cpa"`
	ConversionRate float64 `json:"conversionRate"`
	ROAS           float64 `json:"roas"`
}

// CampaignKPI pairs a campaign with its computed metrics.
type CampaignKPI struct {
	Campaign *Campaign `json:"campaign"`
	KPI      *Metrics  `json:"kpi"`
}
