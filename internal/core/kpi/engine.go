// Package kpi estimates campaign performance. Every function is pure apart
// from the random variance of daily series and the clock used for
// campaigns without an end date, both of which are injected into Engine.
package kpi

import (
	"math"
	"time"

	"campaign-kpi/internal/core/domain"
)

const day = 24 * time.Hour

// Option configures an Engine.
type Option func(*Engine)

// WithRandomSource sets the source of daily-series variance.
func WithRandomSource(src RandomSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.rnd = src
		}
	}
}

// WithClock sets the function used as "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithBenchmarks sets the benchmark table. A nil table uses built-ins.
func WithBenchmarks(t *BenchmarkTable) Option {
	return func(e *Engine) { e.benchmarks = t }
}

// Engine computes campaign metrics. It holds no mutable state and may be
// shared by concurrent callers as long as its RandomSource is safe for
// concurrent use.
type Engine struct {
	benchmarks *BenchmarkTable
	rnd        RandomSource
	now        func() time.Time
}

// NewEngine returns an Engine using built-in benchmarks, the global random
// source and the wall clock unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rnd: DefaultSource, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Benchmark resolves the baseline ratios for platform.
func (e *Engine) Benchmark(platform string) domain.Benchmark {
	return e.benchmarks.Lookup(platform)
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Calculate returns recorded metrics when the campaign carries any actual
// performance figure and simulated metrics otherwise.
func (e *Engine) Calculate(c *domain.Campaign) (*domain.Metrics, error) {
	if c == nil {
		return nil, domain.ErrNilCampaign
	}
	if c.HasActualData() {
		return e.Actual(c)
	}
	return e.Simulate(c)
}

// Simulate projects the funnel of a campaign from its platform benchmark,
// objective, audience and budget. A non-positive or non-finite budget
// produces zeroed metrics.
func (e *Engine) Simulate(c *domain.Campaign) (*domain.Metrics, error) {
	if c == nil {
		return nil, domain.ErrNilCampaign
	}
	budget := nonNegative(c.Budget)
	days := SimulationDays(c)

	bench := e.Benchmark(c.Platform)
	obj := ObjectiveFactors(c.Objective)
	tgt := TargetFactors(c.Target)

	cpm := bench.CPM * obj.CPM * tgt.CPM
	ctr := bench.CTR * obj.CTR * tgt.CTR
	conversionRate := bench.ConversionRate * obj.Conversion * tgt.Conversion

	impressions := div(budget, cpm) * 1000
	clicks := impressions * ctr / 100
	conversions := clicks * conversionRate / 100
	revenue := conversions * AverageOrderValue(c.Target)

	// Ratios follow the reported counts: a count that rounds to zero
	// reports its dependent ratios as zero.
	m := &domain.Metrics{
		Source:      domain.SourceSimulated,
		Impressions: roundCount(impressions),
		Clicks:      roundCount(clicks),
		Conversions: roundCount(conversions),
	}
	if m.Impressions == 0 {
		cpm, ctr = 0, 0
	}
	if m.Clicks == 0 {
		conversionRate = 0
	} else {
		m.CPC = div(budget, clicks)
	}
	if m.Conversions == 0 {
		revenue = 0
	} else {
		m.CPA = div(budget, conversions)
	}

	roas := div(revenue, budget)
	m.CTR = finite(ctr)
	m.CPM = finite(cpm)
	m.ConversionRate = finite(conversionRate)
	m.Revenue = finite(revenue)
	m.ROAS = roas
	m.ROI = roi(revenue, budget)
	m.Effectiveness = Effectiveness(roas, conversionRate)
	m.DurationDays = days
	m.Rating = RatingFor(m.Effectiveness)
	e.fillSeries(m, c.StartDate, budget, impressions, clicks, conversions)
	return m, nil
}

// Actual derives metrics from the performance figures recorded on the
// campaign. Every ratio with a zero denominator is reported as zero.
func (e *Engine) Actual(c *domain.Campaign) (*domain.Metrics, error) {
	if c == nil {
		return nil, domain.ErrNilCampaign
	}
	spend := nonNegative(c.ActualSpend)
	revenue := nonNegative(c.Revenue)
	impressions := float64(max(c.Impressions, 0))
	clicks := float64(max(c.Clicks, 0))
	conversions := float64(max(c.Conversions, 0))

	roas := div(revenue, spend)
	conversionRate := div(conversions, clicks) * 100
	m := &domain.Metrics{
		Source:         domain.SourceActual,
		Impressions:    int64(impressions),
		Clicks:         int64(clicks),
		Conversions:    int64(conversions),
		CTR:            div(clicks, impressions) * 100,
		CPC:            div(spend, clicks),
		CPM:            div(spend, impressions) * 1000,
		ConversionRate: conversionRate,
		CPA:            div(spend, conversions),
		Revenue:        revenue,
		ROAS:           roas,
		ROI:            roi(revenue, spend),
		Effectiveness:  Effectiveness(roas, conversionRate),
		DurationDays:   e.ElapsedDays(c),
	}
	m.Rating = RatingFor(m.Effectiveness)
	e.fillSeries(m, c.StartDate, spend, impressions, clicks, conversions)
	return m, nil
}

func (e *Engine) fillSeries(m *domain.Metrics, start time.Time, cost, impressions, clicks, conversions float64) {
	m.CostPerDay = DailySeries(cost, m.DurationDays, start, CostVariance, false, e.rnd)
	m.ImpressionsPerDay = DailySeries(impressions, m.DurationDays, start, ImpressionsVariance, true, e.rnd)
	m.ClicksPerDay = DailySeries(clicks, m.DurationDays, start, ClicksVariance, true, e.rnd)
	m.ConversionsPerDay = DailySeries(conversions, m.DurationDays, start, ConversionsVariance, true, e.rnd)
}

// SimulationDays is the number of calendar days a projection covers: from
// the start date through the inclusive end date, or one calendar month when
// the campaign has no end date. It is at least 1.
func SimulationDays(c *domain.Campaign) int {
	start := truncateDay(c.StartDate)
	end := start.AddDate(0, 1, 0)
	if c.EndDate != nil {
		end = truncateDay(*c.EndDate).AddDate(0, 0, 1)
	}
	return daysBetween(start, end)
}

// ElapsedDays is the number of days a running campaign has covered: through
// the inclusive end date, or up to now when it has no end date.
func (e *Engine) ElapsedDays(c *domain.Campaign) int {
	start := truncateDay(c.StartDate)
	end := e.now().UTC()
	if c.EndDate != nil {
		end = truncateDay(*c.EndDate).AddDate(0, 0, 1)
	}
	return daysBetween(start, end)
}

func daysBetween(start, end time.Time) int {
	d := int(math.Ceil(float64(end.Sub(start)) / float64(day)))
	return max(d, 1)
}

// div returns a/b, or 0 when b is not positive or the result is not finite.
func div(a, b float64) float64 {
	if !(b > 0) {
		return 0
	}
	return finite(a / b)
}

func roi(revenue, spend float64) float64 {
	if !(spend > 0) {
		return 0
	}
	return finite((revenue - spend) / spend * 100)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	return math.Max(finite(v), 0)
}

func roundCount(v float64) int64 {
	return int64(math.Round(nonNegative(v)))
}
