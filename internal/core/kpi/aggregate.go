package kpi

import (
	"sort"

	"campaign-kpi/internal/core/domain"
)

// Totals sums the funnel of many campaigns and blends the ratios from the
// sums. Budget, not recorded spend, is the cost basis, matching the
// dashboard overview.
func Totals(items []domain.CampaignKPI) domain.Totals {
	var t domain.Totals
	for _, it := range items {
		if it.Campaign == nil || it.KPI == nil {
			continue
		}
		t.Campaigns++
		t.Budget += nonNegative(it.Campaign.Budget)
		t.Impressions += it.KPI.Impressions
		t.Clicks += it.KPI.Clicks
		t.Conversions += it.KPI.Conversions
		t.Revenue += it.KPI.Revenue
	}
	impressions := float64(t.Impressions)
	clicks := float64(t.Clicks)
	conversions := float64(t.Conversions)

	t.CTR = div(clicks, impressions) * 100
	t.CPC = div(t.Budget, clicks)
	t.CPM = div(t.Budget, impressions) * 1000
	t.CPA = div(t.Budget, conversions)
	t.ConversionRate = div(conversions, clicks) * 100
	t.ROAS = div(t.Revenue, t.Budget)
	return t
}

// TopByROAS returns up to limit items ordered by descending ROAS. Ties keep
// their input order. items is not modified.
func TopByROAS(items []domain.CampaignKPI, limit int) []domain.CampaignKPI {
	sorted := make([]domain.CampaignKPI, 0, len(items))
	for _, it := range items {
		if it.KPI != nil {
			sorted = append(sorted, it)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].KPI.ROAS > sorted[j].KPI.ROAS
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// PlatformAverage blends the recorded performance of the campaigns on
// platform that have spent money. It returns the benchmark and a zero
// sample count when there are none.
func (e *Engine) PlatformAverage(platform string, campaigns []*domain.Campaign) (domain.Benchmark, int) {
	var n int
	var spend, revenue, impressions, clicks, conversions float64
	for _, c := range campaigns {
		if c == nil || c.Platform != platform || !(c.ActualSpend > 0) {
			continue
		}
		n++
		spend += nonNegative(c.ActualSpend)
		revenue += nonNegative(c.Revenue)
		impressions += float64(max(c.Impressions, 0))
		clicks += float64(max(c.Clicks, 0))
		conversions += float64(max(c.Conversions, 0))
	}
	if n == 0 {
		return e.Benchmark(platform), 0
	}
	return domain.Benchmark{
		CTR:            div(clicks, impressions) * 100,
		CPC:            div(spend, clicks),
		CPM:            div(spend, impressions) * 1000,
		ConversionRate: div(conversions, clicks) * 100,
		CPA:            div(spend, conversions),
		ROAS:           div(revenue, spend),
	}, n
}
