package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campaign-kpi/internal/core/domain"
)

func TestFingerprintTracksEveryInput(t *testing.T) {
	e := newTestEngine(date("2025-03-01"))
	base := sampleCampaign()
	ref := e.Fingerprint(base)

	same := *base
	same.ID = "other"
	same.Name = "renamed"
	assert.Equal(t, ref, e.Fingerprint(&same), "fields the engine ignores do not change the key")

	mutations := map[string]func(c *domain.Campaign){
		"platform":    func(c *domain.Campaign) { c.Platform = "TikTok" },
		"objective":   func(c *domain.Campaign) { c.Objective = "Awareness" },
		"target":      func(c *domain.Campaign) { c.Target = "giovani" },
		"budget":      func(c *domain.Campaign) { c.Budget++ },
		"start":       func(c *domain.Campaign) { c.StartDate = c.StartDate.AddDate(0, 0, 1) },
		"end":         func(c *domain.Campaign) { e := c.EndDate.AddDate(0, 0, 1); c.EndDate = &e },
		"no end":      func(c *domain.Campaign) { c.EndDate = nil },
		"spend":       func(c *domain.Campaign) { c.ActualSpend = 1 },
		"impressions": func(c *domain.Campaign) { c.Impressions = 1 },
		"clicks":      func(c *domain.Campaign) { c.Clicks = 1 },
		"conversions": func(c *domain.Campaign) { c.Conversions = 1 },
		"revenue":     func(c *domain.Campaign) { c.Revenue = 1 },
	}
	for name, mutate := range mutations {
		c := *base
		mutate(&c)
		assert.NotEqual(t, ref, e.Fingerprint(&c), name)
	}
}

func TestFingerprintDependsOnDateOnlyForOpenActuals(t *testing.T) {
	at := func(now time.Time, c *domain.Campaign) string { return newTestEngine(now).Fingerprint(c) }

	c := sampleCampaign()
	assert.Equal(t, at(date("2025-03-01"), c), at(date("2025-04-01"), c))

	c.EndDate = nil
	assert.Equal(t, at(date("2025-03-01"), c), at(date("2025-04-01"), c))

	c.ActualSpend = 100
	assert.NotEqual(t, at(date("2025-03-01"), c), at(date("2025-03-02"), c))
	assert.Equal(t, at(date("2025-03-01"), c), at(time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC), c))
}

func TestFingerprintTracksBenchmarkOverrides(t *testing.T) {
	now := date("2025-03-01")
	c := sampleCampaign()
	withTable := func(tbl *BenchmarkTable) string {
		return NewEngine(WithClock(func() time.Time { return now }), WithBenchmarks(tbl)).Fingerprint(c)
	}

	builtin := newTestEngine(now).Fingerprint(c)
	assert.Equal(t, builtin, withTable(nil))
	assert.Equal(t, builtin, withTable(NewBenchmarkTable(nil)))

	cheap := map[string]domain.Benchmark{domain.PlatformFacebook: {CTR: 2, CPM: 3, ConversionRate: 10}}
	dear := map[string]domain.Benchmark{domain.PlatformFacebook: {CTR: 2, CPM: 30, ConversionRate: 10}}
	assert.NotEqual(t, builtin, withTable(NewBenchmarkTable(cheap)))
	assert.NotEqual(t, withTable(NewBenchmarkTable(cheap)), withTable(NewBenchmarkTable(dear)))
	assert.Equal(t, withTable(NewBenchmarkTable(cheap)), withTable(NewBenchmarkTable(map[string]domain.Benchmark{
		domain.PlatformFacebook: {CTR: 2, CPM: 3, ConversionRate: 10},
	})))
}
