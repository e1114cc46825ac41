package kpi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-kpi/internal/core/domain"
)

func TestDefaultBenchmark(t *testing.T) {
	want := domain.Benchmark{CTR: 1.0, CPC: 1.0, CPM: 10.0, ConversionRate: 2.0, CPA: 30.0, ROAS: 1.5}
	assert.Equal(t, want, DefaultBenchmark("UnknownPlatform"))
	assert.Equal(t, want, DefaultBenchmark(""))
	assert.Equal(t, want, DefaultBenchmark("facebook"))

	fb := DefaultBenchmark(domain.PlatformFacebook)
	assert.Equal(t, 7.19, fb.CPM)
	assert.Equal(t, 0.9, fb.CTR)
	assert.Equal(t, 9.21, fb.ConversionRate)

	for _, p := range Platforms() {
		assert.NotEqual(t, want, DefaultBenchmark(p), p)
	}
}

func TestLoadBenchmarkTable(t *testing.T) {
	doc := `
platforms:
  Facebook: {ctr: 1.1, cpc: 0.6, cpm: 8, conversionRate: 7, cpa: 20, roas: 2.1}
  Pinterest:
    ctr: 0.3
    cpc: 1.5
    cpm: 5
    conversionRate: 1.2
    cpa: 40
    roas: 1.4
`
	table, err := LoadBenchmarkTable(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 8.0, table.Lookup(domain.PlatformFacebook).CPM)
	assert.Equal(t, 0.3, table.Lookup("Pinterest").CTR)
	assert.Equal(t, DefaultBenchmark(domain.PlatformTikTok), table.Lookup(domain.PlatformTikTok))
	assert.Equal(t, GenericBenchmark, table.Lookup("Snapchat"))

	e := NewEngine(WithBenchmarks(table))
	assert.Equal(t, 8.0, e.Benchmark(domain.PlatformFacebook).CPM)
}

func TestLoadBenchmarkTableRejectsNegative(t *testing.T) {
	_, err := LoadBenchmarkTable(strings.NewReader("platforms:\n  Facebook: {cpm: -1}\n"))
	assert.Error(t, err)
}

func TestLoadBenchmarkTableEmpty(t *testing.T) {
	table, err := LoadBenchmarkTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultBenchmark(domain.PlatformLinkedIn), table.Lookup(domain.PlatformLinkedIn))
}

func TestNilBenchmarkTable(t *testing.T) {
	var table *BenchmarkTable
	assert.Equal(t, DefaultBenchmark(domain.PlatformYouTube), table.Lookup(domain.PlatformYouTube))
}
