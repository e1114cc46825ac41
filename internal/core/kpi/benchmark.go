package kpi

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"campaign-kpi/internal/core/domain"
)

// Industry benchmark figures per platform.
var builtinBenchmarks = map[string]domain.Benchmark{
	domain.PlatformFacebook:  {CTR: 0.9, CPC: 0.5, CPM: 7.19, ConversionRate: 9.21, CPA: 18.68, ROAS: 2.0},
	domain.PlatformInstagram: {CTR: 0.58, CPC: 0.75, CPM: 7.91, ConversionRate: 3.1, CPA: 23.86, ROAS: 1.8},
	domain.PlatformLinkedIn:  {CTR: 0.39, CPC: 5.26, CPM: 6.59, ConversionRate: 2.74, CPA: 54.72, ROAS: 2.2},
	domain.PlatformTwitter:   {CTR: 0.46, CPC: 0.38, CPM: 6.46, ConversionRate: 0.77, CPA: 53.33, ROAS: 1.5},
	domain.PlatformGoogleAds: {CTR: 3.17, CPC: 2.69, CPM: 38.40, ConversionRate: 4.40, CPA: 56.11, ROAS: 2.87},
	domain.PlatformYouTube:   {CTR: 0.51, CPC: 0.14, CPM: 9.68, ConversionRate: 0.51, CPA: 42.80, ROAS: 1.2},
	domain.PlatformTikTok:    {CTR: 1.02, CPC: 0.19, CPM: 10.0, ConversionRate: 1.37, CPA: 14.82, ROAS: 1.85},
}

// GenericBenchmark is used for any platform without a dedicated row.
var GenericBenchmark = domain.Benchmark{CTR: 1.0, CPC: 1.0, CPM: 10.0, ConversionRate: 2.0, CPA: 30.0, ROAS: 1.5}

// Platforms lists the platforms that have a built-in benchmark.
func Platforms() []string {
	return []string{
		domain.PlatformFacebook,
		domain.PlatformInstagram,
		domain.PlatformLinkedIn,
		domain.PlatformTwitter,
		domain.PlatformGoogleAds,
		domain.PlatformYouTube,
		domain.PlatformTikTok,
	}
}

// DefaultBenchmark returns the built-in benchmark for platform, or
// GenericBenchmark when the platform is unknown or empty.
func DefaultBenchmark(platform string) domain.Benchmark {
	if b, ok := builtinBenchmarks[platform]; ok {
		return b
	}
	return GenericBenchmark
}

// BenchmarkTable resolves benchmarks from operator overrides first and the
// built-in figures second. A nil table behaves like an empty one. It is
// read-only after construction.
type BenchmarkTable struct {
	overrides map[string]domain.Benchmark
	digest    string
}

// NewBenchmarkTable returns a table with the given per-platform overrides.
func NewBenchmarkTable(overrides map[string]domain.Benchmark) *BenchmarkTable {
	t := &BenchmarkTable{overrides: maps.Clone(overrides)}
	if t.overrides == nil {
		t.overrides = map[string]domain.Benchmark{}
	}
	t.digest = digestOverrides(t.overrides)
	return t
}

// Digest identifies the overrides of the table. It is empty when the table
// only serves built-in figures.
func (t *BenchmarkTable) Digest() string {
	if t == nil {
		return ""
	}
	return t.digest
}

func digestOverrides(overrides map[string]domain.Benchmark) string {
	if len(overrides) == 0 {
		return ""
	}
	d := xxhash.New()
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		b := overrides[name]
		_, _ = d.WriteString(name)
		for _, v := range []float64{b.CTR, b.CPC, b.CPM, b.ConversionRate, b.CPA, b.ROAS} {
			_, _ = d.WriteString("\x1f")
			_, _ = d.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		_, _ = d.WriteString("\x1e")
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

type benchmarkFile struct {
	Platforms map[string]domain.Benchmark `yaml:"platforms"`
}

// LoadBenchmarkTable parses YAML overrides of the form
//
//	platforms:
//	  Facebook: {ctr: 1.1, cpc: 0.6, cpm: 7.5, conversionRate: 8, cpa: 19, roas: 2.1}
func LoadBenchmarkTable(r io.Reader) (*BenchmarkTable, error) {
	var f benchmarkFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode benchmarks: %w", err)
	}
	for name, b := range f.Platforms {
		if b.CTR < 0 || b.CPC < 0 || b.CPM < 0 || b.ConversionRate < 0 || b.CPA < 0 || b.ROAS < 0 {
			return nil, fmt.Errorf("benchmark %q: negative value", name)
		}
	}
	return NewBenchmarkTable(f.Platforms), nil
}

// LoadBenchmarkFile reads overrides from a YAML file.
func LoadBenchmarkFile(path string) (*BenchmarkTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadBenchmarkTable(f)
}

// Lookup returns the benchmark for platform. It never fails.
func (t *BenchmarkTable) Lookup(platform string) domain.Benchmark {
	if t != nil {
		if b, ok := t.overrides[platform]; ok {
			return b
		}
	}
	return DefaultBenchmark(platform)
}
