package cache

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/ristretto"

	"campaign-kpi/internal/config/configs"
	"campaign-kpi/internal/core/domain"
)

// Local is an in-process KPI cache backed by ristretto. Every entry has a
// cost of one, so MaxCost bounds the number of cached campaigns.
type Local struct {
	client *ristretto.Cache
	ttl    time.Duration
}

// NewLocal creates a ristretto cache sized from cfg.
func NewLocal(cfg configs.Cache) (*Local, error) {
	maxCost := cfg.MaxCost
	if maxCost <= 0 {
		maxCost = 10000
	}
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10, // ristretto recommends 10x the max item count
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Local{client: client, ttl: cfg.TTL}, nil
}

// Get returns a copy of the cached metrics for key.
func (l *Local) Get(_ context.Context, key string) (*domain.Metrics, bool, error) {
	v, ok := l.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	m, ok := v.(*domain.Metrics)
	if !ok {
		return nil, false, nil
	}
	return cloneMetrics(m), true, nil
}

// Set stores a copy of m. Ristretto applies writes asynchronously; Set
// waits so the entry is visible to the next Get.
func (l *Local) Set(_ context.Context, key string, m *domain.Metrics) error {
	l.client.SetWithTTL(key, cloneMetrics(m), 1, l.ttl)
	l.client.Wait()
	return nil
}

// Close releases the cache's goroutines.
func (l *Local) Close() {
	l.client.Close()
}

// cloneMetrics copies m together with its daily series.
func cloneMetrics(m *domain.Metrics) *domain.Metrics {
	cp := *m
	cp.CostPerDay = slices.Clone(m.CostPerDay)
	cp.ImpressionsPerDay = slices.Clone(m.ImpressionsPerDay)
	cp.ClicksPerDay = slices.Clone(m.ClicksPerDay)
	cp.ConversionsPerDay = slices.Clone(m.ConversionsPerDay)
	return &cp
}
