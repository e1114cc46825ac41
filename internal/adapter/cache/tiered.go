package cache

import (
	"context"
	"errors"

	"campaign-kpi/internal/core/domain"
	"campaign-kpi/internal/core/port"
)

// Tiered checks a fast local cache before a shared remote one and fills
// the local tier on remote hits.
type Tiered struct {
	local  port.KPICache
	remote port.KPICache
}

// NewTiered combines two caches.
func NewTiered(local, remote port.KPICache) *Tiered {
	return &Tiered{local: local, remote: remote}
}

func (t *Tiered) Get(ctx context.Context, key string) (*domain.Metrics, bool, error) {
	if m, ok, err := t.local.Get(ctx, key); err == nil && ok {
		return m, true, nil
	}
	m, ok, err := t.remote.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = t.local.Set(ctx, key, m)
	return m, true, nil
}

// Set writes both tiers. A remote failure is returned after the local
// write succeeded.
func (t *Tiered) Set(ctx context.Context, key string, m *domain.Metrics) error {
	return errors.Join(t.local.Set(ctx, key, m), t.remote.Set(ctx, key, m))
}
