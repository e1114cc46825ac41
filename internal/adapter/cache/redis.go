package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-kpi/internal/core/domain"
)

const keyPrefix = "kpi:"

// Remote is a KPI cache shared between instances through Redis. Entries
// are stored as JSON.
type Remote struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRemote wraps a Redis client.
func NewRemote(client redis.Cmdable, ttl time.Duration) *Remote {
	return &Remote{client: client, ttl: ttl}
}

// Get loads the metrics stored under key. A missing key is a miss, not an
// error.
func (r *Remote) Get(ctx context.Context, key string) (*domain.Metrics, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var m domain.Metrics
	if err = json.Unmarshal(raw, &m); err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

// Set stores m under key with the configured TTL.
func (r *Remote) Set(ctx context.Context, key string, m *domain.Metrics) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+key, raw, r.ttl).Err()
}
