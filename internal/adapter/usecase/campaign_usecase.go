package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign-kpi/internal/core/domain"
	"campaign-kpi/internal/core/kpi"
	"campaign-kpi/internal/core/port"
	"campaign-kpi/internal/metrics"
)

// overviewTop is the number of best campaigns reported by Overview.
const overviewTop = 5

// Option configures a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithCache memoizes KPI results in c.
func WithCache(c port.KPICache) Option {
	return func(u *CampaignUseCase) { u.cache = c }
}

// WithMetrics records computation and cache metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *CampaignUseCase) { u.metrics = m }
}

// CampaignUseCase provides campaign management and KPI estimation. It
// orchestrates the repository, the KPI engine and the optional cache to
// implement port.CampaignUseCase.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	engine  *kpi.Engine
	cache   port.KPICache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase. The engine's clock is used for
// timestamps so tests can pin "now".
func NewCampaignUseCase(repo port.CampaignRepository, engine *kpi.Engine, logger *slog.Logger, opts ...Option) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	u := &CampaignUseCase{repo: repo, engine: engine, logger: logger}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create validates c, assigns a new id and stores it. An empty status
// becomes planned.
func (u *CampaignUseCase) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	now := u.engine.Now().UTC()
	created := *c
	created.ID = uuid.NewString()
	if created.Status == "" {
		created.Status = domain.StatusPlanned
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := u.repo.Add(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

func (u *CampaignUseCase) List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	campaigns, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	u.metrics.SetCampaigns(len(campaigns))
	return campaigns, nil
}

// Update replaces the editable fields of the stored campaign with those of
// c. Recorded performance, id and creation time are kept. An empty status
// keeps the stored one.
func (u *CampaignUseCase) Update(ctx context.Context, id string, c *domain.Campaign) (*domain.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	stored, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stored.Name = c.Name
	stored.Platform = c.Platform
	stored.Objective = c.Objective
	stored.Target = c.Target
	stored.Budget = c.Budget
	stored.StartDate = c.StartDate
	stored.EndDate = c.EndDate
	if c.Status != "" {
		stored.Status = c.Status
	}
	stored.UpdatedAt = u.engine.Now().UTC()

	if err = u.repo.Update(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.Remove(ctx, id)
}

// Duplicate stores a planned copy of the campaign that starts today and
// lasts as many days as the source campaign. Recorded performance is not copied.
func (u *CampaignUseCase) Duplicate(ctx context.Context, id string) (*domain.Campaign, error) {
	src, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := u.engine.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	dup := &domain.Campaign{
		ID:        uuid.NewString(),
		Name:      "Copy of " + src.Name,
		Platform:  src.Platform,
		Objective: src.Objective,
		Target:    src.Target,
		Budget:    src.Budget,
		StartDate: today,
		Status:    domain.StatusPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if src.EndDate != nil {
		end := today.AddDate(0, 0, kpi.SimulationDays(src)-1)
		dup.EndDate = &end
	}
	if err = u.repo.Add(ctx, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

func (u *CampaignUseCase) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidCampaign, status)
	}
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = status
	c.UpdatedAt = u.engine.Now().UTC()
	if err = u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RecordActuals merges a into the stored campaign. Values that are zero
// keep what was recorded before.
func (u *CampaignUseCase) RecordActuals(ctx context.Context, id string, a domain.Actuals) (*domain.Campaign, error) {
	if a.ActualSpend < 0 || a.Impressions < 0 || a.Clicks < 0 || a.Conversions < 0 || a.Revenue < 0 {
		return nil, fmt.Errorf("%w: recorded performance must not be negative", domain.ErrInvalidCampaign)
	}
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Apply(c)
	c.UpdatedAt = u.engine.Now().UTC()
	if err = u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// KPI returns the metrics of a stored campaign, served from the cache when
// its inputs have not changed.
func (u *CampaignUseCase) KPI(ctx context.Context, id string) (*domain.Metrics, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.calculate(ctx, c)
}

// Simulate validates an unsaved campaign and projects its metrics. Recorded
// performance on c is ignored.
func (u *CampaignUseCase) Simulate(_ context.Context, c *domain.Campaign) (*domain.Metrics, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	m, err := u.engine.Simulate(c)
	if err != nil {
		return nil, err
	}
	u.metrics.RecordComputation(string(m.Source), time.Since(start))
	return m, nil
}

func (u *CampaignUseCase) Forecast(ctx context.Context, id string, days int) (*domain.Metrics, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.engine.Forecast(c, days)
}

func (u *CampaignUseCase) WhatIf(ctx context.Context, id string, s domain.Scenario) (*domain.Comparison, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.engine.WhatIf(c, s)
}

// PlatformBenchmark reports the benchmark of platform next to the blended
// performance recorded by its campaigns.
func (u *CampaignUseCase) PlatformBenchmark(ctx context.Context, platform string) (*port.BenchmarkResp, error) {
	campaigns, err := u.repo.List(ctx, domain.CampaignFilter{Platform: platform})
	if err != nil {
		return nil, err
	}
	avg, n := u.engine.PlatformAverage(platform, campaigns)
	return &port.BenchmarkResp{
		Platform:  platform,
		Benchmark: u.engine.Benchmark(platform),
		Average:   avg,
		Samples:   n,
	}, nil
}

// Overview computes the metrics of every campaign matching filter and
// aggregates them.
func (u *CampaignUseCase) Overview(ctx context.Context, filter domain.CampaignFilter) (*port.OverviewResp, error) {
	campaigns, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]domain.CampaignKPI, 0, len(campaigns))
	for _, c := range campaigns {
		m, err := u.calculate(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("campaign %s: %w", c.ID, err)
		}
		items = append(items, domain.CampaignKPI{Campaign: c, KPI: m})
	}
	return &port.OverviewResp{
		Totals: kpi.Totals(items),
		Top:    kpi.TopByROAS(items, overviewTop),
	}, nil
}

// calculate runs the engine for c, consulting the cache first. Cache
// failures are logged and never fail the request.
func (u *CampaignUseCase) calculate(ctx context.Context, c *domain.Campaign) (*domain.Metrics, error) {
	var key string
	if u.cache != nil {
		key = u.engine.Fingerprint(c)
		m, ok, err := u.cache.Get(ctx, key)
		switch {
		case err != nil:
			u.metrics.RecordCacheLookup(metrics.CacheError)
			u.logger.Warn("kpi cache get error", slog.String("campaign_id", c.ID), slog.Any("error", err))
		case ok:
			u.metrics.RecordCacheLookup(metrics.CacheHit)
			return m, nil
		default:
			u.metrics.RecordCacheLookup(metrics.CacheMiss)
		}
	}

	start := time.Now()
	m, err := u.engine.Calculate(c)
	if err != nil {
		return nil, err
	}
	u.metrics.RecordComputation(string(m.Source), time.Since(start))

	if u.cache != nil {
		if err = u.cache.Set(ctx, key, m); err != nil {
			u.logger.Warn("kpi cache set error", slog.String("campaign_id", c.ID), slog.Any("error", err))
		}
	}
	return m, nil
}
