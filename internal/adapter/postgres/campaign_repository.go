package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-kpi/internal/core/domain"
)

const campaignColumns = `id, name, platform, objective, target, budget, start_date, end_date, status,
       actual_spend, impressions, clicks, conversions, revenue, created_at, updated_at`

// Querier is the subset of pgxpool.Pool used by the repository.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	db Querier
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db Querier) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// List returns the campaigns matching filter ordered by start date.
func (r *CampaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY start_date, id`, campaignColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Add inserts a new campaign.
func (r *CampaignRepository) Add(ctx context.Context, c *domain.Campaign) error {
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns
    (id, name, platform, objective, target, budget, start_date, end_date, status,
     actual_spend, impressions, clicks, conversions, revenue, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		c.ID, c.Name, c.Platform, c.Objective, c.Target, c.Budget, c.StartDate, c.EndDate, string(c.Status),
		c.ActualSpend, c.Impressions, c.Clicks, c.Conversions, c.Revenue, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update replaces every stored field of a campaign except its creation time.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.db.Exec(ctx, `UPDATE campaigns SET
    name = $2, platform = $3, objective = $4, target = $5, budget = $6, start_date = $7, end_date = $8,
    status = $9, actual_spend = $10, impressions = $11, clicks = $12, conversions = $13, revenue = $14,
    updated_at = $15
WHERE id = $1`,
		c.ID, c.Name, c.Platform, c.Objective, c.Target, c.Budget, c.StartDate, c.EndDate,
		string(c.Status), c.ActualSpend, c.Impressions, c.Clicks, c.Conversions, c.Revenue, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// Remove deletes a campaign by id.
func (r *CampaignRepository) Remove(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Platform,
		&c.Objective,
		&c.Target,
		&c.Budget,
		&c.StartDate,
		&c.EndDate,
		&status,
		&c.ActualSpend,
		&c.Impressions,
		&c.Clicks,
		&c.Conversions,
		&c.Revenue,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.Status(status)
	return &c, nil
}

// filterClause translates filter into a WHERE clause and its positional
// arguments. It mirrors domain.CampaignFilter.Match.
func filterClause(f domain.CampaignFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Platform != "" {
		add("platform = $%d", f.Platform)
	}
	if f.Objective != "" {
		add("objective = $%d", f.Objective)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.StartFrom != nil {
		add("start_date >= $%d", dateOnly(*f.StartFrom))
	}
	if f.EndTo != nil {
		add("COALESCE(end_date, start_date) <= $%d", dateOnly(*f.EndTo))
	}
	if f.MinBudget != nil {
		add("budget >= $%d", *f.MinBudget)
	}
	if f.MaxBudget != nil {
		add("budget <= $%d", *f.MaxBudget)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
