package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-kpi/internal/core/domain"
)

func TestFilterClause(t *testing.T) {
	from := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	minBudget, maxBudget := 100.0, 5000.0

	tests := []struct {
		name   string
		filter domain.CampaignFilter
		where  string
		args   []any
	}{
		{"empty", domain.CampaignFilter{}, "", nil},
		{
			"platform and status",
			domain.CampaignFilter{Platform: domain.PlatformTikTok, Status: domain.StatusActive},
			"WHERE platform = $1 AND status = $2",
			[]any{domain.PlatformTikTok, "active"},
		},
		{
			"every criterion",
			domain.CampaignFilter{
				Platform:  domain.PlatformFacebook,
				Objective: domain.ObjectiveAwareness,
				Status:    domain.StatusPlanned,
				StartFrom: &from,
				EndTo:     &to,
				MinBudget: &minBudget,
				MaxBudget: &maxBudget,
			},
			"WHERE platform = $1 AND objective = $2 AND status = $3 AND start_date >= $4" +
				" AND COALESCE(end_date, start_date) <= $5 AND budget >= $6 AND budget <= $7",
			[]any{
				domain.PlatformFacebook, domain.ObjectiveAwareness, "planned",
				time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to, minBudget, maxBudget,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := filterClause(tt.filter)
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *float64:
			*p = r.values[i].(float64)
		case *int64:
			*p = r.values[i].(int64)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case **time.Time:
			if v, ok := r.values[i].(time.Time); ok {
				*p = &v
			}
		default:
			return errors.New("unexpected destination")
		}
	}
	return nil
}

type fakeQuerier struct {
	row      pgx.Row
	affected int64
	sql      string
	args     []any
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	if q.affected == 0 {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestGetScansCampaign(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	q := &fakeQuerier{row: fakeRow{values: []any{
		"id-1", "Launch", domain.PlatformFacebook, domain.ObjectiveConversion, "PMI B2B",
		1000.0, start, end, "active",
		250.0, int64(20000), int64(150), int64(12), 1800.0, created, created,
	}}}

	c, err := NewCampaignRepository(q).Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, []any{"id-1"}, q.args)
	assert.Equal(t, "Launch", c.Name)
	assert.Equal(t, domain.StatusActive, c.Status)
	require.NotNil(t, c.EndDate)
	assert.Equal(t, end, *c.EndDate)
	assert.Equal(t, int64(150), c.Clicks)
	assert.Equal(t, 1800.0, c.Revenue)
}

func TestGetMapsNoRows(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewCampaignRepository(q).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestUpdateAndRemoveReportMissingRows(t *testing.T) {
	q := &fakeQuerier{}
	repo := NewCampaignRepository(q)

	assert.ErrorIs(t, repo.Update(context.Background(), &domain.Campaign{ID: "x"}), domain.ErrCampaignNotFound)
	assert.ErrorIs(t, repo.Remove(context.Background(), "x"), domain.ErrCampaignNotFound)

	q.affected = 1
	assert.NoError(t, repo.Remove(context.Background(), "x"))
	assert.Equal(t, []any{"x"}, q.args)
}
