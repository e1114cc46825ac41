package db

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-kpi/internal/adapter/memory"
	"campaign-kpi/internal/core/domain"
)

func TestSeed(t *testing.T) {
	repo := memory.NewCampaignRepository()
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	require.NoError(t, Seed(context.Background(), repo, rand.New(rand.NewPCG(1, 2)), now))

	got, err := repo.List(context.Background(), domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, got, len(demoCampaigns))

	for _, c := range got {
		require.NoError(t, c.Validate(), c.Name)
		started := c.StartDate.Before(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, started, c.HasActualData(), c.Name)
	}
}

func TestRandomPerformanceFunnel(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for range 100 {
		a := randomPerformance(r, 1000)
		assert.GreaterOrEqual(t, a.Impressions, int64(500000))
		assert.LessOrEqual(t, a.Clicks, a.Impressions)
		assert.LessOrEqual(t, a.Conversions, a.Clicks)
		assert.Greater(t, a.ActualSpend, 0.0)
		assert.LessOrEqual(t, a.ActualSpend, 1000.0)
		assert.GreaterOrEqual(t, a.Revenue, 500.0)
	}
}
