package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaign() *Campaign {
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	return &Campaign{
		Name:      "Launch",
		Platform:  PlatformFacebook,
		Objective: ObjectiveConversion,
		Target:    "PMI italiane B2B",
		Budget:    1000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Campaign)
		wantErr string
	}{
		{"valid", func(c *Campaign) {}, ""},
		{"blank name", func(c *Campaign) { c.Name = "  " }, "name is required"},
		{"zero budget", func(c *Campaign) { c.Budget = 0 }, "budget must be a positive number"},
		{"nan budget", func(c *Campaign) { c.Budget = math.NaN() }, "budget must be a positive number"},
		{"no start", func(c *Campaign) { c.StartDate = time.Time{} }, "start date is required"},
		{"end before start", func(c *Campaign) {
			end := c.StartDate.AddDate(0, 0, -1)
			c.EndDate = &end
		}, "end date is before start date"},
		{"unknown status", func(c *Campaign) { c.Status = "archived" }, `unknown status "archived"`},
		{"negative actuals", func(c *Campaign) { c.Clicks = -1 }, "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCampaign()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCampaign)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := (&Campaign{}).Validate()
	require.Error(t, err)
	for _, want := range []string{"name", "platform", "objective", "target", "budget", "start date"} {
		assert.ErrorContains(t, err, want)
	}

	var c *Campaign
	assert.ErrorIs(t, c.Validate(), ErrNilCampaign)
}

func TestHasActualData(t *testing.T) {
	c := validCampaign()
	assert.False(t, c.HasActualData())
	c.Revenue = 500
	assert.False(t, c.HasActualData())
	c.Conversions = 1
	assert.True(t, c.HasActualData())
}

func TestActualsApplyKeepsRecordedValues(t *testing.T) {
	c := validCampaign()
	c.ActualSpend = 100
	c.Impressions = 5000

	Actuals{Clicks: 40, Revenue: 250}.Apply(c)

	assert.Equal(t, 100.0, c.ActualSpend)
	assert.Equal(t, int64(5000), c.Impressions)
	assert.Equal(t, int64(40), c.Clicks)
	assert.Equal(t, 250.0, c.Revenue)
}

func TestFilterMatch(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	minBudget, maxBudget := 500.0, 900.0
	open := validCampaign()
	open.EndDate = nil

	tests := []struct {
		name   string
		filter CampaignFilter
		c      *Campaign
		want   bool
	}{
		{"empty filter", CampaignFilter{}, validCampaign(), true},
		{"platform mismatch", CampaignFilter{Platform: PlatformTikTok}, validCampaign(), false},
		{"objective match", CampaignFilter{Objective: ObjectiveConversion}, validCampaign(), true},
		{"status mismatch", CampaignFilter{Status: StatusActive}, validCampaign(), false},
		{"starts before from", CampaignFilter{StartFrom: day(2)}, validCampaign(), false},
		{"ends after to", CampaignFilter{EndTo: day(30)}, validCampaign(), false},
		{"ends on to", CampaignFilter{EndTo: day(31)}, validCampaign(), true},
		{"open ended starts before to", CampaignFilter{EndTo: day(15)}, open, true},
		{"over max budget", CampaignFilter{MaxBudget: &maxBudget}, validCampaign(), false},
		{"within min budget", CampaignFilter{MinBudget: &minBudget}, validCampaign(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.c))
		})
	}
}

func TestScenarioValidate(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	assert.NoError(t, Scenario{}.Validate())
	assert.NoError(t, Scenario{BudgetChange: v(-50)}.Validate())
	assert.ErrorIs(t, Scenario{BudgetChange: v(-100)}.Validate(), ErrInvalidScenario)
	assert.ErrorIs(t, Scenario{BudgetChange: v(math.Inf(1))}.Validate(), ErrInvalidScenario)
}
