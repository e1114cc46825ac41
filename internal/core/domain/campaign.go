package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Platform names with a dedicated benchmark row.
const (
	PlatformFacebook  = "Facebook"
	PlatformInstagram = "Instagram"
	PlatformLinkedIn  = "LinkedIn"
	PlatformTwitter   = "Twitter"
	PlatformGoogleAds = "Google Ads"
	PlatformYouTube   = "YouTube"
	PlatformTikTok    = "TikTok"
)

// Campaign objectives.
const (
	ObjectiveAwareness     = "Awareness"
	ObjectiveConsideration = "Consideration"
	ObjectiveConversion    = "Conversion"
	ObjectiveRetention     = "Retention"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Campaign represents a social-media marketing campaign. Budget and the
// recorded performance fields are currency-agnostic amounts. EndDate is an
// inclusive calendar day; nil means the campaign has no fixed end.
type Campaign struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Platform  string     `json:"platform"`
	Objective string     `json:"objective"`
	Target    string     `json:"target"`
	Budget    float64    `json:"budget"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    Status     `json:"status"`

	// Recorded performance. Zero means "not recorded".
	ActualSpend float64 `json:"actualSpend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasActualData reports whether any recorded performance figure is
// positive. Revenue on its own does not count.
func (c *Campaign) HasActualData() bool {
	return c.ActualSpend > 0 || c.Impressions > 0 || c.Clicks > 0 || c.Conversions > 0
}

// Validate checks the fields a caller must supply before a campaign is
// stored or simulated. All violations are reported in one error wrapping
// ErrInvalidCampaign.
func (c *Campaign) Validate() error {
	if c == nil {
		return ErrNilCampaign
	}
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(c.Platform) == "" {
		problems = append(problems, "platform is required")
	}
	if strings.TrimSpace(c.Objective) == "" {
		problems = append(problems, "objective is required")
	}
	if strings.TrimSpace(c.Target) == "" {
		problems = append(problems, "target is required")
	}
	if math.IsNaN(c.Budget) || math.IsInf(c.Budget, 0) || c.Budget <= 0 {
		problems = append(problems, "budget must be a positive number")
	}
	if c.StartDate.IsZero() {
		problems = append(problems, "start date is required")
	} else if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		problems = append(problems, "end date is before start date")
	}
	if c.Status != "" && !c.Status.Valid() {
		problems = append(problems, fmt.Sprintf("unknown status %q", c.Status))
	}
	if c.ActualSpend < 0 || c.Impressions < 0 || c.Clicks < 0 || c.Conversions < 0 || c.Revenue < 0 {
		problems = append(problems, "recorded performance must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCampaign, strings.Join(problems, "; "))
	}
	return nil
}

// Actuals carries recorded performance figures reported for a campaign.
type Actuals struct {
	ActualSpend float64 `json:"actualSpend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// Apply merges a into c. Only positive values replace what is stored, so a
// partial report keeps previously recorded figures.
func (a Actuals) Apply(c *Campaign) {
	if a.ActualSpend > 0 {
		c.ActualSpend = a.ActualSpend
	}
	if a.Impressions > 0 {
		c.Impressions = a.Impressions
	}
	if a.Clicks > 0 {
		c.Clicks = a.Clicks
	}
	if a.Conversions > 0 {
		c.Conversions = a.Conversions
	}
	if a.Revenue > 0 {
		c.Revenue = a.Revenue
	}
}

// CampaignFilter narrows a campaign listing. Zero values disable a
// criterion.
type CampaignFilter struct {
	Platform  string
	Objective string
	Status    Status
	StartFrom *time.Time
	EndTo     *time.Time
	MinBudget *float64
	MaxBudget *float64
}

// Match reports whether c satisfies every criterion of f. A campaign with
// no end date matches EndTo when it starts on or before it.
func (f CampaignFilter) Match(c *Campaign) bool {
	if f.Platform != "" && c.Platform != f.Platform {
		return false
	}
	if f.Objective != "" && c.Objective != f.Objective {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.StartFrom != nil && c.StartDate.Before(*f.StartFrom) {
		return false
	}
	if f.EndTo != nil {
		if c.EndDate == nil {
			if c.StartDate.After(*f.EndTo) {
				return false
			}
		} else if c.EndDate.After(*f.EndTo) {
			return false
		}
	}
	if f.MinBudget != nil && c.Budget < *f.MinBudget {
		return false
	}
	if f.MaxBudget != nil && c.Budget > *f.MaxBudget {
		return false
	}
	return true
}
