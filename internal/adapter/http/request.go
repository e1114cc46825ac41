package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"campaign-kpi/internal/core/domain"
)

// maxBodyBytes limits request bodies.
const maxBodyBytes = 1 << 20

const dateLayout = "2006-01-02"

// campaignReq is the body of create, update and simulate requests. Dates
// are calendar days (YYYY-MM-DD); RFC 3339 timestamps are accepted too.
// "spend" is accepted as an alias of "actualSpend".
type campaignReq struct {
	Name      string        `json:"name"`
	Platform  string        `json:"platform"`
	Objective string        `json:"objective"`
	Target    string        `json:"target"`
	Budget    float64       `json:"budget"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Status    domain.Status `json:"status"`

	actualsReq
}

// actualsReq carries recorded performance.
type actualsReq struct {
	ActualSpend float64 `json:"actualSpend"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

type statusReq struct {
	Status domain.Status `json:"status"`
}

func (a actualsReq) toDomain() domain.Actuals {
	spend := a.ActualSpend
	if spend == 0 {
		spend = a.Spend
	}
	return domain.Actuals{
		ActualSpend: spend,
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		Conversions: a.Conversions,
		Revenue:     a.Revenue,
	}
}

// toDomain converts the request. Malformed dates are reported as invalid
// campaigns.
func (req campaignReq) toDomain() (*domain.Campaign, error) {
	a := req.actualsReq.toDomain()
	c := &domain.Campaign{
		Name:        req.Name,
		Platform:    req.Platform,
		Objective:   req.Objective,
		Target:      req.Target,
		Budget:      req.Budget,
		Status:      req.Status,
		ActualSpend: a.ActualSpend,
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		Conversions: a.Conversions,
		Revenue:     a.Revenue,
	}

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate: %v", domain.ErrInvalidCampaign, err)
		}
		c.StartDate = start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate: %v", domain.ErrInvalidCampaign, err)
		}
		c.EndDate = &end
	}
	return c, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar day in
// UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// decodeJSON reads a single JSON value from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
