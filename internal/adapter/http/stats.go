package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"campaign-kpi/internal/core/domain"
)

// handleStatsOverview returns aggregated metrics and the best campaigns by
// ROAS over the campaigns matching the filter query parameters. Invalid
// parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stats, err := h.svc.Overview(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	if stats.Top == nil {
		stats.Top = []domain.CampaignKPI{}
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// parseFilter reads `platform`, `objective`, `status`, `from`, `to`
// (YYYY-MM-DD), `minBudget` and `maxBudget`.
func parseFilter(q url.Values) (domain.CampaignFilter, error) {
	f := domain.CampaignFilter{
		Platform:  q.Get("platform"),
		Objective: q.Get("objective"),
		Status:    domain.Status(q.Get("status")),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, fmt.Errorf("invalid 'status' %q", f.Status)
	}
	for _, p := range []struct {
		name string
		dst  **float64
	}{{"minBudget", &f.MinBudget}, {"maxBudget", &f.MaxBudget}} {
		s := q.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return f, fmt.Errorf("invalid '%s'", p.name)
		}
		*p.dst = &v
	}
	if s := q.Get("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return f, errors.New("invalid 'from' date")
		}
		f.StartFrom = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return f, errors.New("invalid 'to' date")
		}
		f.EndTo = &t
	}
	return f, nil
}
