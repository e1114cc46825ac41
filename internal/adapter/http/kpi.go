package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-kpi/internal/core/domain"
)

// handleCampaignKPI returns the metrics of a stored campaign: recorded
// figures when it has any, a simulation otherwise.
func (h *Handler) handleCampaignKPI(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.KPI(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "campaign kpi", err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// handleForecast projects a campaign over the number of days given by the
// optional `days` query parameter.
func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	var days int
	if s := r.URL.Query().Get("days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > 366 {
			http.Error(w, "invalid 'days': expected 1..366", http.StatusBadRequest)
			return
		}
		days = v
	}
	m, err := h.svc.Forecast(r.Context(), chi.URLParam(r, "id"), days)
	if err != nil {
		h.writeError(w, r, "forecast", err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

func (h *Handler) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	var s domain.Scenario
	if !decodeJSON(w, r, &s) {
		return
	}
	cmp, err := h.svc.WhatIf(r.Context(), chi.URLParam(r, "id"), s)
	if err != nil {
		h.writeError(w, r, "what-if", err)
		return
	}
	h.writeJSON(w, http.StatusOK, cmp)
}

// handleSimulate projects the metrics of a campaign that is not stored.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req campaignReq
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, "simulate", err)
		return
	}
	m, err := h.svc.Simulate(r.Context(), c)
	if err != nil {
		h.writeError(w, r, "simulate", err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

func (h *Handler) handlePlatformBenchmark(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.PlatformBenchmark(r.Context(), chi.URLParam(r, "platform"))
	if err != nil {
		h.writeError(w, r, "platform benchmark", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
