package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-kpi/internal/core/domain"
)

// handleListCampaigns returns the campaigns matching the filter query
// parameters (see parseFilter).
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	campaigns, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	if campaigns == nil {
		campaigns = []*domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleCreateCampaign stores a new campaign and answers 201 with it.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignReq
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	created, err := h.svc.Create(r.Context(), c)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	w.Header().Set("Location", r.URL.Path+"/"+created.ID)
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignReq
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, "update campaign", err)
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), c)
	if err != nil {
		h.writeError(w, r, "update campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "delete campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDuplicateCampaign(w http.ResponseWriter, r *http.Request) {
	dup, err := h.svc.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "duplicate campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, dup)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeError(w, r, "update status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleRecordActuals merges reported performance into a campaign. Fields
// left out or zero keep their recorded value.
func (h *Handler) handleRecordActuals(w http.ResponseWriter, r *http.Request) {
	var req actualsReq
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.svc.RecordActuals(r.Context(), chi.URLParam(r, "id"), req.toDomain())
	if err != nil {
		h.writeError(w, r, "record actuals", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
