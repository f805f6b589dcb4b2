package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
)

type statusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	GrantID string                   `json:"grantId"`
	Status  domain.ApplicationStatus `json:"status"`
}

// ListStatuses returns every explicitly tracked application status.
func ListStatuses(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.State.Statuses())
	}
}

// SetStatus upserts the application status for a grant.
func SetStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := d.Catalog.Get(id); !ok {
			writeError(w, http.StatusNotFound, "grant not found")
			return
		}

		var req statusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		status, ok := domain.ParseStatus(req.Status)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}

		d.State.SetStatus(id, status)
		d.Logger.Info("application status updated",
			logger.String("grant_id", id),
			logger.String("status", string(status)))

		ctx := r.Context()
		persistStatuses(ctx, d)
		persistActivity(ctx, d)

		writeJSON(w, http.StatusOK, statusResponse{GrantID: id, Status: status})
	}
}
