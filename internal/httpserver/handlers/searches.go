package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/state"
)

type saveSearchRequest struct {
	Name    string         `json:"name"`
	Query   string         `json:"query"`
	Filters domain.Filters `json:"filters"`
}

// ListSearches returns all saved searches in creation order.
func ListSearches(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.State.SavedSearches())
	}
}

// SaveSearch records a named query/filter snapshot.
func SaveSearch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveSearchRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		search, err := d.State.SaveSearch(req.Name, req.Query, req.Filters)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		d.Logger.Info("search saved",
			logger.String("search_id", search.ID),
			logger.String("name", search.Name))

		persistSearches(r.Context(), d)
		writeJSON(w, http.StatusCreated, search)
	}
}

// DeleteSearch removes a saved search by id.
func DeleteSearch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.State.DeleteSearch(id); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, state.ErrSearchNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}

		persistSearches(r.Context(), d)
		w.WriteHeader(http.StatusNoContent)
	}
}
