package handlers

import (
	"net/http"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
)

// ListActivity returns the recent-activity log, newest first.
func ListActivity(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.State.RecentActivity())
	}
}
