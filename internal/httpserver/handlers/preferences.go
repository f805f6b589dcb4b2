package handlers

import (
	"net/http"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/state"
)

// GetPreferences returns the current user preferences.
func GetPreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.State.GetPreferences())
	}
}

// PutPreferences replaces the preferences wholesale. Unknown view
// modes, sort options and card sizes are normalized to defaults
// instead of rejected, mirroring how a stale client is tolerated.
func PutPreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prefs state.Preferences
		if err := decodeJSON(r, &prefs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		d.State.SetPreferences(prefs)
		persistPreferences(r.Context(), d)

		writeJSON(w, http.StatusOK, d.State.GetPreferences())
	}
}
