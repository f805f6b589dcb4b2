package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
)

type bookmarkResponse struct {
	GrantID    string `json:"grantId"`
	Bookmarked bool   `json:"bookmarked"`
}

type bookmarkListResponse struct {
	GrantIDs []string `json:"grantIds"`
}

// ListBookmarks returns the bookmarked grant ids in insertion order.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bookmarkListResponse{
			GrantIDs: d.State.BookmarkedIDs(),
		})
	}
}

// ToggleBookmark flips the bookmark bit for a grant. Removing a
// bookmark cascades out of every folder, so folders are persisted
// alongside the bookmark set.
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := d.Catalog.Get(id); !ok {
			writeError(w, http.StatusNotFound, "grant not found")
			return
		}

		bookmarked := d.State.ToggleBookmark(id)
		d.Logger.Info("bookmark toggled",
			logger.String("grant_id", id),
			logger.Bool("bookmarked", bookmarked))

		ctx := r.Context()
		persistBookmarks(ctx, d)
		persistFolders(ctx, d)
		persistActivity(ctx, d)

		writeJSON(w, http.StatusOK, bookmarkResponse{
			GrantID:    id,
			Bookmarked: bookmarked,
		})
	}
}
