package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/httpserver/handlers"
	"github.com/grantboard/grantboard/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	g := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	g.Get("/bookmarks", handlers.ListBookmarks(d))
	g.Post("/grants/{id}/bookmark", handlers.ToggleBookmark(d))
	g.Put("/grants/{id}/status", handlers.SetStatus(d))
	g.Get("/statuses", handlers.ListStatuses(d))
}
