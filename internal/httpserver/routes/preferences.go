package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/httpserver/handlers"
	"github.com/grantboard/grantboard/internal/httpserver/mw"
)

func init() { Register(registerPreferences) }

func registerPreferences(r chi.Router, d deps.Deps) {
	g := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	g.Get("/preferences", handlers.GetPreferences(d))
	g.Put("/preferences", handlers.PutPreferences(d))
	g.Get("/searches", handlers.ListSearches(d))
	g.Post("/searches", handlers.SaveSearch(d))
	g.Delete("/searches/{id}", handlers.DeleteSearch(d))
	g.Get("/activity", handlers.ListActivity(d))
}
