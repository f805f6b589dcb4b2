package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/httpserver/handlers"
	"github.com/grantboard/grantboard/internal/httpserver/mw"
)

func init() { Register(registerGrants) }

func registerGrants(r chi.Router, d deps.Deps) {
	g := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	g.Get("/grants", handlers.ListGrants(d))
	g.Get("/grants/{id}", handlers.GetGrant(d))
}
