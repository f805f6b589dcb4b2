package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/httpserver/handlers"
	"github.com/grantboard/grantboard/internal/httpserver/mw"
)

func init() { Register(registerViews) }

func registerViews(r chi.Router, d deps.Deps) {
	g := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	g.Get("/stats", handlers.Stats(d))
	g.Get("/calendar", handlers.Calendar(d))
	g.Get("/kanban", handlers.Kanban(d))
	g.Post("/kanban/move", handlers.KanbanMove(d))
	g.Get("/regions", handlers.Regions(d))
}
