package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/httpserver/handlers"
	"github.com/grantboard/grantboard/internal/httpserver/mw"
)

func init() { Register(registerFolders) }

func registerFolders(r chi.Router, d deps.Deps) {
	g := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	g.Get("/folders", handlers.ListFolders(d))
	g.Post("/folders", handlers.CreateFolder(d))
	g.Delete("/folders/{id}", handlers.DeleteFolder(d))
	g.Post("/folders/{id}/grants", handlers.AddToFolder(d))
	g.Delete("/folders/{id}/grants/{grantId}", handlers.RemoveFromFolder(d))
}
