package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/httpserver/handlers"
	"github.com/grantboard/grantboard/internal/httpserver/mw"
)

func init() { Register(registerExport) }

func registerExport(r chi.Router, d deps.Deps) {
	g := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	g.Get("/export/csv", handlers.ExportCSV(d))
	g.Get("/export/report", handlers.ExportReport(d))
}
