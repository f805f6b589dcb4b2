package handlers

import (
	"net/http"
	"strings"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/export"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
)

// exportSelection resolves which grants an export covers. Without an
// ids parameter the whole bookmarked set is exported in bookmark
// order; with ids, only the listed grants, in the given order.
// Unknown ids are skipped.
func exportSelection(r *http.Request, d deps.Deps) (grants []*domain.Grant, selected bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("ids"))
	if raw == "" {
		for _, id := range d.State.BookmarkedIDs() {
			if g, ok := d.Catalog.Get(id); ok {
				grants = append(grants, g)
			}
		}
		return grants, false
	}

	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if g, ok := d.Catalog.Get(id); ok {
			grants = append(grants, g)
		}
	}
	return grants, true
}

// ExportCSV streams the selection as a CSV download.
func ExportCSV(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grants, selected := exportSelection(r, d)

		filename := "bookmarked-grants.csv"
		if selected {
			filename = "selected-grants.csv"
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

		if err := export.WriteCSV(w, grants, d.State.Statuses()); err != nil {
			d.Logger.Error("csv export failed", logger.Error(err))
			return
		}
		d.Logger.Info("csv export served",
			logger.Int("grants", len(grants)),
			logger.String("filename", filename))
	}
}

// ExportReport streams the selection as a plain-text report download.
func ExportReport(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grants, selected := exportSelection(r, d)

		filename := "bookmarked-grants.txt"
		if selected {
			filename = "selected-grants.txt"
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

		if err := export.WriteReport(w, grants, d.State.Statuses()); err != nil {
			d.Logger.Error("report export failed", logger.Error(err))
			return
		}
		d.Logger.Info("report export served",
			logger.Int("grants", len(grants)),
			logger.String("filename", filename))
	}
}
