package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
)

type statsResponse struct {
	Categories []domain.CategoryStat   `json:"categories"`
	Statuses   []domain.StatusCount    `json:"statuses"`
	Deadlines  []domain.DeadlineBucket `json:"deadlines"`
}

// Stats aggregates category, status and deadline statistics over the
// catalog and the bookmarked set.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grants := d.Catalog.All()
		bookmarked := d.State.BookmarkedIDs()

		writeJSON(w, http.StatusOK, statsResponse{
			Categories: domain.CategoryStats(grants, bookmarked),
			Statuses:   domain.StatusCounts(grants, bookmarked, d.State.Statuses()),
			Deadlines:  domain.DeadlineBuckets(grants, bookmarked, d.Now()),
		})
	}
}

type calendarResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  []domain.CalendarDay `json:"days"`
}

// Calendar serves the 42-cell month grid. Defaults to the current
// month when year/month are absent.
func Calendar(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := d.Now()
		year, month := now.Year(), now.Month()

		qs := r.URL.Query()
		if v := qs.Get("year"); v != "" {
			y, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid year")
				return
			}
			year = y
		}
		if v := qs.Get("month"); v != "" {
			m, err := strconv.Atoi(v)
			if err != nil || m < 1 || m > 12 {
				writeError(w, http.StatusBadRequest, "invalid month")
				return
			}
			month = time.Month(m)
		}

		writeJSON(w, http.StatusOK, calendarResponse{
			Year:  year,
			Month: int(month),
			Days:  domain.MonthGrid(d.Catalog.All(), year, month),
		})
	}
}

// Kanban serves the board: one column per application status, built
// from the bookmarked grants.
func Kanban(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board := domain.BuildBoard(d.Catalog.All(), d.State.BookmarkedIDs(), d.State.Statuses())
		writeJSON(w, http.StatusOK, board)
	}
}

type kanbanMoveRequest struct {
	GrantID string `json:"grantId"`
	Status  string `json:"status"`
}

// KanbanMove moves a card to another column, which is a status upsert.
func KanbanMove(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req kanbanMoveRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if _, ok := d.Catalog.Get(req.GrantID); !ok {
			writeError(w, http.StatusNotFound, "grant not found")
			return
		}
		status, ok := domain.ParseStatus(req.Status)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		if !d.State.IsBookmarked(req.GrantID) {
			writeError(w, http.StatusConflict, "grant is not bookmarked")
			return
		}

		d.State.SetStatus(req.GrantID, status)
		d.Logger.Info("kanban card moved",
			logger.String("grant_id", req.GrantID),
			logger.String("status", string(status)))

		ctx := r.Context()
		persistStatuses(ctx, d)
		persistActivity(ctx, d)

		board := domain.BuildBoard(d.Catalog.All(), d.State.BookmarkedIDs(), d.State.Statuses())
		writeJSON(w, http.StatusOK, board)
	}
}

type regionGroup struct {
	Region string          `json:"region"`
	Grants []*domain.Grant `json:"grants"`
}

type mapMarker struct {
	Category string  `json:"category"`
	Region   string  `json:"region"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Count    int     `json:"count"`
}

type regionsResponse struct {
	Regions []regionGroup `json:"regions"`
	Markers []mapMarker   `json:"markers"`
}

// Regions groups the catalog by the fixed category-to-region table and
// emits one map marker per known category that has grants.
func Regions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grants := d.Catalog.All()
		grouped := domain.GroupByRegion(grants)

		regions := make([]regionGroup, 0, len(domain.Regions)+1)
		for _, region := range domain.Regions {
			group := grouped[region]
			if group == nil {
				group = []*domain.Grant{}
			}
			regions = append(regions, regionGroup{Region: region, Grants: group})
		}
		if unknown := grouped[domain.UnknownRegion]; len(unknown) > 0 {
			regions = append(regions, regionGroup{Region: domain.UnknownRegion, Grants: unknown})
		}

		perCategory := make(map[string]int)
		for _, g := range grants {
			perCategory[g.Category]++
		}
		markers := make([]mapMarker, 0, len(perCategory))
		for _, g := range grants {
			loc, ok := domain.CategoryLocations[g.Category]
			if !ok {
				continue
			}
			if n, pending := perCategory[g.Category]; pending && n > 0 {
				markers = append(markers, mapMarker{
					Category: g.Category,
					Region:   loc.Region,
					Lat:      loc.Lat,
					Lng:      loc.Lng,
					Count:    n,
				})
				delete(perCategory, g.Category)
			}
		}

		writeJSON(w, http.StatusOK, regionsResponse{Regions: regions, Markers: markers})
	}
}
