package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
)

// grantView is a grant enriched with per-user computed fields.
type grantView struct {
	*domain.Grant
	Bookmarked        bool                     `json:"bookmarked"`
	Status            domain.ApplicationStatus `json:"status"`
	DaysUntilDeadline *int                     `json:"daysUntilDeadline"`
	Urgent            bool                     `json:"urgent"`
	Expired           bool                     `json:"expired"`
}

type grantListResponse struct {
	Grants     []grantView `json:"grants"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

// ListGrants serves the full query surface: free-text search, tab and
// folder scoping, structured filters, sorting and pagination.
func ListGrants(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseGrantQuery(r, d.PageSize)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		statuses := d.State.Statuses()
		result := domain.SelectGrants(
			d.Catalog.All(),
			d.State.BookmarkedIDs(),
			d.State.Folders(),
			statuses,
			q,
			d.Now(),
		)

		views := make([]grantView, 0, len(result.Grants))
		for _, g := range result.Grants {
			views = append(views, buildGrantView(g, d, statuses))
		}

		writeJSON(w, http.StatusOK, grantListResponse{
			Grants:     views,
			Total:      result.Total,
			Page:       result.Page,
			TotalPages: result.TotalPages,
		})
	}
}

// GetGrant serves a single grant by id.
func GetGrant(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		grant, ok := d.Catalog.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "grant not found")
			return
		}
		writeJSON(w, http.StatusOK, buildGrantView(grant, d, d.State.Statuses()))
	}
}

func buildGrantView(g *domain.Grant, d deps.Deps, statuses map[string]domain.ApplicationStatus) grantView {
	now := d.Now()
	view := grantView{
		Grant:      g,
		Bookmarked: d.State.IsBookmarked(g.ID),
		Status:     domain.ResolveStatus(statuses, g.ID),
	}
	if deadline, ok := g.DeadlineTime(); ok {
		days := domain.DaysUntil(deadline, now)
		view.DaysUntilDeadline = &days
		view.Urgent = domain.IsUrgent(deadline, now)
		view.Expired = domain.IsExpired(deadline, now)
	}
	return view
}

// parseGrantQuery translates the query string into a domain query.
// The UI sends "all" for unfiltered selects; the engine wants unset
// sentinels, so the translation happens here and nowhere deeper.
func parseGrantQuery(r *http.Request, pageSize int) (domain.Query, error) {
	qs := r.URL.Query()
	q := domain.Query{
		Search:   qs.Get("q"),
		Tab:      domain.TabAll,
		FolderID: qs.Get("folder"),
		Sort:     domain.DefaultSort,
		Page:     1,
		PageSize: pageSize,
	}

	switch tab := qs.Get("tab"); tab {
	case "", "all":
	case "bookmarked":
		q.Tab = domain.TabBookmarked
	default:
		return q, fmt.Errorf("invalid tab %q", tab)
	}

	if v := qs.Get("category"); v != "" && v != "all" {
		q.Filters.Category = v
	}
	if v := qs.Get("eligibility"); v != "" && v != "all" {
		q.Filters.Eligibility = v
	}

	if v := qs.Get("min_amount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("invalid min_amount %q", v)
		}
		q.Filters.MinAmount = &f
	}
	if v := qs.Get("max_amount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("invalid max_amount %q", v)
		}
		q.Filters.MaxAmount = &f
	}

	if v := qs.Get("deadline_days"); v != "" && v != "all" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return q, fmt.Errorf("invalid deadline_days %q", v)
		}
		q.Filters.DeadlineDays = &n
	}

	var err error
	if q.Filters.HideExpired, err = parseBoolParam(qs.Get("hide_expired")); err != nil {
		return q, fmt.Errorf("invalid hide_expired: %w", err)
	}
	if q.Filters.BookmarkedOnly, err = parseBoolParam(qs.Get("bookmarked_only")); err != nil {
		return q, fmt.Errorf("invalid bookmarked_only: %w", err)
	}
	if q.Filters.UrgentOnly, err = parseBoolParam(qs.Get("urgent_only")); err != nil {
		return q, fmt.Errorf("invalid urgent_only: %w", err)
	}

	if v := qs.Get("status"); v != "" && v != "all" {
		status, ok := domain.ParseStatus(v)
		if !ok {
			return q, fmt.Errorf("invalid status %q", v)
		}
		q.Filters.Status = &status
	}

	if v := qs.Get("sort"); v != "" {
		sort, ok := domain.ParseSortOption(v)
		if !ok {
			return q, fmt.Errorf("invalid sort %q", v)
		}
		q.Sort = sort
	}

	if v := qs.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("invalid page %q", v)
		}
		q.Page = page
	}

	return q, nil
}

func parseBoolParam(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "", "false", "0":
		return false, nil
	case "true", "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected true or false, got %q", v)
	}
}
