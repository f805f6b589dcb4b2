package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/index"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/state"
)

var handlerNow = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

func newTestDeps(grants ...*domain.Grant) deps.Deps {
	cat := index.NewCatalog()
	cat.Update(grants)
	return deps.Deps{
		Logger:   logger.New("error", false),
		TimeNow:  func() time.Time { return handlerNow },
		Catalog:  cat,
		State:    state.New(),
		PageSize: domain.DefaultPageSize,
	}
}

func handlerGrant(id, deadline string) *domain.Grant {
	return &domain.Grant{
		ID:       id,
		Title:    "Grant " + id,
		Category: "STEM",
		Amount:   10000,
		Deadline: deadline,
	}
}

func TestGetGrantComputedFields(t *testing.T) {
	d := newTestDeps(handlerGrant("g1", "2026-09-05"))
	d.State.SetStatus("g1", domain.StatusInProgress)

	r := chi.NewRouter()
	r.Get("/grants/{id}", GetGrant(d))

	req := httptest.NewRequest(http.MethodGet, "/grants/g1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var view struct {
		Status            string `json:"status"`
		DaysUntilDeadline *int   `json:"daysUntilDeadline"`
		Urgent            bool   `json:"urgent"`
		Expired           bool   `json:"expired"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if view.Status != string(domain.StatusInProgress) {
		t.Errorf("status = %q, want %q", view.Status, domain.StatusInProgress)
	}
	if view.DaysUntilDeadline == nil || *view.DaysUntilDeadline != 4 {
		t.Errorf("daysUntilDeadline = %v, want 4", view.DaysUntilDeadline)
	}
	if !view.Urgent {
		t.Error("expected grant 4 days out to be urgent")
	}
	if view.Expired {
		t.Error("expected grant 4 days out to not be expired")
	}
}

func TestGetGrantDefaultsAndMalformedDeadline(t *testing.T) {
	d := newTestDeps(handlerGrant("g1", "rolling"))

	r := chi.NewRouter()
	r.Get("/grants/{id}", GetGrant(d))

	req := httptest.NewRequest(http.MethodGet, "/grants/g1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var view struct {
		Status            string `json:"status"`
		DaysUntilDeadline *int   `json:"daysUntilDeadline"`
		Urgent            bool   `json:"urgent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if view.Status != string(domain.StatusNotStarted) {
		t.Errorf("status = %q, want %q", view.Status, domain.StatusNotStarted)
	}
	if view.DaysUntilDeadline != nil {
		t.Errorf("daysUntilDeadline = %v, want null for unparseable deadline", *view.DaysUntilDeadline)
	}
	if view.Urgent {
		t.Error("unparseable deadline must never be urgent")
	}
}

func TestGetGrantNotFound(t *testing.T) {
	d := newTestDeps(handlerGrant("g1", "2026-09-05"))

	r := chi.NewRouter()
	r.Get("/grants/{id}", GetGrant(d))

	req := httptest.NewRequest(http.MethodGet, "/grants/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestListGrantsEnrichesViews(t *testing.T) {
	d := newTestDeps(
		handlerGrant("soon", "2026-09-03"),
		handlerGrant("later", "2026-12-01"),
	)
	d.State.ToggleBookmark("soon")

	r := chi.NewRouter()
	r.Get("/grants", ListGrants(d))

	req := httptest.NewRequest(http.MethodGet, "/grants", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Grants []struct {
			ID         string `json:"id"`
			Bookmarked bool   `json:"bookmarked"`
			Status     string `json:"status"`
			Urgent     bool   `json:"urgent"`
		} `json:"grants"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}
	for _, g := range resp.Grants {
		switch g.ID {
		case "soon":
			if !g.Bookmarked || !g.Urgent {
				t.Errorf("soon: bookmarked=%v urgent=%v, want both true", g.Bookmarked, g.Urgent)
			}
		case "later":
			if g.Bookmarked || g.Urgent {
				t.Errorf("later: bookmarked=%v urgent=%v, want both false", g.Bookmarked, g.Urgent)
			}
		}
		if g.Status != string(domain.StatusNotStarted) {
			t.Errorf("%s: status = %q, want %q", g.ID, g.Status, domain.StatusNotStarted)
		}
	}
}
