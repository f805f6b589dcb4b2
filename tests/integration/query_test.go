package integration

import (
	"strings"
	"testing"
	"time"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/export"
	"github.com/grantboard/grantboard/internal/state"
)

var now = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

// catalogFixture mirrors a small grants.yaml load: file order is the
// tie-break order for every stable sort.
func catalogFixture() []*domain.Grant {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []*domain.Grant{
		{ID: "stem-1", Title: "STEM Robotics Grant", Category: "STEM", FundingSource: "NSF", Amount: 15000, Deadline: day(5), Eligibility: []string{"Public schools"}},
		{ID: "arts-1", Title: "Creative Classrooms", Category: "Arts", FundingSource: "NEA", Amount: 8000, Deadline: day(40), Eligibility: []string{"All schools"}},
		{ID: "lit-1", Title: "Early Readers Initiative", Category: "Literacy", FundingSource: "RIF", Amount: 5000, Deadline: day(-3), Eligibility: []string{"Public schools"}},
		{ID: "tech-1", Title: "Device Access Program", Category: "Technology", FundingSource: "Tech Fund", Amount: 60000, Deadline: day(20), Eligibility: []string{"Rural districts"}},
		{ID: "lit-2", Title: "Family Literacy Grant", Category: "Literacy", FundingSource: "DGLF", Amount: 3000, Deadline: "rolling", Eligibility: []string{"All schools"}},
	}
}

// TestBookmarkFolderQueryFlow walks a full user session: bookmark,
// organize into a folder, set a status, then query the folder scope.
func TestBookmarkFolderQueryFlow(t *testing.T) {
	grants := catalogFixture()
	st := state.New()

	st.ToggleBookmark("stem-1")
	st.ToggleBookmark("tech-1")
	st.ToggleBookmark("arts-1")

	folder, err := st.CreateFolder("Fall Applications")
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	if err := st.AddToFolder("stem-1", folder.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}
	if err := st.AddToFolder("tech-1", folder.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}

	st.SetStatus("stem-1", domain.StatusInProgress)

	// Folder scope returns only folder members, catalog order,
	// deadline ascending.
	result := domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{
		Tab:      domain.TabBookmarked,
		FolderID: folder.ID,
		Sort:     domain.SortDeadlineAsc,
		Page:     1,
	}, now)

	if result.Total != 2 {
		t.Fatalf("expected 2 grants in folder, got %d", result.Total)
	}
	if result.Grants[0].ID != "stem-1" || result.Grants[1].ID != "tech-1" {
		t.Errorf("unexpected folder order: %s, %s", result.Grants[0].ID, result.Grants[1].ID)
	}

	// Status filter on the folder scope.
	inProgress := domain.StatusInProgress
	result = domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{
		Tab:      domain.TabBookmarked,
		FolderID: folder.ID,
		Filters:  domain.Filters{Status: &inProgress},
		Page:     1,
	}, now)
	if result.Total != 1 || result.Grants[0].ID != "stem-1" {
		t.Errorf("status filter: expected only stem-1, got total %d", result.Total)
	}

	// Removing the bookmark cascades out of the folder.
	st.ToggleBookmark("stem-1")
	result = domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{
		Tab:      domain.TabBookmarked,
		FolderID: folder.ID,
		Page:     1,
	}, now)
	if result.Total != 1 || result.Grants[0].ID != "tech-1" {
		t.Errorf("after unbookmark: expected only tech-1, got total %d", result.Total)
	}
}

// TestFilterSortExportFlow combines structured filters with sorting and
// feeds the result straight into the CSV exporter.
func TestFilterSortExportFlow(t *testing.T) {
	grants := catalogFixture()
	st := state.New()
	st.ToggleBookmark("tech-1")
	st.SetStatus("tech-1", domain.StatusApplied)

	minAmount := 5000.0
	result := domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{
		Filters: domain.Filters{MinAmount: &minAmount, HideExpired: true},
		Sort:    domain.SortAmountDesc,
		Page:    1,
	}, now)

	// lit-1 is expired, lit-2 is under the amount floor.
	wantOrder := []string{"tech-1", "stem-1", "arts-1"}
	if result.Total != len(wantOrder) {
		t.Fatalf("expected %d grants, got %d", len(wantOrder), result.Total)
	}
	for i, id := range wantOrder {
		if result.Grants[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, result.Grants[i].ID)
		}
	}

	var csv strings.Builder
	if err := export.WriteCSV(&csv, result.Grants, st.Statuses()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(csv.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], `"Applied"`) {
		t.Errorf("tech-1 row should carry its explicit status: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"Not Started"`) {
		t.Errorf("stem-1 row should default to Not Started: %s", lines[2])
	}
}

// TestUrgentWindowFlow checks the urgent filter boundaries through the
// whole pipeline.
func TestUrgentWindowFlow(t *testing.T) {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	grants := []*domain.Grant{
		{ID: "today", Title: "Due Today", Deadline: day(0)},
		{ID: "edge-in", Title: "Due In Seven", Deadline: day(7)},
		{ID: "edge-out", Title: "Due In Eight", Deadline: day(8)},
		{ID: "past", Title: "Past Due", Deadline: day(-1)},
	}
	st := state.New()

	result := domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{
		Filters: domain.Filters{UrgentOnly: true},
		Page:    1,
	}, now)

	if result.Total != 1 || result.Grants[0].ID != "edge-in" {
		t.Errorf("urgent window: expected only edge-in, got total %d", result.Total)
	}
}

// TestPaginationFlow checks page math over a catalog larger than one
// page.
func TestPaginationFlow(t *testing.T) {
	grants := make([]*domain.Grant, 0, 20)
	for i := 0; i < 20; i++ {
		grants = append(grants, &domain.Grant{
			ID:       string(rune('a' + i)),
			Title:    "Grant",
			Deadline: now.AddDate(0, 0, i+1).Format("2006-01-02"),
		})
	}
	st := state.New()

	page3 := domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{Page: 3}, now)
	if page3.TotalPages != 3 {
		t.Errorf("expected 3 pages for 20 grants, got %d", page3.TotalPages)
	}
	if len(page3.Grants) != 2 {
		t.Errorf("expected 2 grants on last page, got %d", len(page3.Grants))
	}

	past := domain.SelectGrants(grants, st.BookmarkedIDs(), st.Folders(), st.Statuses(), domain.Query{Page: 9}, now)
	if len(past.Grants) != 0 || past.Total != 20 {
		t.Errorf("past-end page should be empty with total intact, got %d grants, total %d", len(past.Grants), past.Total)
	}
}
