package domain

import (
	"reflect"
	"testing"
)

// deadlineIn formats a deadline N days from testNow.
func deadlineIn(days int) string {
	return testNow.AddDate(0, 0, days).Format("2006-01-02")
}

func testGrants() []*Grant {
	return []*Grant{
		{
			ID:            "a",
			Title:         "Classroom Robotics Kits",
			Description:   "Fund robotics kits for hands-on engineering lessons",
			Category:      "STEM",
			FundingSource: "National Science Initiative",
			Amount:        1000,
			Deadline:      deadlineIn(3),
			Eligibility:   []string{"Elementary", "Middle School"},
		},
		{
			ID:            "b",
			Title:         "Mural Arts Program",
			Description:   "Community mural painting residencies",
			Category:      "Arts",
			FundingSource: "Arts Council",
			Amount:        50000,
			Deadline:      deadlineIn(40),
			Eligibility:   []string{"High School"},
		},
		{
			ID:            "c",
			Title:         "Reading Corner Refresh",
			Description:   "New books for early readers",
			Category:      "Literacy",
			FundingSource: "Readers Foundation",
			Amount:        5000,
			Deadline:      deadlineIn(-1),
			Eligibility:   []string{"Elementary", "Title I"},
		},
		{
			ID:            "d",
			Title:         "Device Refresh Grant",
			Description:   "Replace aging student laptops",
			Category:      "Technology",
			FundingSource: "EdTech Alliance",
			Amount:        25000,
			Deadline:      deadlineIn(7),
			Eligibility:   []string{"K-12"},
		},
		{
			ID:            "e",
			Title:         "Sensory Room Equipment",
			Description:   "Equipment for a dedicated sensory room",
			Category:      "Special Education",
			FundingSource: "Inclusive Schools Fund",
			Amount:        12000,
			Deadline:      "rolling",
			Eligibility:   []string{"K-12", "Charter"},
		},
	}
}

func ids(grants []*Grant) []string {
	out := make([]string, 0, len(grants))
	for _, g := range grants {
		out = append(out, g.ID)
	}
	return out
}

func TestSelectGrantsNoFiltersReturnsAll(t *testing.T) {
	grants := testGrants()
	res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll}, testNow)

	if res.Total != len(grants) {
		t.Errorf("Total = %v, want %v", res.Total, len(grants))
	}
	if len(res.Grants) != len(grants) {
		t.Errorf("page holds %v grants, want %v", len(res.Grants), len(grants))
	}

	// Default sort is deadline-asc with undated grants last.
	want := []string{"c", "a", "d", "b", "e"}
	if got := ids(res.Grants); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSelectGrantsEmptyCollection(t *testing.T) {
	res := SelectGrants(nil, nil, nil, nil, Query{Tab: TabAll}, testNow)
	if res.Total != 0 {
		t.Errorf("Total = %v, want 0", res.Total)
	}
	if len(res.Grants) != 0 {
		t.Errorf("page holds %v grants, want 0", len(res.Grants))
	}
	if res.TotalPages != 0 {
		t.Errorf("TotalPages = %v, want 0", res.TotalPages)
	}
}

func TestSelectGrantsTextSearch(t *testing.T) {
	grants := testGrants()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches title", "robotics", []string{"a"}},
		{"matches description", "laptops", []string{"d"}},
		{"matches funding source", "arts council", []string{"b"}},
		{"matches category", "literacy", []string{"c"}},
		{"whitespace only is a no-op", "   ", []string{"c", "a", "d", "b", "e"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SelectGrants(grants, nil, nil, nil, Query{Search: tt.search, Tab: TabAll}, testNow)
			if got := ids(res.Grants); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectGrantsScope(t *testing.T) {
	grants := testGrants()
	bookmarked := []string{"a", "d"}
	folders := []*BookmarkFolder{
		DefaultFolder(),
		{ID: "f1", Name: "Spring Round", GrantIDs: []string{"d"}},
	}

	tests := []struct {
		name     string
		tab      Tab
		folderID string
		want     []string
	}{
		{"all tab ignores bookmarks", TabAll, "", []string{"c", "a", "d", "b", "e"}},
		{"bookmarked default folder", TabBookmarked, DefaultFolderID, []string{"a", "d"}},
		{"bookmarked empty folder id", TabBookmarked, "", []string{"a", "d"}},
		{"specific folder", TabBookmarked, "f1", []string{"d"}},
		{"missing folder yields nothing", TabBookmarked, "nope", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Tab: tt.tab, FolderID: tt.folderID}
			res := SelectGrants(grants, bookmarked, folders, nil, q, testNow)
			if got := ids(res.Grants); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectGrantsStructuredFilters(t *testing.T) {
	grants := testGrants()
	bookmarked := []string{"a", "c"}
	statuses := map[string]ApplicationStatus{"a": StatusApplied}

	amount := func(v float64) *float64 { return &v }
	days := func(n int) *int { return &n }
	status := func(s ApplicationStatus) *ApplicationStatus { return &s }

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"category exact match", Filters{Category: "STEM"}, []string{"a"}},
		{"eligibility substring", Filters{Eligibility: "title i"}, []string{"c"}},
		{"eligibility partial word", Filters{Eligibility: "school"}, []string{"a", "b"}},
		{"min amount inclusive", Filters{MinAmount: amount(25000)}, []string{"d", "b"}},
		{"max amount inclusive", Filters{MaxAmount: amount(5000)}, []string{"c", "a"}},
		{"amount range", Filters{MinAmount: amount(1000), MaxAmount: amount(12000)}, []string{"c", "a", "e"}},
		{"deadline horizon excludes expired and undated", Filters{DeadlineDays: days(10)}, []string{"a", "d"}},
		{"deadline horizon boundary", Filters{DeadlineDays: days(3)}, []string{"a"}},
		{"hide expired keeps today and future only", Filters{HideExpired: true}, []string{"a", "d", "b"}},
		{"bookmarked only", Filters{BookmarkedOnly: true}, []string{"c", "a"}},
		{"urgent only", Filters{UrgentOnly: true}, []string{"a", "d"}},
		{"status filter", Filters{Status: status(StatusApplied)}, []string{"a"}},
		{"status filter resolves default", Filters{Status: status(StatusNotStarted)}, []string{"c", "d", "b", "e"}},
		{"filters AND together", Filters{Category: "STEM", BookmarkedOnly: true, UrgentOnly: true}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Tab: TabAll, Filters: tt.filters}
			res := SelectGrants(grants, bookmarked, nil, statuses, q, testNow)
			if got := ids(res.Grants); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectGrantsUrgentBoundaries(t *testing.T) {
	grants := []*Grant{
		{ID: "week", Title: "Exactly one week", Deadline: deadlineIn(7)},
		{ID: "beyond", Title: "Eight days", Deadline: deadlineIn(8)},
		{ID: "past", Title: "Yesterday", Deadline: deadlineIn(-1)},
		{ID: "today", Title: "Today", Deadline: deadlineIn(0)},
	}

	res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Filters: Filters{UrgentOnly: true}}, testNow)
	if got, want := ids(res.Grants), []string{"week"}; !reflect.DeepEqual(got, want) {
		t.Errorf("urgentOnly ids = %v, want %v", got, want)
	}

	// Yesterday is dropped by hideExpired but visible without it.
	res = SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Filters: Filters{HideExpired: true}}, testNow)
	for _, g := range res.Grants {
		if g.ID == "past" {
			t.Error("hideExpired kept an expired grant")
		}
	}
	res = SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll}, testNow)
	found := false
	for _, g := range res.Grants {
		if g.ID == "past" {
			found = true
		}
	}
	if !found {
		t.Error("expired grant missing when hideExpired is off")
	}
}

func TestSelectGrantsSorting(t *testing.T) {
	grants := testGrants()

	tests := []struct {
		name string
		sort SortOption
		want []string
	}{
		{"deadline asc, undated last", SortDeadlineAsc, []string{"c", "a", "d", "b", "e"}},
		{"deadline desc, undated last", SortDeadlineDesc, []string{"b", "d", "a", "c", "e"}},
		{"amount asc", SortAmountAsc, []string{"a", "c", "e", "d", "b"}},
		{"amount desc", SortAmountDesc, []string{"b", "d", "e", "c", "a"}},
		{"title asc", SortTitleAsc, []string{"a", "d", "b", "c", "e"}},
		{"title desc", SortTitleDesc, []string{"e", "c", "b", "d", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: tt.sort}, testNow)
			if got := ids(res.Grants); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectGrantsSortStability(t *testing.T) {
	// Three grants share an amount; ties must keep catalog order.
	grants := []*Grant{
		{ID: "one", Title: "One", Amount: 500},
		{ID: "two", Title: "Two", Amount: 500},
		{ID: "three", Title: "Three", Amount: 100},
		{ID: "four", Title: "Four", Amount: 500},
	}

	res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortAmountAsc}, testNow)
	want := []string{"three", "one", "two", "four"}
	if got := ids(res.Grants); !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}

	// Sorting twice with the same option yields the same order.
	again := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortAmountAsc}, testNow)
	if !reflect.DeepEqual(ids(res.Grants), ids(again.Grants)) {
		t.Error("second sort changed order")
	}
}

func TestSelectGrantsDeadlineReversal(t *testing.T) {
	// With unique parseable deadlines, desc is asc reversed.
	grants := []*Grant{
		{ID: "g1", Deadline: deadlineIn(5)},
		{ID: "g2", Deadline: deadlineIn(1)},
		{ID: "g3", Deadline: deadlineIn(9)},
	}

	asc := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortDeadlineAsc}, testNow)
	desc := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortDeadlineDesc}, testNow)

	ascIDs := ids(asc.Grants)
	descIDs := ids(desc.Grants)
	for i := range ascIDs {
		if ascIDs[i] != descIDs[len(descIDs)-1-i] {
			t.Fatalf("desc is not asc reversed: asc=%v desc=%v", ascIDs, descIDs)
		}
	}
}

func TestSelectGrantsIdempotent(t *testing.T) {
	grants := testGrants()
	q := Query{
		Search: "grant",
		Tab:    TabAll,
		Sort:   SortAmountDesc,
		Page:   1,
	}

	first := SelectGrants(grants, []string{"a"}, nil, nil, q, testNow)
	second := SelectGrants(grants, []string{"a"}, nil, nil, q, testNow)

	if first.Total != second.Total {
		t.Errorf("totals differ: %v vs %v", first.Total, second.Total)
	}
	if !reflect.DeepEqual(ids(first.Grants), ids(second.Grants)) {
		t.Errorf("result sets differ: %v vs %v", ids(first.Grants), ids(second.Grants))
	}
}

func TestSelectGrantsPagination(t *testing.T) {
	grants := make([]*Grant, 0, 20)
	for i := 0; i < 20; i++ {
		grants = append(grants, &Grant{
			ID:       string(rune('a' + i)),
			Title:    "Grant",
			Deadline: deadlineIn(i + 1),
		})
	}

	tests := []struct {
		name       string
		page       int
		wantLen    int
		wantPages  int
		wantFirst  string
		checkFirst bool
	}{
		{"page 1 full", 1, 9, 3, "a", true},
		{"page 2 full", 2, 9, 3, "j", true},
		{"page 3 partial", 3, 2, 3, "s", true},
		{"page past end empty", 4, 0, 3, "", false},
		{"page zero clamps to 1", 0, 9, 3, "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Page: tt.page}, testNow)
			if len(res.Grants) != tt.wantLen {
				t.Errorf("page length = %v, want %v", len(res.Grants), tt.wantLen)
			}
			if res.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %v, want %v", res.TotalPages, tt.wantPages)
			}
			if res.Total != 20 {
				t.Errorf("Total = %v, want 20", res.Total)
			}
			if tt.checkFirst && res.Grants[0].ID != tt.wantFirst {
				t.Errorf("first id = %v, want %v", res.Grants[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestSelectGrantsConcreteScenario(t *testing.T) {
	a := &Grant{ID: "a", Title: "A", Amount: 1000, Category: "STEM", Deadline: deadlineIn(3)}
	b := &Grant{ID: "b", Title: "B", Amount: 50000, Category: "Arts", Deadline: deadlineIn(40)}
	grants := []*Grant{a, b}

	res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Filters: Filters{Category: "STEM"}}, testNow)
	if got, want := ids(res.Grants), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("category filter ids = %v, want %v", got, want)
	}

	res = SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortAmountDesc}, testNow)
	if got, want := ids(res.Grants), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("amount-desc ids = %v, want %v", got, want)
	}
}

func TestSelectGrantsDoesNotMutateInput(t *testing.T) {
	grants := testGrants()
	original := ids(grants)

	SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortTitleDesc}, testNow)

	if !reflect.DeepEqual(ids(grants), original) {
		t.Errorf("input slice reordered: %v, want %v", ids(grants), original)
	}
}

func TestSelectGrantsMalformedDeadline(t *testing.T) {
	grants := []*Grant{
		{ID: "ok", Deadline: deadlineIn(2)},
		{ID: "bad", Deadline: "whenever"},
	}
	days := 30

	// Date-bounded filters exclude the unparseable grant...
	res := SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Filters: Filters{DeadlineDays: &days}}, testNow)
	if got, want := ids(res.Grants), []string{"ok"}; !reflect.DeepEqual(got, want) {
		t.Errorf("deadlineDays ids = %v, want %v", got, want)
	}
	res = SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Filters: Filters{HideExpired: true}}, testNow)
	if got, want := ids(res.Grants), []string{"ok"}; !reflect.DeepEqual(got, want) {
		t.Errorf("hideExpired ids = %v, want %v", got, want)
	}

	// ...but it stays visible without date filters, sorted last.
	res = SelectGrants(grants, nil, nil, nil, Query{Tab: TabAll, Sort: SortDeadlineAsc}, testNow)
	if got, want := ids(res.Grants), []string{"ok", "bad"}; !reflect.DeepEqual(got, want) {
		t.Errorf("unfiltered ids = %v, want %v", got, want)
	}
}

func TestParseSortOption(t *testing.T) {
	for _, valid := range []string{"deadline-asc", "deadline-desc", "amount-asc", "amount-desc", "title-asc", "title-desc"} {
		if _, ok := ParseSortOption(valid); !ok {
			t.Errorf("ParseSortOption(%q) rejected a valid option", valid)
		}
	}
	if _, ok := ParseSortOption("deadline"); ok {
		t.Error("ParseSortOption accepted an invalid option")
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range AllStatuses {
		if _, ok := ParseStatus(string(valid)); !ok {
			t.Errorf("ParseStatus(%q) rejected a valid status", valid)
		}
	}
	if _, ok := ParseStatus("Pending"); ok {
		t.Error("ParseStatus accepted an invalid status")
	}
	if got := ResolveStatus(nil, "missing"); got != StatusNotStarted {
		t.Errorf("ResolveStatus default = %v, want %v", got, StatusNotStarted)
	}
}
