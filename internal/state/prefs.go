package state

import "github.com/grantboard/grantboard/internal/domain"

// ViewMode selects the presentation shape of the result list.
type ViewMode string

const (
	ViewGrid     ViewMode = "grid"
	ViewList     ViewMode = "list"
	ViewCalendar ViewMode = "calendar"
	ViewKanban   ViewMode = "kanban"
	ViewMap      ViewMode = "map"
)

func validViewMode(v ViewMode) bool {
	switch v {
	case ViewGrid, ViewList, ViewCalendar, ViewKanban, ViewMap:
		return true
	}
	return false
}

// ThemePreference holds the cosmetic theme knobs persisted for the UI.
// The server only stores and echoes them.
type ThemePreference struct {
	PrimaryColor string `json:"primaryColor"`
	BorderRadius string `json:"borderRadius"`
	Animation    string `json:"animation"`
}

// DashboardWidget is one configurable dashboard panel.
type DashboardWidget struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
}

// Preferences groups every persisted user preference. Each field maps
// to one storage key; absence of a key yields the default below.
type Preferences struct {
	NotificationsEnabled bool              `json:"notificationsEnabled"`
	HighContrast         bool              `json:"highContrast"`
	ViewMode             ViewMode          `json:"viewMode"`
	SortOption           domain.SortOption `json:"sortOption"`
	CardSize             string            `json:"cardSize"`
	Theme                ThemePreference   `json:"theme"`
	Widgets              []DashboardWidget `json:"widgets"`
}

// DefaultPreferences mirrors the defaults a fresh session starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		NotificationsEnabled: true,
		HighContrast:         false,
		ViewMode:             ViewGrid,
		SortOption:           domain.DefaultSort,
		CardSize:             "normal",
		Theme: ThemePreference{
			PrimaryColor: "purple",
			BorderRadius: "medium",
			Animation:    "medium",
		},
		Widgets: []DashboardWidget{
			{ID: "upcoming", Type: "upcoming-deadlines", Title: "Upcoming Deadlines", Enabled: true},
			{ID: "stats", Type: "statistics", Title: "Grant Statistics", Enabled: true},
			{ID: "recent", Type: "recent-activity", Title: "Recent Activity", Enabled: true},
		},
	}
}

// normalized coerces invalid enum-like fields back to their defaults
// so malformed persisted values degrade instead of propagating.
func (p Preferences) normalized() Preferences {
	defaults := DefaultPreferences()
	if !validViewMode(p.ViewMode) {
		p.ViewMode = defaults.ViewMode
	}
	if _, ok := domain.ParseSortOption(string(p.SortOption)); !ok {
		p.SortOption = defaults.SortOption
	}
	switch p.CardSize {
	case "compact", "normal", "detailed":
	default:
		p.CardSize = defaults.CardSize
	}
	if p.Widgets == nil {
		p.Widgets = defaults.Widgets
	}
	return p
}

func (p Preferences) clone() Preferences {
	widgets := make([]DashboardWidget, len(p.Widgets))
	copy(widgets, p.Widgets)
	p.Widgets = widgets
	return p
}
