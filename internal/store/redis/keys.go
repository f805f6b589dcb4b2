package redis

// Persisted key-value entries. One key per state slice with a JSON
// value: read once at startup, written on every change, absence means
// the in-memory default.
const (
	// KeyPrefix namespaces every grantboard key.
	KeyPrefix = "grantboard:state:"

	KeyBookmarks   = KeyPrefix + "bookmarks"
	KeyStatuses    = KeyPrefix + "statuses"
	KeyFolders     = KeyPrefix + "folders"
	KeyPreferences = KeyPrefix + "preferences"
	KeySearches    = KeyPrefix + "searches"
	KeyActivity    = KeyPrefix + "activity"
)

// AllKeys lists every persisted state key.
func AllKeys() []string {
	return []string{
		KeyBookmarks,
		KeyStatuses,
		KeyFolders,
		KeyPreferences,
		KeySearches,
		KeyActivity,
	}
}
