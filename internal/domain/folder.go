package domain

const (
	// DefaultFolderID is the reserved id of the "All Bookmarks"
	// pseudo-folder. It carries no GrantIDs of its own: its membership
	// is always derived from the global bookmark set. Generated folder
	// ids must never collide with it.
	DefaultFolderID = "default"

	// DefaultFolderName is the display label of the default folder.
	DefaultFolderName = "All Bookmarks"
)

// BookmarkFolder is a user-defined named subset of bookmarked grants.
//
// Invariant: GrantIDs is always a subset of the currently bookmarked
// grant ids. Removing a bookmark removes the id from every folder.
type BookmarkFolder struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	GrantIDs []string `json:"grantIds,omitempty"`
}

// Contains reports whether the folder holds the given grant id.
func (f *BookmarkFolder) Contains(grantID string) bool {
	for _, id := range f.GrantIDs {
		if id == grantID {
			return true
		}
	}
	return false
}

// DefaultFolder returns a fresh "All Bookmarks" pseudo-folder.
func DefaultFolder() *BookmarkFolder {
	return &BookmarkFolder{ID: DefaultFolderID, Name: DefaultFolderName}
}
