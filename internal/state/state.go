package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grantboard/grantboard/internal/domain"
)

// ActivityLimit caps the recent-activity log. Older entries fall off.
const ActivityLimit = 20

var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrDefaultFolder  = errors.New("default folder is reserved")
	ErrNotBookmarked  = errors.New("grant is not bookmarked")
	ErrSearchNotFound = errors.New("saved search not found")
	ErrEmptyName      = errors.New("name must not be empty")
)

// Activity is one entry of the recent-activity log.
type Activity struct {
	Action    string    `json:"action"`
	GrantID   string    `json:"grantId"`
	Timestamp time.Time `json:"timestamp"`
}

// SavedSearch is a named snapshot of a search query and its filters.
type SavedSearch struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Query     string         `json:"query"`
	Filters   domain.Filters `json:"filters"`
	CreatedAt time.Time      `json:"createdAt"`
}

// State is the single explicit application-state struct: every user
// state slice lives here, guarded by one lock, with a recorded
// lifecycle of load-from-storage, mutate, persist-on-change. The
// in-memory copy is authoritative; persistence is best effort.
type State struct {
	mu        sync.RWMutex
	bookmarks []string // insertion-ordered bookmark set
	statuses  map[string]domain.ApplicationStatus
	folders   []*domain.BookmarkFolder
	prefs     Preferences
	searches  []*SavedSearch
	activity  []Activity
	timeNow   func() time.Time
}

// New creates a State with defaults: no bookmarks, the reserved
// default folder, and default preferences.
func New() *State {
	return &State{
		statuses: make(map[string]domain.ApplicationStatus),
		folders:  []*domain.BookmarkFolder{domain.DefaultFolder()},
		prefs:    DefaultPreferences(),
		timeNow:  time.Now,
	}
}

// SetTimeNow overrides the clock used for activity timestamps and id
// metadata. Tests supply fixed reference dates here.
func (s *State) SetTimeNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeNow = now
}

// ─────────────────────────────────────────────────────────────────
// Bookmarks
// ─────────────────────────────────────────────────────────────────

// BookmarkedIDs returns a copy of the bookmark set in insertion order.
func (s *State) BookmarkedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// IsBookmarked reports membership in the global bookmark set.
func (s *State) IsBookmarked(grantID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfBookmark(grantID) >= 0
}

// ToggleBookmark flips bookmark membership for a grant and returns the
// new membership. Removing a bookmark also removes the id from every
// folder, preserving the subset invariant.
func (s *State) ToggleBookmark(grantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOfBookmark(grantID); i >= 0 {
		s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
		for _, f := range s.folders {
			f.GrantIDs = removeID(f.GrantIDs, grantID)
		}
		s.recordActivityLocked("Removed bookmark", grantID)
		return false
	}

	s.bookmarks = append(s.bookmarks, grantID)
	s.recordActivityLocked("Added bookmark", grantID)
	return true
}

func (s *State) indexOfBookmark(grantID string) int {
	for i, id := range s.bookmarks {
		if id == grantID {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────
// Application statuses
// ─────────────────────────────────────────────────────────────────

// Statuses returns a copy of the status map.
func (s *State) Statuses() map[string]domain.ApplicationStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.ApplicationStatus, len(s.statuses))
	for id, status := range s.statuses {
		out[id] = status
	}
	return out
}

// SetStatus upserts the application status for a grant. The grant does
// not have to be bookmarked.
func (s *State) SetStatus(grantID string, status domain.ApplicationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[grantID] = status
	s.recordActivityLocked(fmt.Sprintf("Updated status to %s", status), grantID)
}

// ─────────────────────────────────────────────────────────────────
// Folders
// ─────────────────────────────────────────────────────────────────

// Folders returns a deep copy of the folder list, default folder first.
func (s *State) Folders() []*domain.BookmarkFolder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.BookmarkFolder, 0, len(s.folders))
	for _, f := range s.folders {
		ids := make([]string, len(f.GrantIDs))
		copy(ids, f.GrantIDs)
		out = append(out, &domain.BookmarkFolder{ID: f.ID, Name: f.Name, GrantIDs: ids})
	}
	return out
}

// CreateFolder adds a new named folder with a generated unique id.
func (s *State) CreateFolder(name string) (*domain.BookmarkFolder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("folder: %w", ErrEmptyName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder := &domain.BookmarkFolder{
		ID:       uuid.NewString(),
		Name:     name,
		GrantIDs: []string{},
	}
	s.folders = append(s.folders, folder)
	return folder, nil
}

// DeleteFolder removes a folder. The reserved default folder cannot be
// deleted.
func (s *State) DeleteFolder(folderID string) error {
	if folderID == domain.DefaultFolderID {
		return fmt.Errorf("cannot delete: %w", ErrDefaultFolder)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.folders {
		if f.ID == folderID {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
}

// AddToFolder adds a bookmarked grant to a folder. Adding to the
// default folder is rejected: its membership is derived, not stored.
func (s *State) AddToFolder(grantID, folderID string) error {
	if folderID == domain.DefaultFolderID {
		return fmt.Errorf("membership is derived from bookmarks: %w", ErrDefaultFolder)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfBookmark(grantID) < 0 {
		return fmt.Errorf("grant %s: %w", grantID, ErrNotBookmarked)
	}

	for _, f := range s.folders {
		if f.ID != folderID {
			continue
		}
		if f.Contains(grantID) {
			return nil
		}
		f.GrantIDs = append(f.GrantIDs, grantID)
		s.recordActivityLocked(fmt.Sprintf("Added to folder %q", f.Name), grantID)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
}

// RemoveFromFolder removes a grant from one folder without touching
// the global bookmark set.
func (s *State) RemoveFromFolder(grantID, folderID string) error {
	if folderID == domain.DefaultFolderID {
		return fmt.Errorf("membership is derived from bookmarks: %w", ErrDefaultFolder)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.folders {
		if f.ID == folderID {
			f.GrantIDs = removeID(f.GrantIDs, grantID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
}

// ─────────────────────────────────────────────────────────────────
// Preferences
// ─────────────────────────────────────────────────────────────────

// GetPreferences returns a copy of the current preferences.
func (s *State) GetPreferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.clone()
}

// SetPreferences replaces the preferences wholesale, normalizing
// invalid enum-like fields back to their defaults.
func (s *State) SetPreferences(p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p.normalized()
}

// ─────────────────────────────────────────────────────────────────
// Saved searches
// ─────────────────────────────────────────────────────────────────

// SavedSearches returns a copy of the saved-search list.
func (s *State) SavedSearches() []*SavedSearch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SavedSearch, len(s.searches))
	for i, search := range s.searches {
		c := *search
		out[i] = &c
	}
	return out
}

// SaveSearch records the current query under a name.
func (s *State) SaveSearch(name, query string, filters domain.Filters) (*SavedSearch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("search: %w", ErrEmptyName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	search := &SavedSearch{
		ID:        uuid.NewString(),
		Name:      name,
		Query:     query,
		Filters:   filters,
		CreatedAt: s.timeNow(),
	}
	s.searches = append(s.searches, search)
	return search, nil
}

// DeleteSearch removes a saved search by id.
func (s *State) DeleteSearch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, search := range s.searches {
		if search.ID == id {
			s.searches = append(s.searches[:i], s.searches[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSearchNotFound, id)
}

// ─────────────────────────────────────────────────────────────────
// Recent activity
// ─────────────────────────────────────────────────────────────────

// RecentActivity returns a copy of the activity log, newest first.
func (s *State) RecentActivity() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Activity, len(s.activity))
	copy(out, s.activity)
	return out
}

func (s *State) recordActivityLocked(action, grantID string) {
	entry := Activity{Action: action, GrantID: grantID, Timestamp: s.timeNow()}
	s.activity = append([]Activity{entry}, s.activity...)
	if len(s.activity) > ActivityLimit {
		s.activity = s.activity[:ActivityLimit]
	}
}

// ─────────────────────────────────────────────────────────────────
// Rehydration (startup only)
// ─────────────────────────────────────────────────────────────────

// RestoreBookmarks replaces the bookmark set from storage.
func (s *State) RestoreBookmarks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = append([]string(nil), ids...)
}

// RestoreStatuses replaces the status map from storage. Unknown status
// values are dropped rather than kept as unresolvable entries.
func (s *State) RestoreStatuses(statuses map[string]domain.ApplicationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = make(map[string]domain.ApplicationStatus, len(statuses))
	for id, status := range statuses {
		if _, ok := domain.ParseStatus(string(status)); ok {
			s.statuses[id] = status
		}
	}
}

// RestoreFolders replaces the folder list from storage, guaranteeing
// the default folder is present and first.
func (s *State) RestoreFolders(folders []*domain.BookmarkFolder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := []*domain.BookmarkFolder{domain.DefaultFolder()}
	for _, f := range folders {
		if f == nil || f.ID == domain.DefaultFolderID {
			continue
		}
		restored = append(restored, f)
	}
	s.folders = restored

	// Re-establish the subset invariant in case storage drifted.
	for _, f := range s.folders {
		kept := f.GrantIDs[:0]
		for _, id := range f.GrantIDs {
			if s.indexOfBookmark(id) >= 0 {
				kept = append(kept, id)
			}
		}
		f.GrantIDs = kept
	}
}

// RestorePreferences replaces the preferences from storage.
func (s *State) RestorePreferences(p Preferences) {
	s.SetPreferences(p)
}

// RestoreSearches replaces the saved-search list from storage.
func (s *State) RestoreSearches(searches []*SavedSearch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append([]*SavedSearch(nil), searches...)
}

// RestoreActivity replaces the activity log from storage, re-applying
// the cap.
func (s *State) RestoreActivity(activity []Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(activity) > ActivityLimit {
		activity = activity[:ActivityLimit]
	}
	s.activity = append([]Activity(nil), activity...)
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
