package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/state"
)

// Store persists the user state slices as JSON-encoded values under
// string keys. Values carry no TTL: this is persistence, not caching.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis-backed state store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// saveJSON marshals v and writes it under key.
func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// loadJSON reads key into dst. The boolean is false when the key is
// absent. A present-but-undecodable value returns an error so callers
// can fall back to the default for that single key.
func (s *Store) loadJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// ─────────────────────────────────────────────────────────────────
// Per-slice accessors
// ─────────────────────────────────────────────────────────────────

func (s *Store) SaveBookmarks(ctx context.Context, ids []string) error {
	return s.saveJSON(ctx, KeyBookmarks, ids)
}

func (s *Store) LoadBookmarks(ctx context.Context) ([]string, bool, error) {
	var ids []string
	found, err := s.loadJSON(ctx, KeyBookmarks, &ids)
	return ids, found, err
}

func (s *Store) SaveStatuses(ctx context.Context, statuses map[string]domain.ApplicationStatus) error {
	return s.saveJSON(ctx, KeyStatuses, statuses)
}

func (s *Store) LoadStatuses(ctx context.Context) (map[string]domain.ApplicationStatus, bool, error) {
	var statuses map[string]domain.ApplicationStatus
	found, err := s.loadJSON(ctx, KeyStatuses, &statuses)
	return statuses, found, err
}

func (s *Store) SaveFolders(ctx context.Context, folders []*domain.BookmarkFolder) error {
	return s.saveJSON(ctx, KeyFolders, folders)
}

func (s *Store) LoadFolders(ctx context.Context) ([]*domain.BookmarkFolder, bool, error) {
	var folders []*domain.BookmarkFolder
	found, err := s.loadJSON(ctx, KeyFolders, &folders)
	return folders, found, err
}

func (s *Store) SavePreferences(ctx context.Context, prefs state.Preferences) error {
	return s.saveJSON(ctx, KeyPreferences, prefs)
}

func (s *Store) LoadPreferences(ctx context.Context) (state.Preferences, bool, error) {
	var prefs state.Preferences
	found, err := s.loadJSON(ctx, KeyPreferences, &prefs)
	return prefs, found, err
}

func (s *Store) SaveSearches(ctx context.Context, searches []*state.SavedSearch) error {
	return s.saveJSON(ctx, KeySearches, searches)
}

func (s *Store) LoadSearches(ctx context.Context) ([]*state.SavedSearch, bool, error) {
	var searches []*state.SavedSearch
	found, err := s.loadJSON(ctx, KeySearches, &searches)
	return searches, found, err
}

func (s *Store) SaveActivity(ctx context.Context, activity []state.Activity) error {
	return s.saveJSON(ctx, KeyActivity, activity)
}

func (s *Store) LoadActivity(ctx context.Context) ([]state.Activity, bool, error) {
	var activity []state.Activity
	found, err := s.loadJSON(ctx, KeyActivity, &activity)
	return activity, found, err
}
