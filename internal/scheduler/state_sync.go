package scheduler

import (
	"context"

	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/state"
	redisstore "github.com/grantboard/grantboard/internal/store/redis"
)

// StateSyncer restores persisted user state from Redis into memory on startup
type StateSyncer struct {
	store  *redisstore.Store
	state  *state.State
	logger logger.Logger
}

// NewStateSyncer creates a new state syncer
func NewStateSyncer(
	store *redisstore.Store,
	st *state.State,
	log logger.Logger,
) *StateSyncer {
	return &StateSyncer{
		store:  store,
		state:  st,
		logger: log,
	}
}

// Sync loads every persisted state slice and restores it into memory.
// Each slice fails independently: an absent or undecodable key leaves
// that slice at its default instead of aborting the whole restore.
func (ss *StateSyncer) Sync(ctx context.Context) error {
	ss.logger.Info("restoring user state from redis")

	restored := 0

	if ids, found, err := ss.store.LoadBookmarks(ctx); err != nil {
		ss.logger.Warn("failed to restore bookmarks, using defaults",
			logger.Error(err))
	} else if found {
		ss.state.RestoreBookmarks(ids)
		restored++
	}

	if statuses, found, err := ss.store.LoadStatuses(ctx); err != nil {
		ss.logger.Warn("failed to restore application statuses, using defaults",
			logger.Error(err))
	} else if found {
		ss.state.RestoreStatuses(statuses)
		restored++
	}

	if folders, found, err := ss.store.LoadFolders(ctx); err != nil {
		ss.logger.Warn("failed to restore folders, using defaults",
			logger.Error(err))
	} else if found {
		ss.state.RestoreFolders(folders)
		restored++
	}

	if prefs, found, err := ss.store.LoadPreferences(ctx); err != nil {
		ss.logger.Warn("failed to restore preferences, using defaults",
			logger.Error(err))
	} else if found {
		ss.state.RestorePreferences(prefs)
		restored++
	}

	if searches, found, err := ss.store.LoadSearches(ctx); err != nil {
		ss.logger.Warn("failed to restore saved searches, using defaults",
			logger.Error(err))
	} else if found {
		ss.state.RestoreSearches(searches)
		restored++
	}

	if activity, found, err := ss.store.LoadActivity(ctx); err != nil {
		ss.logger.Warn("failed to restore activity log, using defaults",
			logger.Error(err))
	} else if found {
		ss.state.RestoreActivity(activity)
		restored++
	}

	ss.logger.Info("user state restored from redis",
		logger.Int("slices", restored))

	return nil
}
