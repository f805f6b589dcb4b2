package handlers

import (
	"context"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
)

// Persistence is best effort: memory is authoritative and a write
// failure only degrades durability, never the response.

func persistBookmarks(ctx context.Context, d deps.Deps) {
	if d.Store == nil {
		return
	}
	if err := d.Store.SaveBookmarks(ctx, d.State.BookmarkedIDs()); err != nil {
		d.Logger.Warn("failed to persist bookmarks", logger.Error(err))
	}
}

func persistStatuses(ctx context.Context, d deps.Deps) {
	if d.Store == nil {
		return
	}
	if err := d.Store.SaveStatuses(ctx, d.State.Statuses()); err != nil {
		d.Logger.Warn("failed to persist statuses", logger.Error(err))
	}
}

func persistFolders(ctx context.Context, d deps.Deps) {
	if d.Store == nil {
		return
	}
	if err := d.Store.SaveFolders(ctx, d.State.Folders()); err != nil {
		d.Logger.Warn("failed to persist folders", logger.Error(err))
	}
}

func persistPreferences(ctx context.Context, d deps.Deps) {
	if d.Store == nil {
		return
	}
	if err := d.Store.SavePreferences(ctx, d.State.GetPreferences()); err != nil {
		d.Logger.Warn("failed to persist preferences", logger.Error(err))
	}
}

func persistSearches(ctx context.Context, d deps.Deps) {
	if d.Store == nil {
		return
	}
	if err := d.Store.SaveSearches(ctx, d.State.SavedSearches()); err != nil {
		d.Logger.Warn("failed to persist saved searches", logger.Error(err))
	}
}

func persistActivity(ctx context.Context, d deps.Deps) {
	if d.Store == nil {
		return
	}
	if err := d.Store.SaveActivity(ctx, d.State.RecentActivity()); err != nil {
		d.Logger.Warn("failed to persist activity log", logger.Error(err))
	}
}
