package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/state"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

type folderMembershipRequest struct {
	GrantID string `json:"grantId"`
}

// ListFolders returns every folder, default folder first.
func ListFolders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.State.Folders())
	}
}

// CreateFolder creates a named folder with a generated id.
func CreateFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFolderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		folder, err := d.State.CreateFolder(req.Name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		d.Logger.Info("folder created",
			logger.String("folder_id", folder.ID),
			logger.String("name", folder.Name))

		persistFolders(r.Context(), d)
		writeJSON(w, http.StatusCreated, folder)
	}
}

// DeleteFolder removes a folder. The default folder is protected.
func DeleteFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.State.DeleteFolder(id); err != nil {
			writeError(w, folderErrorStatus(err), err.Error())
			return
		}
		d.Logger.Info("folder deleted", logger.String("folder_id", id))

		persistFolders(r.Context(), d)
		w.WriteHeader(http.StatusNoContent)
	}
}

// AddToFolder adds a bookmarked grant to a folder.
func AddToFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderID := chi.URLParam(r, "id")

		var req folderMembershipRequest
		if err := decodeJSON(r, &req); err != nil || req.GrantID == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := d.State.AddToFolder(req.GrantID, folderID); err != nil {
			writeError(w, folderErrorStatus(err), err.Error())
			return
		}

		ctx := r.Context()
		persistFolders(ctx, d)
		persistActivity(ctx, d)
		w.WriteHeader(http.StatusNoContent)
	}
}

// RemoveFromFolder removes a grant from one folder, leaving the global
// bookmark untouched.
func RemoveFromFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderID := chi.URLParam(r, "id")
		grantID := chi.URLParam(r, "grantId")

		if err := d.State.RemoveFromFolder(grantID, folderID); err != nil {
			writeError(w, folderErrorStatus(err), err.Error())
			return
		}

		persistFolders(r.Context(), d)
		w.WriteHeader(http.StatusNoContent)
	}
}

func folderErrorStatus(err error) int {
	switch {
	case errors.Is(err, state.ErrFolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, state.ErrDefaultFolder), errors.Is(err, state.ErrNotBookmarked):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
