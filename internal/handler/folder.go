package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dropspace/dropspace/internal/ctxkeys"
	"github.com/dropspace/dropspace/internal/service"
)

type FolderHandler struct {
	folderService *service.FolderService
}

func NewFolderHandler(folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
	}
}

// CreateRoot creates a top-level folder for the authenticated user.
func (h *FolderHandler) CreateRoot(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	name := r.FormValue("name")

	_, err := h.folderService.CreateRoot(user.ID, name)
	if err != nil {
		result := actionFailure(err)
		if result.Message == "An error occurred." {
			slog.Error("failed to create root folder", "error", err, "user_id", user.ID)
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	writeJSON(w, http.StatusOK, actionResult{
		Success: true,
		Message: "Your folder has been created!",
	})
}

// Create creates a folder nested under an existing folder.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	name := r.FormValue("name")
	pathname := r.FormValue("pathname")

	if pathname == "" || !strings.HasPrefix(pathname, service.RootPrefix) {
		writeJSON(w, http.StatusOK, actionResult{Success: false, Errors: "Invalid parent pathname."})
		return
	}

	_, err := h.folderService.Create(user.ID, pathname, name)
	if err != nil {
		result := actionFailure(err)
		if result.Message == "An error occurred." {
			slog.Error("failed to create folder", "error", err, "user_id", user.ID, "pathname", pathname)
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	writeJSON(w, http.StatusOK, actionResult{
		Success: true,
		Message: "Your folder has been created!",
	})
}

// Delete removes a folder subtree together with its files and their
// object-store payloads.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	id := r.FormValue("id")
	pathname := r.FormValue("pathname")

	if id == "" || pathname == "" {
		writeJSON(w, http.StatusOK, deleteResult{Errors: "Folder id and pathname are required."})
		return
	}

	result, err := h.folderService.Delete(r.Context(), user.ID, id, pathname)
	if err != nil {
		slog.Error("failed to delete folder", "error", err, "user_id", user.ID, "pathname", pathname)
		writeJSON(w, http.StatusOK, deleteResult{Errors: "An error occurred."})
		return
	}

	if result.Partial() {
		writeJSON(w, http.StatusOK, deleteResult{
			Message: "Folder deleted, but some objects could not be confirmed removed from storage.",
		})
		return
	}

	writeJSON(w, http.StatusOK, deleteResult{})
}
