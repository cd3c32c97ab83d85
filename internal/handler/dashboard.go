package handler

import (
	"log/slog"
	"net/http"

	"github.com/dropspace/dropspace/internal/ctxkeys"
	"github.com/dropspace/dropspace/internal/model"
	"github.com/dropspace/dropspace/internal/service"
)

type DashboardHandler struct {
	folderService *service.FolderService
	fileService   *service.FileService
	userService   *service.UserService
}

func NewDashboardHandler(
	folderService *service.FolderService,
	fileService *service.FileService,
	userService *service.UserService,
) *DashboardHandler {
	return &DashboardHandler{
		folderService: folderService,
		fileService:   fileService,
		userService:   userService,
	}
}

type overviewResponse struct {
	RootFolders []*model.RootFolder `json:"rootFolders"`
	Folders     []*model.Folder     `json:"folders"`
	Files       []*model.File       `json:"files"`
	FolderCount int                 `json:"folderCount"`
	FileCount   int                 `json:"fileCount"`
}

// Overview returns the authenticated user's complete folder tree,
// files and counters in one response.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	rootFolders, err := h.folderService.RootFolders(user.ID)
	if err != nil {
		slog.Error("failed to load root folders", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load folders", http.StatusInternalServerError)
		return
	}

	folders, err := h.folderService.Folders(user.ID)
	if err != nil {
		slog.Error("failed to load folders", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load folders", http.StatusInternalServerError)
		return
	}

	files, err := h.fileService.Files(user.ID)
	if err != nil {
		slog.Error("failed to load files", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load files", http.StatusInternalServerError)
		return
	}

	counts, err := h.userService.Counts(user.ID)
	if err != nil {
		slog.Error("failed to load counts", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load counts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		RootFolders: rootFolders,
		Folders:     folders,
		Files:       files,
		FolderCount: counts.FolderCount,
		FileCount:   counts.FileCount,
	})
}
