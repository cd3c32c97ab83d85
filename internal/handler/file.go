package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dropspace/dropspace/internal/ctxkeys"
	"github.com/dropspace/dropspace/internal/repository"
	"github.com/dropspace/dropspace/internal/service"
	"github.com/dropspace/dropspace/internal/storage"
	"github.com/dropspace/dropspace/internal/validation"
)

type FileHandler struct {
	fileService *service.FileService
}

func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// Upload stores a file in the folder addressed by the pathname form
// field.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	// Allow some slack over the file limit for multipart framing
	err := r.ParseMultipartForm(validation.MaxUploadSize + (64 << 10))
	if err != nil {
		writeJSON(w, http.StatusOK, actionResult{Success: false, Errors: "Invalid upload request."})
		return
	}

	pathname := r.FormValue("pathname")

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusOK, actionResult{Success: false, Errors: "File is required."})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read upload", "error", err, "user_id", user.ID)
		writeJSON(w, http.StatusOK, actionResult{Success: false, Message: "An error occurred."})
		return
	}

	mimeType := header.Header.Get("Content-Type")

	_, err = h.fileService.Upload(r.Context(), user.ID, pathname, header.Filename, mimeType, data)
	if err != nil {
		result := actionFailure(err)
		if result.Message == "An error occurred." {
			slog.Error("failed to upload file", "error", err, "user_id", user.ID, "pathname", pathname)
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	writeJSON(w, http.StatusOK, actionResult{
		Success: true,
		Message: "Your file has been uploaded!",
	})
}

// Delete removes a single file by object key.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	key := r.FormValue("key")
	if key == "" {
		writeJSON(w, http.StatusOK, deleteResult{Errors: "File key is required."})
		return
	}

	err := h.fileService.Delete(r.Context(), user.ID, key)
	if err != nil {
		slog.Error("failed to delete file", "error", err, "user_id", user.ID, "key", key)
		writeJSON(w, http.StatusOK, deleteResult{Errors: "An error occurred."})
		return
	}

	writeJSON(w, http.StatusOK, deleteResult{})
}

// Download returns a file's content by object key.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	key := r.FormValue("key")
	if key == "" {
		writeJSON(w, http.StatusOK, downloadResult{Errors: "File key is required."})
		return
	}

	data, err := h.fileService.Download(r.Context(), user.ID, key)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) || errors.Is(err, storage.ErrObjectNotFound) {
			writeJSON(w, http.StatusOK, downloadResult{Errors: "File not found."})
			return
		}
		slog.Error("failed to download file", "error", err, "user_id", user.ID, "key", key)
		writeJSON(w, http.StatusOK, downloadResult{Errors: "An error occurred."})
		return
	}

	writeJSON(w, http.StatusOK, downloadResult{Content: string(data)})
}
