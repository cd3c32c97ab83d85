package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dropspace/dropspace/internal/service"
	"github.com/dropspace/dropspace/internal/validation"
)

// actionResult is the boundary shape for create and upload actions.
type actionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  string `json:"errors,omitempty"`
}

// deleteResult is the boundary shape for delete actions. Message
// carries partial-failure detail; Errors carries validation failures.
type deleteResult struct {
	Message string `json:"message,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

// downloadResult is the boundary shape for the download action.
type downloadResult struct {
	Content string `json:"content,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// actionFailure maps a service error to the result the caller sees.
// Validation and quota failures carry actionable messages; everything
// else degrades to a generic failure.
func actionFailure(err error) actionResult {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return actionResult{Success: false, Errors: vErr.Message}
	}

	switch {
	case errors.Is(err, service.ErrMaxFolderCount):
		return actionResult{Success: false, Message: "Max folder count reached."}
	case errors.Is(err, service.ErrMaxFileCount):
		return actionResult{Success: false, Message: "Max file count reached."}
	case errors.Is(err, service.ErrParentFolderNotFound):
		return actionResult{Success: false, Errors: "Folder does not exist."}
	default:
		return actionResult{Success: false, Message: "An error occurred."}
	}
}
