package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dropspace/dropspace/internal/service"
	"github.com/dropspace/dropspace/internal/validation"
)

func TestActionFailure(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantErrors  string
	}{
		{
			name:       "validation error",
			err:        &validation.Error{Message: "Name must be at least 2 characters."},
			wantErrors: "Name must be at least 2 characters.",
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("create failed: %w", &validation.Error{Message: "Invalid file extension: .png."}),
			wantErrors: "Invalid file extension: .png.",
		},
		{
			name:        "folder quota",
			err:         service.ErrMaxFolderCount,
			wantMessage: "Max folder count reached.",
		},
		{
			name:        "file quota",
			err:         service.ErrMaxFileCount,
			wantMessage: "Max file count reached.",
		},
		{
			name:       "missing parent",
			err:        service.ErrParentFolderNotFound,
			wantErrors: "Folder does not exist.",
		},
		{
			name:        "infrastructure error stays generic",
			err:         errors.New("dial tcp: connection refused"),
			wantMessage: "An error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := actionFailure(tt.err)

			if result.Success {
				t.Error("Success = true, want false")
			}
			if result.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", result.Message, tt.wantMessage)
			}
			if result.Errors != tt.wantErrors {
				t.Errorf("Errors = %q, want %q", result.Errors, tt.wantErrors)
			}
		})
	}
}
