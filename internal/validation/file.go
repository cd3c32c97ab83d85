package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the per-file upload limit: 200KB.
const MaxUploadSize = 200 << 10

var (
	allowedUploadTypes = map[string]bool{
		"text/plain":      true,
		"application/pdf": true,
	}

	allowedUploadExtensions = map[string]bool{
		".txt": true,
		".pdf": true,
	}
)

// ValidateUpload checks an upload's declared type, extension and size.
// Only plain-text and PDF files are accepted.
func ValidateUpload(filename, mimeType string, size int64) error {
	if !allowedUploadTypes[mimeType] {
		return &Error{Message: "Only TXT and PDF files are allowed."}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExtensions[ext] {
		return &Error{Message: fmt.Sprintf("Invalid file extension: %s.", ext)}
	}

	if size > MaxUploadSize {
		return &Error{Message: fmt.Sprintf("File size must be less than %dKB.", MaxUploadSize>>10)}
	}

	return nil
}
