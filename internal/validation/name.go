package validation

import (
	"regexp"
	"strings"
)

var folderNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

// ValidateFolderName validates a folder name before a root or nested
// folder is created. The name is trimmed before checking.
func ValidateFolderName(name string) error {
	trimmed := strings.TrimSpace(name)

	if len(trimmed) < 2 {
		return &Error{Message: "Name must be at least 2 characters."}
	}

	if len(trimmed) > 64 {
		return &Error{Message: "Name must be at most 64 characters."}
	}

	if !folderNamePattern.MatchString(trimmed) {
		return &Error{Message: "Name may only contain letters, numbers, hyphens and underscores."}
	}

	return nil
}
