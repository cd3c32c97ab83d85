package validation

import (
	"strings"
	"testing"
)

func TestValidateFolderName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Documents", false},
		{"with spaces", "My Tax Returns", false},
		{"with hyphen and underscore", "q1-2024_final", false},
		{"minimum length", "ab", false},
		{"maximum length", strings.Repeat("a", 64), false},
		{"trimmed before checking", "  Projects  ", false},
		{"too short", "a", true},
		{"too long", strings.Repeat("a", 65), true},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"slash", "a/b", true},
		{"dot", "a.b", true},
		{"unicode", "résumé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFolderName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFolderName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
