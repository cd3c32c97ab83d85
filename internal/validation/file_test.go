package validation

import "testing"

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mimeType string
		size     int64
		wantErr  bool
	}{
		{"plain text", "notes.txt", "text/plain", 100, false},
		{"pdf", "report.pdf", "application/pdf", 100, false},
		{"uppercase extension", "NOTES.TXT", "text/plain", 100, false},
		{"at size limit", "big.pdf", "application/pdf", MaxUploadSize, false},
		{"over size limit", "big.pdf", "application/pdf", MaxUploadSize + 1, true},
		{"png type", "photo.png", "image/png", 100, true},
		{"html type", "page.html", "text/html", 100, true},
		{"allowed type wrong extension", "photo.png", "text/plain", 100, true},
		{"allowed extension wrong type", "notes.txt", "image/png", 100, true},
		{"no extension", "notes", "text/plain", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.mimeType, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUpload(%q, %q, %d) error = %v, wantErr %v",
					tt.filename, tt.mimeType, tt.size, err, tt.wantErr)
			}
		})
	}
}
