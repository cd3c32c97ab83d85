package model

import (
	"time"
)

// File is the metadata row for an uploaded file. Pathname is the
// containing folder's pathname, not the file's own. S3Key is the only
// linkage to the object-store payload.
type File struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	MimeType  string    `db:"mime_type" json:"mimeType"`
	Size      string    `db:"size" json:"size"` // String-encoded byte count
	Pathname  string    `db:"pathname" json:"pathname"`
	S3Key     string    `db:"s3_key" json:"s3Key"`
	S3Bucket  string    `db:"s3_bucket" json:"s3Bucket"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
