package model

import (
	"time"
)

// Folder is a nested folder. Pathname is the full slash-delimited path
// from "/folders/<root>" down to this folder and is the sole linkage
// used for traversal; Parent records the parent's name token only.
type Folder struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Parent    string    `db:"parent" json:"parent"`
	Pathname  string    `db:"pathname" json:"pathname"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
