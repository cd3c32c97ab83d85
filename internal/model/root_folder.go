package model

import (
	"time"
)

// RootFolder is a top-level folder. Its pathname always has the
// form "/folders/<name>" and is unique per (user, name).
type RootFolder struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Pathname  string    `db:"pathname" json:"pathname"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
