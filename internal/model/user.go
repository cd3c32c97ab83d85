package model

import (
	"time"
)

// User mirrors an identity from the hosted auth provider.
// Rows are created on first successful callback and never mutated.
type User struct {
	ID        string    `db:"id" json:"id"` // External auth subject
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
