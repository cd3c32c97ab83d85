// Package validation holds the input rules enforced before any side
// effect is attempted. Failures are reported as *Error so callers can
// distinguish them from infrastructure errors.
package validation

// Error is a human-readable input validation failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
