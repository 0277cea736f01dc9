package contact

import (
	"errors"
	"strings"
)

var (
	// ErrPersist wraps failures to store the submission row.
	ErrPersist = errors.New("failed to store submission")
	// ErrNotify wraps failures to send the notification email.
	ErrNotify = errors.New("failed to send notification")
)

// ValidationError lists required fields that were empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
