package model

import "fmt"

// Status is the shared lifecycle value for checklists and items.
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusPending    Status = "Pending"
	StatusCompleted  Status = "Completed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusPending, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts raw input into a Status. Values outside the enum are
// rejected, never coerced.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}
