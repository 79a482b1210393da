package domain

import (
	"time"
)

// Entry represents a single recorded work session in the domain model.
// The timesheet keeps entries in newest-first order.
type Entry struct {
	Project     string
	In          time.Time
	Out         *time.Time // Using pointer to allow a still-open session
	Description *string    // Optional until clock-out
}

// NewEntry creates a new open Entry for the given project.
func NewEntry(project string, in time.Time, description *string) Entry {
	return Entry{
		Project:     project,
		In:          in,
		Description: description,
	}
}

// IsOpen returns true if the entry is currently clocked in (no out time).
func (e Entry) IsOpen() bool {
	return e.Out == nil
}

// Duration returns the duration of the entry.
// If the entry is still open, it returns the duration up to now.
func (e Entry) Duration() time.Duration {
	if e.Out == nil {
		return time.Since(e.In)
	}
	return e.Out.Sub(e.In)
}

// IsValid checks if the entry satisfies the timesheet invariants.
func (e Entry) IsValid() bool {
	if e.Project == "" {
		return false
	}
	if e.In.IsZero() {
		return false
	}
	if e.Out != nil && !e.Out.After(e.In) {
		return false
	}
	return true
}
