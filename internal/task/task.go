// Package task owns the task collection and the PalPoints balance. Tasks
// move one way: pending to completed, or pending to failed when the
// expiration sweep finds them past due time plus grace. Points are awarded
// exactly once, at the completed transition.
package task

import (
	"time"

	"github.com/google/uuid"
)

// Status is a task's lifecycle state. Completed and failed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

const (
	// DefaultPoints is the reward when a spec leaves points unset.
	DefaultPoints = 10
	// DefaultGraceMinutes is the slack after the due instant before a
	// pending task fails.
	DefaultGraceMinutes = 30
)

// Task is a single time-boxed item. Date carries the calendar day and
// DueTime the time-of-day; DueInstant combines them.
type Task struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Date         time.Time
	DueTime      time.Time
	Status       Status
	Points       int
	GraceMinutes int
	CreatedAt    time.Time
}

// DueInstant combines the calendar day of Date with the clock time of
// DueTime into one absolute timestamp in Date's location.
func (t Task) DueInstant() time.Time {
	y, m, d := t.Date.Date()
	hh, mm, _ := t.DueTime.Clock()
	return time.Date(y, m, d, hh, mm, 0, 0, t.Date.Location())
}

// ExpiryInstant is the due instant plus the grace period.
func (t Task) ExpiryInstant() time.Time {
	return t.DueInstant().Add(time.Duration(t.GraceMinutes) * time.Minute)
}

// IsExpired reports whether a still-pending task is past its expiry
// instant. Terminal tasks are never expired.
func (t Task) IsExpired(now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}
	return now.After(t.ExpiryInstant())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
