// Package notify defines the reminder-scheduling collaborator the task
// store drives. The core only tells the scheduler when a task is added and
// when its reminders should be dropped; it never depends on delivery.
package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead selects how far ahead of the due instant a reminder fires.
type Lead string

const (
	LeadDayBefore  Lead = "day-before"
	LeadDayOf      Lead = "day-of"
	LeadHourBefore Lead = "hour-before"
	LeadQuarter    Lead = "15m-before"
	LeadNone       Lead = "none"
)

// DefaultLead matches the original behavior of reminding 15 minutes before
// the due instant.
const DefaultLead = LeadQuarter

func (l Lead) IsValid() bool {
	switch l {
	case LeadDayBefore, LeadDayOf, LeadHourBefore, LeadQuarter, LeadNone:
		return true
	default:
		return false
	}
}

// ParseLead parses user input to a Lead.
func ParseLead(input string) (Lead, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	l := Lead(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid notification lead: %q", input)
	}
	return l, nil
}

// FireAt returns the instant a reminder with this lead fires for the given
// due instant. ok is false for LeadNone.
func (l Lead) FireAt(due time.Time) (at time.Time, ok bool) {
	switch l {
	case LeadDayBefore:
		return due.AddDate(0, 0, -1), true
	case LeadDayOf:
		// 09:00 on the due day.
		y, m, d := due.Date()
		return time.Date(y, m, d, 9, 0, 0, 0, due.Location()), true
	case LeadHourBefore:
		return due.Add(-time.Hour), true
	case LeadQuarter:
		return due.Add(-15 * time.Minute), true
	default:
		return time.Time{}, false
	}
}

// Scheduler is the collaborator interface. Implementations must tolerate
// Cancel for unknown ids.
type Scheduler interface {
	Schedule(taskID uuid.UUID, title string, due time.Time, lead Lead)
	Cancel(taskID uuid.UUID)
}

// Nop discards all scheduling requests.
type Nop struct{}

func (Nop) Schedule(uuid.UUID, string, time.Time, Lead) {}
func (Nop) Cancel(uuid.UUID)                            {}

// Log records scheduling activity through slog instead of a platform
// notification center. Reminders whose fire instant is already past are
// skipped, mirroring the original app.
type Log struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewLog builds a logging scheduler. A nil logger falls back to
// slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger, now: time.Now}
}

func (l *Log) Schedule(taskID uuid.UUID, title string, due time.Time, lead Lead) {
	at, ok := lead.FireAt(due)
	if !ok {
		return
	}
	if !at.After(l.now()) {
		l.logger.Debug("reminder in the past, skipped",
			"task", taskID, "title", title, "fire_at", at)
		return
	}
	l.logger.Info("reminder scheduled",
		"task", taskID, "title", title, "lead", string(lead), "fire_at", at)
}

func (l *Log) Cancel(taskID uuid.UUID) {
	l.logger.Info("reminders cancelled", "task", taskID)
}
