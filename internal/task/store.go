package task

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"palplanner/internal/notify"
	"palplanner/internal/observe"
)

const (
	// DefaultStartingBalance is the PalPoints a fresh store opens with.
	DefaultStartingBalance = 100
	// DefaultSweepInterval is how often the background sweep looks for
	// expired tasks.
	DefaultSweepInterval = time.Minute
)

// Spec describes a task to add. Points and GraceMinutes fall back to the
// package defaults when not positive.
type Spec struct {
	Title        string
	Description  string
	Date         time.Time
	DueTime      time.Time
	Points       int
	GraceMinutes int
}

// Store owns the task collection and the points balance. All mutations are
// serialized by a mutex; a query immediately observes any prior mutation.
// Ordinary domain conditions (unknown id, already terminal, insufficient
// points) are boolean results, never errors.
type Store struct {
	mu      sync.Mutex
	tasks   []Task
	balance int

	scheduler notify.Scheduler
	lead      notify.Lead
	now       func() time.Time

	hub observe.Hub

	stopOnce sync.Once
	started  bool
	stop     chan struct{}
	done     chan struct{}
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithScheduler sets the reminder collaborator.
func WithScheduler(s notify.Scheduler) Option {
	return func(st *Store) {
		if s != nil {
			st.scheduler = s
		}
	}
}

// WithStartingBalance overrides the opening PalPoints balance. Negative
// values are floored at zero.
func WithStartingBalance(n int) Option {
	return func(st *Store) {
		if n < 0 {
			n = 0
		}
		st.balance = n
	}
}

// WithLead sets the reminder lead used for newly added tasks.
func WithLead(l notify.Lead) Option {
	return func(st *Store) {
		if l.IsValid() {
			st.lead = l
		}
	}
}

// WithNow injects the clock, for deterministic sweeps in tests.
func WithNow(f func() time.Time) Option {
	return func(st *Store) {
		if f != nil {
			st.now = f
		}
	}
}

// NewStore builds an empty store with the default balance, a no-op
// scheduler, and the real clock.
func NewStore(opts ...Option) *Store {
	s := &Store{
		balance:   DefaultStartingBalance,
		scheduler: notify.Nop{},
		lead:      notify.DefaultLead,
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Subscribe registers for change pings.
func (s *Store) Subscribe() (<-chan struct{}, func()) { return s.hub.Subscribe() }

// Add creates a pending task and schedules its reminder. The only domain
// validation is a non-empty title.
func (s *Store) Add(spec Spec) (uuid.UUID, error) {
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		return uuid.Nil, errors.New("title is required")
	}
	points := spec.Points
	if points <= 0 {
		points = DefaultPoints
	}
	grace := spec.GraceMinutes
	if grace <= 0 {
		grace = DefaultGraceMinutes
	}

	t := Task{
		ID:           uuid.New(),
		Title:        title,
		Description:  spec.Description,
		Date:         spec.Date,
		DueTime:      spec.DueTime,
		Status:       StatusPending,
		Points:       points,
		GraceMinutes: grace,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	s.scheduler.Schedule(t.ID, t.Title, t.DueInstant(), s.lead)
	s.hub.Notify()
	return t.ID, nil
}

// Complete transitions a pending task to completed and credits its points.
// Repeat calls on the same id are no-ops, so the reward is paid exactly
// once. Returns whether the transition happened.
func (s *Store) Complete(id uuid.UUID) bool {
	s.mu.Lock()
	var completed bool
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Status == StatusPending {
			s.tasks[i].Status = StatusCompleted
			s.balance += s.tasks[i].Points
			completed = true
		}
		break
	}
	s.mu.Unlock()

	if completed {
		s.scheduler.Cancel(id)
		s.hub.Notify()
	}
	return completed
}

// Delete removes a task of any status. Unknown ids are a no-op. Returns
// whether a task was removed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	var removed bool
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.scheduler.Cancel(id)
		s.hub.Notify()
	}
	return removed
}

// CheckExpired fails every pending task whose grace window has passed.
// Idempotent: already-failed tasks are untouched. Reports whether any task
// changed.
func (s *Store) CheckExpired(now time.Time) bool {
	s.mu.Lock()
	var expired []uuid.UUID
	for i := range s.tasks {
		if s.tasks[i].IsExpired(now) {
			s.tasks[i].Status = StatusFailed
			expired = append(expired, s.tasks[i].ID)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		s.scheduler.Cancel(id)
	}
	if len(expired) > 0 {
		s.hub.Notify()
	}
	return len(expired) > 0
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id uuid.UUID) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

// All returns a copy of every task in insertion order.
func (s *Store) All() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TasksForDate returns the tasks on the same calendar day as date, sorted
// ascending by due instant. The sort is stable, so tasks sharing a due
// instant keep their insertion order.
func (s *Store) TasksForDate(date time.Time) []Task {
	s.mu.Lock()
	var out []Task
	for i := range s.tasks {
		if sameDay(s.tasks[i].Date, date) {
			out = append(out, s.tasks[i])
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueInstant().Before(out[j].DueInstant())
	})
	return out
}

// PendingForDate filters TasksForDate to pending tasks, same order.
func (s *Store) PendingForDate(date time.Time) []Task {
	return s.filterForDate(date, StatusPending)
}

// CompletedForDate filters TasksForDate to completed tasks, same order.
func (s *Store) CompletedForDate(date time.Time) []Task {
	return s.filterForDate(date, StatusCompleted)
}

// FailedForDate filters TasksForDate to failed tasks, same order.
func (s *Store) FailedForDate(date time.Time) []Task {
	return s.filterForDate(date, StatusFailed)
}

func (s *Store) filterForDate(date time.Time, status Status) []Task {
	var out []Task
	for _, t := range s.TasksForDate(date) {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Balance returns the current PalPoints balance.
func (s *Store) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Debit withdraws amount from the balance if fully covered; the balance
// never goes negative. Used by the shop on purchase.
func (s *Store) Debit(amount int) bool {
	if amount < 0 {
		return false
	}
	s.mu.Lock()
	if s.balance < amount {
		s.mu.Unlock()
		return false
	}
	s.balance -= amount
	s.mu.Unlock()
	s.hub.Notify()
	return true
}

// StartSweeper checks for expired tasks immediately, then once per
// interval until Close. It must be called at most once.
func (s *Store) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	s.CheckExpired(s.now())
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.CheckExpired(s.now())
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the sweeper; no sweep runs after it returns. Idempotent, and
// safe without a prior StartSweeper.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if !started {
			close(s.done)
		}
	})
	<-s.done
}
