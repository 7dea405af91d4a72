package island

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID uint64

type task struct {
	id   TaskID
	name string
	at   time.Time
	fn   func()
}

// Scheduler is a virtual-time timer set. Tasks only run from Advance, on the
// caller's goroutine, in deadline order (ties in scheduling order). Every
// handle stays owned by the scheduler until it runs or is cancelled.
type Scheduler struct {
	now    time.Time
	lastID TaskID
	tasks  []*task
}

// NewScheduler creates a scheduler whose clock starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() time.Time { return s.now }

// After schedules fn to run d after the current virtual time.
func (s *Scheduler) After(d time.Duration, name string, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	s.lastID++
	s.tasks = append(s.tasks, &task{id: s.lastID, name: name, at: s.now.Add(d), fn: fn})
	return s.lastID
}

// Cancel removes a pending task. It reports whether the task was pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	if id == 0 {
		return false
	}
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task and returns how many there were.
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = nil
	return n
}

// Pending returns the number of scheduled tasks.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Scheduled reports whether a task with the given name is pending.
func (s *Scheduler) Scheduled(name string) bool {
	for _, t := range s.tasks {
		if t.name == name {
			return true
		}
	}
	return false
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Time, bool) {
	t := s.earliest()
	if t == nil {
		return time.Time{}, false
	}
	return t.at, true
}

// Advance moves the clock to now, running every task that falls due on the
// way, including tasks scheduled by those tasks. It returns the number of
// tasks run. Moving the clock backwards is a no-op.
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		return 0
	}
	ran := 0
	for {
		t := s.earliest()
		if t == nil || t.at.After(now) {
			break
		}
		s.Cancel(t.id)
		s.now = t.at
		t.fn()
		ran++
	}
	s.now = now
	return ran
}

// AdvanceBy is Advance relative to the current virtual time.
func (s *Scheduler) AdvanceBy(d time.Duration) int {
	return s.Advance(s.now.Add(d))
}

func (s *Scheduler) earliest() *task {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at.Equal(s.tasks[j].at) {
			return s.tasks[i].id < s.tasks[j].id
		}
		return s.tasks[i].at.Before(s.tasks[j].at)
	})
	return s.tasks[0]
}
