// Package sched schedules delayed and repeating callbacks on the Bubble Tea
// update loop. Every task belongs to a Scope; cancelling the scope guarantees
// that none of its tasks runs again, even if its tick message is already in
// flight.
package sched

import (
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
)

// TaskID identifies a scheduled task.
type TaskID uint64

// FiredMsg is delivered when a task's delay elapses.
type FiredMsg struct {
	ID TaskID
}

type task struct {
	scope    *Scope
	interval time.Duration
	repeat   bool
	fn       func()
}

// Scheduler owns all live tasks. It is not safe for concurrent use; all
// calls happen on the update goroutine.
type Scheduler struct {
	nextID  TaskID
	tasks   map[TaskID]*task
	pending []tea.Cmd
}

// New creates an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[TaskID]*task)}
}

// NewScope returns a fresh cancellation scope.
func (s *Scheduler) NewScope() *Scope {
	return &Scope{sched: s}
}

// Handle runs the task behind msg if it is still live. It reports whether
// a task ran.
func (s *Scheduler) Handle(msg FiredMsg) bool {
	t, ok := s.tasks[msg.ID]
	if !ok {
		return false
	}
	if t.scope.cancelled {
		delete(s.tasks, msg.ID)
		return false
	}
	if t.repeat {
		s.arm(msg.ID, t.interval)
	} else {
		delete(s.tasks, msg.ID)
	}
	t.fn()
	return true
}

// Flush returns the tick commands for every task armed since the last flush.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns the ids of live tasks in scheduling order.
func (s *Scheduler) Pending() []TaskID {
	ids := make([]TaskID, 0, len(s.tasks))
	for id, t := range s.tasks {
		if !t.scope.cancelled {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Interval returns the delay a live task was armed with.
func (s *Scheduler) Interval(id TaskID) (time.Duration, bool) {
	t, ok := s.tasks[id]
	if !ok || t.scope.cancelled {
		return 0, false
	}
	return t.interval, true
}

// Len reports the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.Pending())
}

func (s *Scheduler) add(sc *Scope, d time.Duration, repeat bool, fn func()) TaskID {
	s.nextID++
	id := s.nextID
	s.tasks[id] = &task{scope: sc, interval: d, repeat: repeat, fn: fn}
	sc.ids = append(sc.ids, id)
	s.arm(id, d)
	return id
}

func (s *Scheduler) arm(id TaskID, d time.Duration) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id}
	}))
}

// Scope groups tasks under one cancellation token.
type Scope struct {
	sched     *Scheduler
	ids       []TaskID
	cancelled bool
}

// After runs fn once after d. It returns 0 if the scope is cancelled.
func (sc *Scope) After(d time.Duration, fn func()) TaskID {
	if sc == nil || sc.cancelled {
		return 0
	}
	return sc.sched.add(sc, d, false, fn)
}

// Every runs fn every d until the scope is cancelled.
func (sc *Scope) Every(d time.Duration, fn func()) TaskID {
	if sc == nil || sc.cancelled || d <= 0 {
		return 0
	}
	return sc.sched.add(sc, d, true, fn)
}

// Cancel drops every task of the scope. Safe to call more than once.
func (sc *Scope) Cancel() {
	if sc == nil || sc.cancelled {
		return
	}
	sc.cancelled = true
	for _, id := range sc.ids {
		delete(sc.sched.tasks, id)
	}
	sc.ids = nil
}

// Cancelled reports whether Cancel was called.
func (sc *Scope) Cancelled() bool {
	return sc == nil || sc.cancelled
}
