// Package schedtest drives a sched.Scheduler against a fake clock, firing
// tasks in due-time order without a Bubble Tea program.
package schedtest

import (
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/antigravity/petit/internal/sched"
)

// Driver fires scheduled tasks as fake time advances.
type Driver struct {
	Clock *clockwork.FakeClock
	Sched *sched.Scheduler

	due map[sched.TaskID]time.Time
}

// New returns a Driver for s. Tasks are considered armed at the clock's
// current time when the Driver first sees them.
func New(clock *clockwork.FakeClock, s *sched.Scheduler) *Driver {
	return &Driver{Clock: clock, Sched: s, due: make(map[sched.TaskID]time.Time)}
}

// Sync records newly scheduled tasks. Advance calls it; tests call it
// directly after scheduling work without advancing.
func (d *Driver) Sync() {
	now := d.Clock.Now()
	live := d.Sched.Pending()
	for _, id := range live {
		if _, ok := d.due[id]; ok {
			continue
		}
		if iv, ok := d.Sched.Interval(id); ok {
			d.due[id] = now.Add(iv)
		}
	}
	for id := range d.due {
		if !slices.Contains(live, id) {
			delete(d.due, id)
		}
	}
}

// Advance moves the clock forward by dt, firing every task that comes due
// on the way, including tasks scheduled by other tasks.
func (d *Driver) Advance(dt time.Duration) {
	end := d.Clock.Now().Add(dt)
	for {
		d.Sync()
		id, at, ok := d.next(end)
		if !ok {
			break
		}
		if wait := at.Sub(d.Clock.Now()); wait > 0 {
			d.Clock.Advance(wait)
		}
		d.Sched.Handle(sched.FiredMsg{ID: id})
		if iv, live := d.Sched.Interval(id); live {
			d.due[id] = at.Add(iv)
		} else {
			delete(d.due, id)
		}
	}
	if wait := end.Sub(d.Clock.Now()); wait > 0 {
		d.Clock.Advance(wait)
	}
}

func (d *Driver) next(end time.Time) (sched.TaskID, time.Time, bool) {
	var (
		best   sched.TaskID
		bestAt time.Time
		found  bool
	)
	for id, at := range d.due {
		if at.After(end) {
			continue
		}
		if !found || at.Before(bestAt) || (at.Equal(bestAt) && id < best) {
			best, bestAt, found = id, at, true
		}
	}
	return best, bestAt, found
}
