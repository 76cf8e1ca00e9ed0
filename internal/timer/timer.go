// Package timer implements the round countdown shared by every session.
package timer

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/antigravity/petit/internal/sched"
)

const (
	// DefaultInterval is the update tick rate, independent of duration.
	DefaultInterval = 50 * time.Millisecond

	// DefaultWarnFraction places the warning at 2s of a 5s round.
	DefaultWarnFraction = 0.4
)

// Callbacks are invoked from the update tick. Any of them may be nil.
type Callbacks struct {
	OnUpdate   func(remaining time.Duration)
	OnWarning  func()
	OnComplete func()
}

// Config holds tick and threshold settings.
type Config struct {
	Interval     time.Duration
	WarnFraction float64
}

// Countdown tracks remaining time against a duration. Only the owner of the
// Countdown calls its control methods.
type Countdown struct {
	clock clockwork.Clock
	sched *sched.Scheduler
	scope *sched.Scope
	cfg   Config

	duration  time.Duration
	remaining time.Duration
	running   bool
	paused    bool
	warned    bool

	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration

	cb Callbacks
}

// New creates a stopped Countdown.
func New(clock clockwork.Clock, s *sched.Scheduler, cfg Config) *Countdown {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.WarnFraction <= 0 || cfg.WarnFraction >= 1 {
		cfg.WarnFraction = DefaultWarnFraction
	}
	return &Countdown{clock: clock, sched: s, cfg: cfg}
}

// Start resets the countdown to d and begins ticking. A running cycle is
// stopped first, so its callbacks never fire afterwards.
func (c *Countdown) Start(d time.Duration, cb Callbacks) {
	c.Stop()

	c.duration = d
	c.remaining = d
	c.cb = cb
	c.running = true
	c.paused = false
	c.warned = false
	c.startedAt = c.clock.Now()
	c.pausedTotal = 0

	c.scope = c.sched.NewScope()
	c.scope.Every(c.cfg.Interval, c.tick)
}

// Stop halts the tick. Safe to call repeatedly.
func (c *Countdown) Stop() {
	if c.scope != nil {
		c.scope.Cancel()
		c.scope = nil
	}
	c.running = false
	c.paused = false
}

// Pause freezes the remaining time. No-op unless running and not paused.
func (c *Countdown) Pause() {
	if !c.running || c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.clock.Now()
}

// Resume continues after a pause. No-op unless paused.
func (c *Countdown) Resume() {
	if !c.running || !c.paused {
		return
	}
	c.paused = false
	c.pausedTotal += c.clock.Since(c.pausedAt)
}

// Remaining returns the current remaining time, never negative.
func (c *Countdown) Remaining() time.Duration {
	if !c.running {
		return c.remaining
	}
	now := c.clock.Now()
	if c.paused {
		now = c.pausedAt
	}
	return c.remainingAt(now)
}

// Duration returns the duration of the current or last cycle.
func (c *Countdown) Duration() time.Duration { return c.duration }

// Running reports whether a cycle is in progress.
func (c *Countdown) Running() bool { return c.running }

// Paused reports whether the running cycle is paused.
func (c *Countdown) Paused() bool { return c.paused }

// Warned reports whether the warning already fired this cycle.
func (c *Countdown) Warned() bool { return c.warned }

// WarnAt returns the warning threshold for the current duration.
func (c *Countdown) WarnAt() time.Duration {
	return time.Duration(float64(c.duration) * c.cfg.WarnFraction)
}

// Progress returns elapsed/duration in [0, 1].
func (c *Countdown) Progress() float64 {
	if c.duration <= 0 {
		return 1
	}
	return 1 - float64(c.Remaining())/float64(c.duration)
}

func (c *Countdown) remainingAt(now time.Time) time.Duration {
	elapsed := now.Sub(c.startedAt) - c.pausedTotal
	return max(0, c.duration-elapsed)
}

func (c *Countdown) tick() {
	if !c.running || c.paused {
		return
	}

	c.remaining = c.remainingAt(c.clock.Now())
	if c.cb.OnUpdate != nil {
		c.cb.OnUpdate(c.remaining)
	}

	if !c.warned && c.remaining <= c.WarnAt() {
		c.warned = true
		if c.cb.OnWarning != nil {
			c.cb.OnWarning()
		}
		// The warning callback may have stopped us.
		if !c.running {
			return
		}
	}

	if c.remaining == 0 {
		done := c.cb.OnComplete
		c.Stop()
		if done != nil {
			done()
		}
	}
}
