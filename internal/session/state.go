// Package session tracks one run of a mini-game from mount to outcome.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/sched"
)

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	PhaseLive     Phase = iota // Accepting input, timer running
	PhaseResolved              // Outcome recorded, waiting for the settle delay
	PhaseClosed                // Torn down
)

func (p Phase) String() string {
	switch p {
	case PhaseLive:
		return "live"
	case PhaseResolved:
		return "resolved"
	case PhaseClosed:
		return "closed"
	}
	return "unknown"
}

// Session is the runtime state of the active game.
type Session struct {
	// ID distinguishes sessions in logs.
	ID uuid.UUID

	// GameID is the selected game identifier.
	GameID int

	// Game is the mounted instance. Nil when GameID was not registered.
	Game minigame.Game

	// Paused suppresses input forwarding.
	Paused bool

	// Phase is the lifecycle phase.
	Phase Phase

	// Tasks owns every callback scheduled for this session.
	Tasks *sched.Scope

	// StartedAt is when the session was created.
	StartedAt time.Time

	gate      Gate
	pressed   bool
	pressedAt time.Time
}

// New creates a live session.
func New(gameID int, g minigame.Game, tasks *sched.Scope, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		GameID:    gameID,
		Game:      g,
		Tasks:     tasks,
		StartedAt: now,
	}
}

// Resolve records the outcome if none was recorded yet. It reports whether
// this call won.
func (s *Session) Resolve(success bool) bool {
	if !s.gate.Resolve(success) {
		return false
	}
	s.Phase = PhaseResolved
	return true
}

// Result returns the recorded outcome.
func (s *Session) Result() (success, ok bool) {
	return s.gate.Value()
}

// Live reports whether the session still accepts input and outcomes.
func (s *Session) Live() bool {
	return s.Phase == PhaseLive
}

// Close cancels every pending callback. Safe to call more than once.
func (s *Session) Close() {
	s.Tasks.Cancel()
	s.Phase = PhaseClosed
	s.pressed = false
}

// Press records the start of a button press.
func (s *Session) Press(now time.Time) {
	s.pressed = true
	s.pressedAt = now
}

// Release ends a press and returns how long it was held. ok is false when
// no press was recorded.
func (s *Session) Release(now time.Time) (hold time.Duration, ok bool) {
	if !s.pressed {
		return 0, false
	}
	s.pressed = false
	return now.Sub(s.pressedAt), true
}

// Pressed reports whether the button is currently down.
func (s *Session) Pressed() bool { return s.pressed }
