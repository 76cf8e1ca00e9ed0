// Package orchestrator moves the arcade between the home, game and result
// screens. It owns the active session, drives the shared countdown and
// forwards button input to the mounted game.
//
// All methods run on the Bubble Tea update goroutine.
package orchestrator

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/antigravity/petit/internal/assets"
	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/session"
	"github.com/antigravity/petit/internal/timer"
)

// State is the logical screen.
type State int

const (
	StateHome State = iota
	StateInGame
	StateResult
)

func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateInGame:
		return "in-game"
	case StateResult:
		return "result"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	DefaultRoundDuration = 5 * time.Second
	DefaultSettleDelay   = 500 * time.Millisecond

	// DefaultTimeoutGrace bounds how long a game's timeout handler may take
	// to report an outcome before the session fails anyway.
	DefaultTimeoutGrace = 3 * time.Second
)

// Options configures an Orchestrator. Registry, Timer, Scheduler, Phone and
// TV are required.
type Options struct {
	Registry  *minigame.Registry
	Timer     *timer.Countdown
	Scheduler *sched.Scheduler
	Phone     *canvas.Surface
	TV        *canvas.Surface

	Audio  *audio.Emitter
	Assets *assets.Library
	Clock  clockwork.Clock
	Rand   *rand.Rand
	Logger *slog.Logger

	RoundDuration time.Duration
	SettleDelay   time.Duration
	TimeoutGrace  time.Duration
}

// Orchestrator is the screen state machine.
type Orchestrator struct {
	opts Options
	log  *slog.Logger

	state   State
	visible State

	session *session.Session
	last    *session.Outcome

	// shownID and shownGame identify the game on screen. They outlive the
	// session until the settle delay has passed.
	shownID   int
	shownGame minigame.Game
	resultArt string

	// nav holds the pending screen switch after an outcome.
	nav *sched.Scope
}

// New creates an Orchestrator on the home screen.
func New(opts Options) *Orchestrator {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.RoundDuration <= 0 {
		opts.RoundDuration = DefaultRoundDuration
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.TimeoutGrace <= 0 {
		opts.TimeoutGrace = DefaultTimeoutGrace
	}
	return &Orchestrator{opts: opts, log: opts.Logger}
}

// State returns the logical state. It becomes StateResult as soon as an
// outcome is recorded.
func (o *Orchestrator) State() State { return o.state }

// Visible returns the screen to display. After an outcome it lags State by
// the settle delay.
func (o *Orchestrator) Visible() State { return o.visible }

// Session returns the active session, or nil outside StateInGame.
func (o *Orchestrator) Session() *session.Session { return o.session }

// LastOutcome returns the outcome of the most recent session.
func (o *Orchestrator) LastOutcome() (session.Outcome, bool) {
	if o.last == nil {
		return session.Outcome{}, false
	}
	return *o.last, true
}

// Showing returns the game currently on screen.
func (o *Orchestrator) Showing() (int, minigame.Game) { return o.shownID, o.shownGame }

// ResultArt names the sprite chosen for the result screen.
func (o *Orchestrator) ResultArt() string { return o.resultArt }

// Remaining returns the countdown's remaining time.
func (o *Orchestrator) Remaining() time.Duration { return o.opts.Timer.Remaining() }

// RoundDuration returns the length of every round.
func (o *Orchestrator) RoundDuration() time.Duration { return o.opts.RoundDuration }

// Paused reports whether the active session is paused.
func (o *Orchestrator) Paused() bool {
	return o.session != nil && o.session.Paused
}

// Phone returns the primary surface.
func (o *Orchestrator) Phone() *canvas.Surface { return o.opts.Phone }

// TV returns the mirror surface.
func (o *Orchestrator) TV() *canvas.Surface { return o.opts.TV }

// SelectGame starts a session for id. It applies on the home and result
// screens; an unregistered id resolves at once as a failure.
func (o *Orchestrator) SelectGame(id int) {
	if o.state == StateInGame {
		return
	}
	o.clear()

	g, _ := o.opts.Registry.Lookup(id)

	s := session.New(id, g, o.opts.Scheduler.NewScope(), o.opts.Clock.Now())
	o.session = s
	o.state = StateInGame
	o.visible = StateInGame
	o.shownID = id
	o.shownGame = g

	if g == nil {
		o.log.Warn("game not registered, resolving as failure", "game", id, "session", s.ID)
		o.resolve(s, false)
		return
	}

	o.opts.Phone.Clear()
	o.opts.TV.Clear()

	g.Init(minigame.Env{
		Phone:  o.opts.Phone,
		TV:     o.opts.TV,
		Tasks:  s.Tasks,
		Audio:  o.opts.Audio,
		Clock:  o.opts.Clock,
		Rand:   o.opts.Rand,
		Assets: o.opts.Assets,
		Logger: o.log.With("game", id, "session", s.ID),
		Resolve: func(success bool) {
			o.resolve(s, success)
		},
	})
	// The game may resolve from Init or Start.
	if !s.Live() {
		return
	}
	g.Start()
	if !s.Live() {
		return
	}

	o.opts.Timer.Start(o.opts.RoundDuration, timer.Callbacks{
		OnWarning: func() {
			o.opts.Audio.SetTempo(audio.TempoFast)
		},
		OnComplete: func() {
			o.expire(s)
		},
	})
	o.opts.Audio.StartTick(audio.TempoNormal)
	o.mirror(g)

	o.log.Info("session started", "game", id, "session", s.ID)
}

// Outcome resolves the active session. Only the first outcome of a session
// is recorded.
func (o *Orchestrator) Outcome(success bool) {
	if o.session == nil {
		return
	}
	o.resolve(o.session, success)
}

// Retry restarts the last played game from the result screen.
func (o *Orchestrator) Retry() {
	if o.state != StateResult || o.last == nil {
		return
	}
	o.SelectGame(o.last.GameID)
}

// GoHome returns from the result screen to the home screen.
func (o *Orchestrator) GoHome() {
	if o.state != StateResult {
		return
	}
	o.clear()
	o.state = StateHome
	o.visible = StateHome
}

// Abandon leaves a running game for the home screen without an outcome.
func (o *Orchestrator) Abandon() {
	if o.state != StateInGame {
		return
	}
	if s := o.session; s != nil {
		o.log.Info("session abandoned", "game", s.GameID, "session", s.ID)
	}
	o.clear()
	o.state = StateHome
	o.visible = StateHome
}

// Pause stops the countdown and input forwarding for the active session.
func (o *Orchestrator) Pause() {
	s := o.live()
	if s == nil || s.Paused {
		return
	}
	s.Paused = true
	// A press spanning the pause is dropped.
	s.Release(o.opts.Clock.Now())
	o.opts.Timer.Pause()
	o.opts.Audio.StopTick()
}

// Resume undoes Pause.
func (o *Orchestrator) Resume() {
	s := o.live()
	if s == nil || !s.Paused {
		return
	}
	s.Paused = false
	o.opts.Timer.Resume()
	if o.opts.Timer.Running() {
		tempo := audio.TempoNormal
		if o.opts.Timer.Warned() {
			tempo = audio.TempoFast
		}
		o.opts.Audio.StartTick(tempo)
	}
}

// TogglePause pauses a running session or resumes a paused one.
func (o *Orchestrator) TogglePause() {
	if o.Paused() {
		o.Resume()
	} else {
		o.Pause()
	}
}

// ButtonDown forwards a press at pos to the active game.
func (o *Orchestrator) ButtonDown(pos canvas.Point) {
	s := o.live()
	if s == nil || s.Paused {
		return
	}
	s.Press(o.opts.Clock.Now())
	s.Game.ButtonDown(pos)
}

// ButtonUp forwards a release at pos with the time the button was held.
// A release without a matching press is dropped.
func (o *Orchestrator) ButtonUp(pos canvas.Point) {
	s := o.live()
	if s == nil || s.Paused {
		return
	}
	hold, ok := s.Release(o.opts.Clock.Now())
	if !ok {
		return
	}
	s.Game.ButtonUp(hold, pos)
}

// Frame advances game animation and refreshes the TV surface.
func (o *Orchestrator) Frame(now time.Time) {
	s := o.live()
	if s == nil {
		return
	}
	if a, ok := s.Game.(minigame.Animator); ok && !s.Paused {
		a.Animate(now)
	}
	o.mirror(s.Game)
}

func (o *Orchestrator) live() *session.Session {
	if o.state != StateInGame || o.session == nil || !o.session.Live() || o.session.Game == nil {
		return nil
	}
	return o.session
}

func (o *Orchestrator) mirror(g minigame.Game) {
	if r, ok := g.(minigame.TVRenderer); ok {
		r.RenderTV()
		return
	}
	canvas.Mirror(o.opts.TV, o.opts.Phone)
}

// expire handles the end of the countdown for s.
func (o *Orchestrator) expire(s *session.Session) {
	if s != o.session || !s.Live() {
		return
	}
	o.opts.Audio.StopTick()

	th, ok := s.Game.(minigame.TimeoutHandler)
	if !ok {
		o.resolve(s, false)
		return
	}
	th.OnTimeout()
	if s.Live() {
		s.Tasks.After(o.opts.TimeoutGrace, func() {
			o.log.Warn("timeout handler did not resolve, failing session", "game", s.GameID, "session", s.ID)
			o.resolve(s, false)
		})
	}
}

// resolve records the outcome of s and schedules the result screen. Calls
// for stale or already resolved sessions are ignored.
func (o *Orchestrator) resolve(s *session.Session, success bool) {
	if s != o.session || !s.Resolve(success) {
		return
	}

	o.opts.Timer.Stop()
	o.opts.Audio.StopTick()
	if s.Game != nil {
		o.mirror(s.Game)
		if c, ok := s.Game.(minigame.Cleaner); ok {
			c.Cleanup()
		}
	}
	s.Close()

	out := session.BuildOutcome(s, success, o.opts.Clock.Now())
	o.last = &out
	o.session = nil
	o.state = StateResult

	o.log.Info("session resolved", "game", s.GameID, "session", s.ID, "success", success, "duration", out.Duration)

	o.nav = o.opts.Scheduler.NewScope()
	o.nav.After(o.opts.SettleDelay, o.showResult)
}

func (o *Orchestrator) showResult() {
	if o.state != StateResult || o.last == nil {
		return
	}
	variant := o.opts.Rand.IntN(2) + 1
	if o.last.Success {
		o.resultArt = fmt.Sprintf("result_success_%d", variant)
		o.opts.Audio.Play(audio.CueSuccess)
	} else {
		o.resultArt = fmt.Sprintf("result_fail_%d", variant)
		o.opts.Audio.Play(audio.CueFail)
	}
	o.visible = StateResult
	o.shownGame = nil
}

// clear tears down any session and pending navigation.
func (o *Orchestrator) clear() {
	o.nav.Cancel()
	o.nav = nil

	s := o.session
	if s == nil {
		return
	}
	o.opts.Timer.Stop()
	o.opts.Audio.StopTick()
	if s.Game != nil {
		if c, ok := s.Game.(minigame.Cleaner); ok {
			c.Cleanup()
		}
	}
	s.Close()
	o.session = nil
	o.shownGame = nil
}
