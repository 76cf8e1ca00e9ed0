// Package audio emits short feedback cues and the repeating countdown tick.
// Every call is fire-and-forget: output failures are logged and dropped.
package audio

import (
	"log/slog"
	"time"

	"github.com/antigravity/petit/internal/sched"
)

const (
	// BaseTickInterval is the tick spacing at tempo 1.0.
	BaseTickInterval = 500 * time.Millisecond

	TempoNormal = 1.0
	TempoFast   = 1.5
)

// Sink renders a cue. Implementations may fail; the Emitter swallows errors.
type Sink interface {
	Emit(c Cue) error
}

// Emitter plays cues through a Sink and owns the background tick.
type Emitter struct {
	sink   Sink
	sched  *sched.Scheduler
	logger *slog.Logger

	tick    *sched.Scope
	playing bool
	tempo   float64
}

// New creates an Emitter. A nil sink mutes all output.
func New(sink Sink, s *sched.Scheduler, logger *slog.Logger) *Emitter {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Emitter{sink: sink, sched: s, logger: logger, tempo: TempoNormal}
}

// Play fires a single cue.
func (e *Emitter) Play(c Cue) {
	if e == nil {
		return
	}
	if err := e.sink.Emit(c); err != nil {
		e.logger.Debug("audio cue dropped", "cue", c, "error", err)
	}
}

// StartTick starts (or restarts) the repeating tick at tempo.
func (e *Emitter) StartTick(tempo float64) {
	if e == nil {
		return
	}
	e.StopTick()
	if tempo <= 0 {
		tempo = TempoNormal
	}
	e.tempo = tempo
	e.playing = true

	e.Play(CueTick)
	e.tick = e.sched.NewScope()
	e.tick.Every(TickInterval(tempo), func() {
		if e.playing {
			e.Play(CueTick)
		}
	})
}

// SetTempo changes the tick tempo. It has no effect while the tick is off.
func (e *Emitter) SetTempo(tempo float64) {
	if e == nil || !e.playing {
		return
	}
	e.StartTick(tempo)
}

// StopTick silences the repeating tick.
func (e *Emitter) StopTick() {
	if e == nil {
		return
	}
	e.playing = false
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
}

// Ticking reports whether the background tick is on.
func (e *Emitter) Ticking() bool { return e != nil && e.playing }

// Tempo returns the current tick tempo.
func (e *Emitter) Tempo() float64 { return e.tempo }

// TickInterval returns the tick spacing for tempo.
func TickInterval(tempo float64) time.Duration {
	return time.Duration(float64(BaseTickInterval) / tempo)
}
