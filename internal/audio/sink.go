package audio

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// ErrNoOutput is returned by sinks without a usable device.
var ErrNoOutput = errors.New("audio output unavailable")

// NopSink discards every cue.
type NopSink struct{}

func (NopSink) Emit(Cue) error { return nil }

// BellSink rings the terminal bell for a chosen set of cues.
type BellSink struct {
	mu   sync.Mutex
	w    io.Writer
	cues map[Cue]bool
}

// NewBellSink rings w for each cue in cues. Other cues are ignored.
func NewBellSink(w io.Writer, cues []Cue) *BellSink {
	set := make(map[Cue]bool, len(cues))
	for _, c := range cues {
		set[c] = true
	}
	return &BellSink{w: w, cues: set}
}

func (b *BellSink) Emit(c Cue) error {
	if !b.cues[c] {
		return nil
	}
	if b.w == nil {
		return ErrNoOutput
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.w.Write([]byte{'\a'})
	return err
}

// LogSink records cues with their tone parameters at debug level.
type LogSink struct {
	Logger *slog.Logger
}

func (l LogSink) Emit(c Cue) error {
	if l.Logger == nil {
		return ErrNoOutput
	}
	tones, ok := Tones[c]
	if !ok {
		return errors.New("unknown cue " + string(c))
	}
	l.Logger.Debug("cue", "name", c, "notes", len(tones), "freq", tones[0].Freq, "wave", tones[0].Wave)
	return nil
}

// MultiSink fans a cue out to several sinks and returns the first error.
type MultiSink []Sink

func (m MultiSink) Emit(c Cue) error {
	var first error
	for _, s := range m {
		if err := s.Emit(c); err != nil && first == nil {
			first = err
		}
	}
	return first
}
