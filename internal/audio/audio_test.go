package audio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/petit/internal/sched"
)

type recordSink struct {
	cues []Cue
	err  error
}

func (r *recordSink) Emit(c Cue) error {
	r.cues = append(r.cues, c)
	return r.err
}

func TestPlayForwardsToSink(t *testing.T) {
	sink := &recordSink{}
	e := New(sink, sched.New(), nil)

	e.Play(CueDing)
	e.Play(CueClick)
	assert.Equal(t, []Cue{CueDing, CueClick}, sink.cues)
}

func TestPlaySwallowsSinkErrors(t *testing.T) {
	sink := &recordSink{err: errors.New("no device")}
	e := New(sink, sched.New(), nil)

	assert.NotPanics(t, func() { e.Play(CueFail) })
	assert.Len(t, sink.cues, 1)
}

func TestNilEmitterIsNoop(t *testing.T) {
	var e *Emitter
	assert.NotPanics(t, func() {
		e.Play(CuePop)
		e.StartTick(TempoNormal)
		e.SetTempo(TempoFast)
		e.StopTick()
	})
	assert.False(t, e.Ticking())
}

func TestTickRepeatsUntilStopped(t *testing.T) {
	sink := &recordSink{}
	s := sched.New()
	e := New(sink, s, nil)

	e.StartTick(TempoNormal)
	require.True(t, e.Ticking())
	assert.Equal(t, []Cue{CueTick}, sink.cues, "start plays one tick immediately")

	ids := s.Pending()
	require.Len(t, ids, 1)
	s.Handle(sched.FiredMsg{ID: ids[0]})
	s.Handle(sched.FiredMsg{ID: ids[0]})
	assert.Len(t, sink.cues, 3)

	e.StopTick()
	s.Handle(sched.FiredMsg{ID: ids[0]})
	assert.Len(t, sink.cues, 3)
	assert.False(t, e.Ticking())
}

func TestSetTempoOnlyWhilePlaying(t *testing.T) {
	s := sched.New()
	e := New(&recordSink{}, s, nil)

	e.SetTempo(TempoFast)
	assert.False(t, e.Ticking())
	assert.Zero(t, s.Len())

	e.StartTick(TempoNormal)
	e.SetTempo(TempoFast)
	assert.Equal(t, TempoFast, e.Tempo())
	assert.Equal(t, 1, s.Len(), "tempo change replaces the running tick")
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, BaseTickInterval, TickInterval(TempoNormal))
	assert.Less(t, TickInterval(TempoFast), BaseTickInterval)
}

func TestBellSinkRingsSelectedCues(t *testing.T) {
	var buf bytes.Buffer
	b := NewBellSink(&buf, []Cue{CueSuccess, CueFail})

	require.NoError(t, b.Emit(CueTick))
	require.NoError(t, b.Emit(CueSuccess))
	require.NoError(t, b.Emit(CueFail))
	assert.Equal(t, "\a\a", buf.String())
}

func TestBellSinkWithoutWriter(t *testing.T) {
	b := NewBellSink(nil, []Cue{CueDing})
	assert.ErrorIs(t, b.Emit(CueDing), ErrNoOutput)
}

func TestMultiSinkReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	a, b := &recordSink{err: boom}, &recordSink{}
	err := MultiSink{a, b}.Emit(CuePop)

	assert.ErrorIs(t, err, boom)
	assert.Len(t, b.cues, 1, "later sinks still receive the cue")
}

func TestParseCue(t *testing.T) {
	c, ok := ParseCue("ding")
	assert.True(t, ok)
	assert.Equal(t, CueDing, c)

	_, ok = ParseCue("kazoo")
	assert.False(t, ok)
}
