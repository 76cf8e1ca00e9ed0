package audio

import "time"

// Cue is a named feedback sound.
type Cue string

const (
	CueTick    Cue = "tick"
	CuePop     Cue = "pop"
	CueClick   Cue = "click"
	CueDing    Cue = "ding"
	CueWhoosh  Cue = "whoosh"
	CueSuccess Cue = "success"
	CueFail    Cue = "fail"
)

// Wave is an oscillator shape.
type Wave string

const (
	WaveSine     Wave = "sine"
	WaveSquare   Wave = "square"
	WaveSawtooth Wave = "sawtooth"
)

// Tone describes one synthesized note. A sweep goes from Freq to SweepTo.
type Tone struct {
	Freq     float64
	SweepTo  float64
	Wave     Wave
	Gain     float64
	Duration time.Duration
	Offset   time.Duration
}

// Tones lists the notes each cue is made of.
var Tones = map[Cue][]Tone{
	CueTick:   {{Freq: 800, Wave: WaveSine, Gain: 0.1, Duration: 100 * time.Millisecond}},
	CuePop:    {{Freq: 600, Wave: WaveSine, Gain: 0.3, Duration: 100 * time.Millisecond}},
	CueClick:  {{Freq: 1000, Wave: WaveSquare, Gain: 0.1, Duration: 50 * time.Millisecond}},
	CueDing:   {{Freq: 880, Wave: WaveSine, Gain: 0.2, Duration: 400 * time.Millisecond}},
	CueWhoosh: {{Freq: 200, SweepTo: 800, Wave: WaveSawtooth, Gain: 0.1, Duration: 200 * time.Millisecond}},
	CueSuccess: {
		{Freq: 523.25, Wave: WaveSine, Gain: 0.2, Duration: 300 * time.Millisecond},
		{Freq: 659.25, Wave: WaveSine, Gain: 0.2, Duration: 300 * time.Millisecond, Offset: 100 * time.Millisecond},
		{Freq: 783.99, Wave: WaveSine, Gain: 0.2, Duration: 300 * time.Millisecond, Offset: 200 * time.Millisecond},
	},
	CueFail: {{Freq: 400, SweepTo: 200, Wave: WaveSawtooth, Gain: 0.15, Duration: 500 * time.Millisecond}},
}

// ParseCue validates a cue name.
func ParseCue(name string) (Cue, bool) {
	c := Cue(name)
	_, ok := Tones[c]
	return c, ok
}
