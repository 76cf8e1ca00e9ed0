// Package games contains the built-in mini-games.
package games

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
)

const (
	IDBrushing = 11
	IDCake     = 12
	IDPrincess = 13
	IDFlower   = 14
	IDGrape    = 15
)

// RegisterAll adds every built-in game to r.
func RegisterAll(r *minigame.Registry) error {
	all := []struct {
		id   int
		game minigame.Game
	}{
		{IDBrushing, NewBrushing()},
		{IDCake, NewCake()},
		{IDPrincess, NewPrincess()},
		{IDFlower, NewFlower()},
		{IDGrape, NewGrape()},
	}
	for _, g := range all {
		if err := r.Register(g.id, g.game); err != nil {
			return fmt.Errorf("register built-in games: %w", err)
		}
	}
	return nil
}

// round is the per-session state every game shares.
type round struct {
	env   minigame.Env
	ended bool
}

func (r *round) reset(env minigame.Env) {
	r.env = env
	r.ended = false
}

func (r *round) now() time.Time {
	if r.env.Clock == nil {
		return time.Now()
	}
	return r.env.Clock.Now()
}

// end marks the round as decided and plays the matching cues. It reports
// false if the round had already ended.
func (r *round) end(success bool) bool {
	if r.ended {
		return false
	}
	r.ended = true
	if success {
		r.env.Audio.Play(audio.CueDing)
		r.env.Audio.Play(audio.CueSuccess)
	} else {
		r.env.Audio.Play(audio.CueFail)
	}
	return true
}

func (r *round) resolveAfter(d time.Duration, success bool) {
	r.env.Tasks.After(d, func() {
		r.env.Resolve(success)
	})
}

func (r *round) sprite(s *canvas.Surface, name string, rect canvas.Rect, fallback color.Color) {
	if r.env.Assets == nil {
		s.FillRect(rect, fallback)
		return
	}
	r.env.Assets.Draw(s, name, rect, fallback)
}

// at converts fractions of the surface size to pixels.
func at(s *canvas.Surface, fx, fy float64) (float64, float64) {
	return float64(s.Width()) * fx, float64(s.Height()) * fy
}

// wobble returns a sine offset with the given amplitude and period.
func wobble(t time.Duration, amplitude float64, period time.Duration) float64 {
	return amplitude * math.Sin(2*math.Pi*float64(t)/float64(period))
}

// sinceEpoch turns a wall time into a phase for looping animations.
func sinceEpoch(t time.Time) time.Duration {
	return time.Duration(t.UnixNano())
}
