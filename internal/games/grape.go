package games

import (
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
)

const (
	grapeSpots     = 10
	grapeShakeFor  = 500 * time.Millisecond
	grapeSuccessIn = time.Second
	grapeFailSlide = 1500 * time.Millisecond
)

// grapeOffsets are spot positions relative to the bunch center, in units of a 300px scene.
var grapeOffsets = [grapeSpots]canvas.Point{
	{X: -60, Y: -80}, {X: 0, Y: -85}, {X: 60, Y: -80}, {X: 30, Y: -130},
	{X: -90, Y: -30}, {X: -30, Y: -30}, {X: 30, Y: -30}, {X: 90, Y: -30},
	{X: -45, Y: 30}, {X: 45, Y: 30},
}

// Grape fills one spot of the bunch per press. Filling all ten before the
// round ends wins.
type Grape struct {
	round
	filled    int
	shakeFrom time.Time
	failing   bool
	failFrom  time.Time
	frame     time.Time
}

func NewGrape() *Grape { return &Grape{} }

func (g *Grape) Title() *goi18n.Message {
	return &goi18n.Message{ID: "game_15_title", Other: "Fill the bunch with sweet grapes!"}
}

func (g *Grape) Init(env minigame.Env) {
	g.reset(env)
	g.filled = 0
	g.failing = false
	g.shakeFrom = time.Time{}
	g.frame = g.now()
}

func (g *Grape) Start() { g.draw() }

func (g *Grape) ButtonDown(canvas.Point) {
	if g.ended {
		return
	}
	if g.filled < grapeSpots {
		g.filled++
		g.shakeFrom = g.now()
		g.env.Audio.Play(audio.CueClick)
	}
	if g.filled >= grapeSpots {
		g.succeed()
	}
	g.draw()
}

func (g *Grape) ButtonUp(time.Duration, canvas.Point) {}

func (g *Grape) OnTimeout() {
	if g.filled >= grapeSpots {
		g.succeed()
		return
	}
	if g.end(false) {
		g.failing = true
		g.failFrom = g.now()
		g.resolveAfter(grapeFailSlide, false)
	}
}

func (g *Grape) succeed() {
	if g.end(true) {
		g.resolveAfter(grapeSuccessIn, true)
	}
}

func (g *Grape) Animate(now time.Time) {
	g.frame = now
	g.draw()
}

func (g *Grape) draw() {
	s := g.env.Phone
	if s == nil {
		return
	}
	s.Fill(canvas.Hex("#f3e5f5"))
	w, h := float64(s.Width()), float64(s.Height())
	cx, cy := at(s, 0.5, 0.6)
	unit := min(w, h) / 300
	dot := 50 * unit

	if since := g.frame.Sub(g.shakeFrom); !g.shakeFrom.IsZero() && since >= 0 && since < grapeShakeFor {
		cx += wobble(since, w*0.02, 100*time.Millisecond)
	}

	g.sprite(s, "vine", canvas.CenteredRect(cx+10*unit, cy-170*unit, 80*unit, 60*unit), canvas.Hex("#66bb6a"))
	for i, off := range grapeOffsets {
		name, fallback := "grape_empty", canvas.Hex("#ffffff")
		if i < g.filled {
			name, fallback = "grape", canvas.Hex("#7b1fa2")
		}
		g.sprite(s, name, canvas.CenteredRect(cx+off.X*unit, cy+off.Y*unit, dot, dot), fallback)
	}

	if g.ended && !g.failing {
		g.sprite(s, "sparkle", canvas.CenteredRect(cx, cy-40*unit, w*0.4, w*0.4), canvas.Hex("#ffeb3b"))
	}
	if g.failing {
		// A leaf blows across the scene while the round fails.
		p := float64(g.frame.Sub(g.failFrom)) / float64(grapeFailSlide)
		p = min(max(p, 0), 1)
		x := -w*0.3 + p*w*1.6
		g.sprite(s, "vine", canvas.CenteredRect(x, h*0.5, w*0.3, w*0.2), canvas.Hex("#66bb6a"))
	}
}
