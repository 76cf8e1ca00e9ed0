package games

import (
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
)

type brushStage int

const (
	brushIdle brushStage = iota
	brushBrushing
	brushDone    // progress complete
	brushResults // clean teeth
	brushFailed
)

// Brushing is won by pressing the button enough times before the round
// ends. The number of presses needed is hidden and random.
type Brushing struct {
	round
	presses  int
	required int
	stage    brushStage
}

func NewBrushing() *Brushing { return &Brushing{} }

func (g *Brushing) Title() *goi18n.Message {
	return &goi18n.Message{ID: "game_11_title", Other: "Brush those teeth, fast!"}
}

func (g *Brushing) Init(env minigame.Env) {
	g.reset(env)
	g.presses = 0
	g.required = 5 + env.Rand.IntN(6)
	g.stage = brushIdle
}

func (g *Brushing) Start() { g.draw() }

func (g *Brushing) ButtonDown(canvas.Point) {
	if g.ended {
		return
	}
	g.presses++
	g.env.Audio.Play(audio.CueClick)

	if g.presses >= g.required {
		g.succeed()
		return
	}
	g.stage = brushBrushing
	g.draw()
}

func (g *Brushing) ButtonUp(time.Duration, canvas.Point) {}

func (g *Brushing) OnTimeout() {
	if !g.end(false) {
		return
	}
	g.stage = brushFailed
	g.draw()
	g.resolveAfter(500*time.Millisecond, false)
}

func (g *Brushing) succeed() {
	if !g.end(true) {
		return
	}
	g.stage = brushDone
	g.draw()
	g.env.Tasks.After(time.Second, func() {
		g.stage = brushResults
		g.draw()
		g.resolveAfter(time.Second, true)
	})
}

func (g *Brushing) draw() {
	s := g.env.Phone
	if s == nil {
		return
	}
	s.Fill(canvas.Hex("#b2ebf2"))
	w, h := float64(s.Width()), float64(s.Height())
	cx, cy := at(s, 0.5, 0.45)

	g.sprite(s, "teeth", canvas.CenteredRect(cx, cy, w*0.8, h*0.4), canvas.Hex("#fffde7"))

	switch g.stage {
	case brushBrushing:
		g.sprite(s, "foam", canvas.CenteredRect(cx, cy, w*0.6, h*0.22), canvas.Hex("#ffffff"))
		// The brush alternates sides on every press.
		dx := w * 0.12
		if g.presses%2 == 0 {
			dx = -dx
		}
		g.sprite(s, "toothbrush", canvas.CenteredRect(cx+dx, cy, w*0.9, h*0.14), canvas.Hex("#4fc3f7"))
	case brushDone:
		g.sprite(s, "foam", canvas.CenteredRect(cx, cy, w*0.7, h*0.26), canvas.Hex("#ffffff"))
		g.sprite(s, "sparkle", canvas.CenteredRect(cx, h*0.8, w*0.3, w*0.3), canvas.Hex("#ffeb3b"))
	case brushResults:
		g.sprite(s, "sparkle", canvas.CenteredRect(w*0.25, h*0.2, w*0.25, w*0.25), canvas.Hex("#ffeb3b"))
		g.sprite(s, "sparkle", canvas.CenteredRect(w*0.75, h*0.75, w*0.25, w*0.25), canvas.Hex("#ffeb3b"))
	}
}
