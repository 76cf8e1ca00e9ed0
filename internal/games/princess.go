package games

import (
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
)

const (
	princessSuccessFor = 2 * time.Second
	princessFailAfter  = 500 * time.Millisecond
)

var towerX = [2]float64{0.28, 0.72}

type tower struct {
	longHair bool
	scale    float64
}

// Princess shows two towers with a princess each. Tapping the one with the
// long hair wins. The towers swap sides at random.
type Princess struct {
	round
	towers     [2]tower
	successAt  time.Time
	inSequence bool
	frame      time.Time
}

func NewPrincess() *Princess { return &Princess{} }

func (g *Princess) Title() *goi18n.Message {
	return &goi18n.Message{ID: "game_13_title", Other: "Rescue the princess with the looong hair!"}
}

func (g *Princess) Init(env minigame.Env) {
	g.reset(env)
	long := env.Rand.IntN(2)
	for i := range g.towers {
		g.towers[i] = tower{longHair: i == long, scale: 1}
	}
	g.inSequence = false
	g.successAt = time.Time{}
	g.frame = g.now()
}

func (g *Princess) Start() {
	g.draw(g.env.Phone)
	g.RenderTV()
}

func (g *Princess) towerRect(s *canvas.Surface, i int) canvas.Rect {
	x, y := at(s, towerX[i], 0.57)
	w, h := float64(s.Width())*0.22, float64(s.Height())*0.6
	return canvas.CenteredRect(x, y, w, h).Scale(g.towers[i].scale)
}

func (g *Princess) ButtonDown(pos canvas.Point) {
	if g.ended {
		return
	}
	for i := range g.towers {
		if !g.towerRect(g.env.Phone, i).Contains(pos) {
			continue
		}
		if g.towers[i].longHair {
			g.towers[i].scale = 1.05
			g.end(true)
			g.inSequence = true
			g.successAt = g.now()
			g.resolveAfter(princessSuccessFor, true)
		} else {
			g.towers[i].scale = 0.95
			g.env.Audio.Play(audio.CueClick)
			g.fail()
		}
		g.draw(g.env.Phone)
		return
	}
}

func (g *Princess) ButtonUp(time.Duration, canvas.Point) {}

func (g *Princess) OnTimeout() {
	if !g.inSequence {
		g.fail()
	}
}

func (g *Princess) fail() {
	if g.end(false) {
		g.resolveAfter(princessFailAfter, false)
	}
}

func (g *Princess) Animate(now time.Time) {
	g.frame = now
	g.draw(g.env.Phone)
}

// RenderTV draws the scene at the TV's own resolution instead of scaling
// the phone up.
func (g *Princess) RenderTV() {
	g.draw(g.env.TV)
}

func (g *Princess) draw(s *canvas.Surface) {
	if s == nil {
		return
	}
	s.Fill(canvas.Hex("#bbdefb"))
	w, h := float64(s.Width()), float64(s.Height())
	s.FillRect(canvas.Rect{Y: h * 0.85, W: w, H: h * 0.15}, canvas.Hex("#81c784"))

	sway := wobble(sinceEpoch(g.frame), w*0.01, 1885*time.Millisecond)
	for i, t := range g.towers {
		r := g.towerRect(s, i)
		name, fallback := "princess_short", canvas.Hex("#6d4c41")
		if t.longHair {
			name, fallback = "princess_long", canvas.Hex("#fdd835")
			r.X += sway
		}
		g.sprite(s, name, r, fallback)
	}

	px, py := at(s, 0.5, 0.75)
	g.sprite(s, "prince", canvas.CenteredRect(px, py, w*0.14, h*0.2), canvas.Hex("#1e88e5"))

	if !g.inSequence {
		// The prince's question mark blinks.
		if sinceEpoch(g.frame)/(400*time.Millisecond)%2 == 0 {
			s.FillEllipse(canvas.CenteredRect(px, py-h*0.15, w*0.05, w*0.05), canvas.Hex("#ffffff"))
		}
		return
	}

	// Hearts rise from the rescued princess and fade.
	for i, t := range g.towers {
		if !t.longHair {
			continue
		}
		r := g.towerRect(s, i)
		elapsed := g.frame.Sub(g.successAt)
		for k := range 3 {
			local := elapsed - time.Duration(k)*250*time.Millisecond
			if local < 0 || local > princessSuccessFor {
				continue
			}
			rise := h * 0.3 * float64(local) / float64(princessSuccessFor)
			size := w * 0.1
			x := r.X + r.W*float64(k)/2
			g.sprite(s, "heart", canvas.CenteredRect(x, r.Y-rise, size, size), canvas.Hex("#ff4081"))
		}
	}
}
