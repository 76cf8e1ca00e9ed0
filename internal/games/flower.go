package games

import (
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
)

const (
	targetFlowers  = 2
	flowerPulseFor = 700 * time.Millisecond
	flowerBurstFor = 1500 * time.Millisecond
	flowerFailFor  = 500 * time.Millisecond
)

var vaseX = [3]float64{0.2, 0.5, 0.8}

type vase struct {
	flowers int
	scale   float64
}

// Flower shows three vases holding one, two and three flowers in random
// order. Tapping the vase with two flowers wins.
type Flower struct {
	round
	vases  [3]vase
	target int
	step   int // 0 playing, 1 pulse, 2 burst
	stepAt time.Time
	frame  time.Time
}

func NewFlower() *Flower { return &Flower{} }

func (g *Flower) Title() *goi18n.Message {
	return &goi18n.Message{ID: "game_14_title", Other: "Find the vase with 2 flowers!"}
}

func (g *Flower) Init(env minigame.Env) {
	g.reset(env)
	counts := []int{1, 2, 3}
	env.Rand.Shuffle(len(counts), func(i, j int) { counts[i], counts[j] = counts[j], counts[i] })
	for i, n := range counts {
		g.vases[i] = vase{flowers: n, scale: 1}
		if n == targetFlowers {
			g.target = i
		}
	}
	g.step = 0
	g.frame = g.now()
}

func (g *Flower) Start() { g.draw() }

func (g *Flower) vaseRect(i int) canvas.Rect {
	s := g.env.Phone
	x, y := at(s, vaseX[i], 0.65)
	w, h := float64(s.Width())*0.24, float64(s.Height())*0.3
	return canvas.CenteredRect(x, y, w, h).Scale(g.vases[i].scale)
}

func (g *Flower) ButtonDown(pos canvas.Point) {
	if g.ended {
		return
	}
	for i := range g.vases {
		if !g.vaseRect(i).Contains(pos) {
			continue
		}
		if i == g.target {
			g.vases[i].scale = 1.1
			g.end(true)
			g.setStep(1)
			g.env.Tasks.After(flowerPulseFor, func() {
				g.setStep(2)
				g.resolveAfter(flowerBurstFor, true)
			})
		} else {
			g.vases[i].scale = 0.9
			if g.end(false) {
				g.resolveAfter(flowerFailFor, false)
			}
		}
		g.draw()
		return
	}
}

func (g *Flower) ButtonUp(time.Duration, canvas.Point) {}

func (g *Flower) OnTimeout() {
	if g.step == 0 && g.end(false) {
		g.resolveAfter(flowerFailFor, false)
	}
}

func (g *Flower) Animate(now time.Time) {
	g.frame = now
	if g.step > 0 {
		g.vases[g.target].scale = 1.1 + wobble(now.Sub(g.stepAt), 0.1, 700*time.Millisecond)
	}
	g.draw()
}

func (g *Flower) setStep(step int) {
	g.step = step
	g.stepAt = g.now()
	g.draw()
}

func (g *Flower) draw() {
	s := g.env.Phone
	if s == nil {
		return
	}
	s.Fill(canvas.Hex("#f1f8e9"))
	w, h := float64(s.Width()), float64(s.Height())
	s.FillRect(canvas.Rect{Y: h * 0.8, W: w, H: h * 0.2}, canvas.Hex("#d7ccc8"))

	for i, v := range g.vases {
		r := g.vaseRect(i)
		stem := r.W * 0.35
		for k := range v.flowers {
			x := r.X + r.W*float64(k+1)/float64(v.flowers+1) - stem/2
			g.sprite(s, "flower", canvas.Rect{X: x, Y: r.Y - r.H*0.8, W: stem, H: r.H}, canvas.Hex("#ff7043"))
		}
		g.sprite(s, "vase", r, canvas.Hex("#5c6bc0"))
	}

	if g.step == 0 {
		return
	}
	r := g.vaseRect(g.target)
	size := w * 0.3
	if g.step == 2 {
		size = w * 0.5
	}
	g.sprite(s, "sparkle", canvas.CenteredRect(r.X+r.W/2, r.Y-r.H*0.3, size, size), canvas.Hex("#ffeb3b"))
}
