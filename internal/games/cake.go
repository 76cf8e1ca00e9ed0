package games

import (
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
)

const (
	plateCount  = 4
	targetCakes = 4
	waddleFor   = 600 * time.Millisecond
)

var plateX = [plateCount]float64{0.14, 0.38, 0.62, 0.86}

type plate struct {
	cakes      int
	waddleFrom time.Time
}

// Cake shows four plates. Exactly one holds four cakes; the others hold one
// to three. Tapping the four-cake plate wins.
type Cake struct {
	round
	plates [plateCount]plate
	frame  time.Time
}

func NewCake() *Cake { return &Cake{} }

func (g *Cake) Title() *goi18n.Message {
	return &goi18n.Message{ID: "game_12_title", Other: "Find the plate with 4 tasty cakes!"}
}

func (g *Cake) Init(env minigame.Env) {
	g.reset(env)
	counts := []int{targetCakes}
	for range plateCount - 1 {
		counts = append(counts, 1+env.Rand.IntN(3))
	}
	env.Rand.Shuffle(len(counts), func(i, j int) { counts[i], counts[j] = counts[j], counts[i] })
	for i := range g.plates {
		g.plates[i] = plate{cakes: counts[i]}
	}
	g.frame = g.now()
}

func (g *Cake) Start() { g.draw() }

// plateCenter returns the center of plate i and its hit radius.
func (g *Cake) plateCenter(i int) (canvas.Point, float64) {
	s := g.env.Phone
	x, y := at(s, plateX[i], 0.85)
	return canvas.Point{X: x, Y: y}, float64(s.Width()) * 0.11
}

// hit returns the index of the plate under pos, or -1.
func (g *Cake) hit(pos canvas.Point) int {
	for i := range g.plates {
		c, r := g.plateCenter(i)
		dx, dy := pos.X-c.X, pos.Y-c.Y
		if dx*dx+dy*dy <= r*r {
			return i
		}
	}
	return -1
}

func (g *Cake) ButtonDown(pos canvas.Point) {
	if g.ended {
		return
	}
	i := g.hit(pos)
	if i < 0 {
		return
	}
	g.plates[i].waddleFrom = g.now()

	success := g.plates[i].cakes == targetCakes
	if g.end(success) {
		g.resolveAfter(time.Second, success)
	}
	g.draw()
}

func (g *Cake) ButtonUp(time.Duration, canvas.Point) {}

func (g *Cake) OnTimeout() {
	if g.end(false) {
		g.resolveAfter(time.Second, false)
	}
}

func (g *Cake) Animate(now time.Time) {
	g.frame = now
	g.draw()
}

func (g *Cake) draw() {
	s := g.env.Phone
	if s == nil {
		return
	}
	s.Fill(canvas.Hex("#fff3e0"))
	w, h := float64(s.Width()), float64(s.Height())
	s.FillRect(canvas.Rect{Y: h * 0.78, W: w, H: h * 0.22}, canvas.Hex("#bcaaa4"))

	cake := w * 0.09
	for i, p := range g.plates {
		c, r := g.plateCenter(i)
		if since := g.frame.Sub(p.waddleFrom); !p.waddleFrom.IsZero() && since >= 0 && since < waddleFor {
			c.X += wobble(since, r*0.3, 150*time.Millisecond)
		}
		g.sprite(s, "plate", canvas.CenteredRect(c.X, c.Y, r*2, r), canvas.Hex("#ffffff"))

		// Cakes stack two per row, bottom up.
		for k := range p.cakes {
			col, row := float64(k%2), float64(k/2)
			x := c.X - cake/2 + col*cake - cake/2
			if p.cakes == 1 {
				x = c.X - cake/2
			}
			y := c.Y - r*0.3 - (row+1)*cake
			g.sprite(s, "cake", canvas.Rect{X: x, Y: y, W: cake, H: cake}, canvas.Hex("#d7a86e"))
		}
	}
}
