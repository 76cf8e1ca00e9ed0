package games

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/petit/internal/assets"
	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/sched/schedtest"
)

type cueSink struct{ cues []audio.Cue }

func (s *cueSink) Emit(c audio.Cue) error {
	s.cues = append(s.cues, c)
	return nil
}

type fixture struct {
	env     minigame.Env
	drv     *schedtest.Driver
	sink    *cueSink
	results []bool
}

func newFixture(seed uint64) *fixture {
	clock := clockwork.NewFakeClock()
	s := sched.New()
	f := &fixture{sink: &cueSink{}}
	f.env = minigame.Env{
		Phone: canvas.New(36, 48),
		TV:    canvas.New(64, 36),
		Tasks: s.NewScope(),
		Audio: audio.New(f.sink, s, nil),
		Clock: clock,
		Rand:  rand.New(rand.NewPCG(seed, 7)),
		Resolve: func(success bool) {
			f.results = append(f.results, success)
		},
	}
	f.drv = schedtest.New(clock, s)
	return f
}

func (f *fixture) play(g minigame.Game) {
	g.Init(f.env)
	g.Start()
}

func center(r canvas.Rect) canvas.Point {
	return canvas.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func TestRegisterAll(t *testing.T) {
	r := minigame.NewRegistry()
	require.NoError(t, RegisterAll(r))
	assert.Equal(t, []int{11, 12, 13, 14, 15}, r.IDs())

	for _, id := range r.IDs() {
		g, _ := r.Lookup(id)
		titled, ok := g.(minigame.Titled)
		require.True(t, ok, "game %d has a title", id)
		assert.Equal(t, fmt.Sprintf("game_%d_title", id), titled.Title().ID)
		_, ok = g.(minigame.TimeoutHandler)
		assert.True(t, ok, "game %d handles timeouts", id)
	}
}

func TestGamesDrawWithSprites(t *testing.T) {
	r := minigame.NewRegistry()
	require.NoError(t, RegisterAll(r))
	lib := assets.New(nil, nil)

	for _, id := range r.IDs() {
		g, _ := r.Lookup(id)
		f := newFixture(1)
		f.env.Assets = lib
		f.play(g)
		if a, ok := g.(minigame.Animator); ok {
			a.Animate(f.env.Clock.Now().Add(100 * time.Millisecond))
		}
		if tv, ok := g.(minigame.TVRenderer); ok {
			tv.RenderTV()
		}
		assert.Equal(t, uint8(0xff), f.env.Phone.At(18, 2).A, "game %d paints a background", id)
	}
}

func TestBrushingRequiredPresses(t *testing.T) {
	for seed := range uint64(50) {
		f := newFixture(seed)
		g := NewBrushing()
		f.play(g)
		assert.GreaterOrEqual(t, g.required, 5)
		assert.LessOrEqual(t, g.required, 10)
	}
}

func TestBrushingSuccessSequence(t *testing.T) {
	f := newFixture(3)
	g := NewBrushing()
	f.play(g)

	for range g.required {
		g.ButtonDown(canvas.Point{})
	}
	assert.Equal(t, brushDone, g.stage)
	assert.Empty(t, f.results)

	f.drv.Advance(time.Second)
	assert.Equal(t, brushResults, g.stage)
	assert.Empty(t, f.results)

	f.drv.Advance(time.Second)
	assert.Equal(t, []bool{true}, f.results)
	assert.Contains(t, f.sink.cues, audio.CueDing)
}

func TestBrushingTimeout(t *testing.T) {
	f := newFixture(4)
	g := NewBrushing()
	f.play(g)
	g.ButtonDown(canvas.Point{})

	g.OnTimeout()
	g.ButtonDown(canvas.Point{})
	assert.Equal(t, 1, g.presses, "presses after the end are ignored")
	assert.Equal(t, brushFailed, g.stage)

	f.drv.Advance(499 * time.Millisecond)
	assert.Empty(t, f.results)
	f.drv.Advance(time.Millisecond)
	assert.Equal(t, []bool{false}, f.results)
}

func TestBrushingTimeoutAfterSuccessIsIgnored(t *testing.T) {
	f := newFixture(5)
	g := NewBrushing()
	f.play(g)
	for range g.required {
		g.ButtonDown(canvas.Point{})
	}
	g.OnTimeout()

	f.drv.Advance(3 * time.Second)
	assert.Equal(t, []bool{true}, f.results)
}

func TestCakeLevel(t *testing.T) {
	for seed := range uint64(50) {
		f := newFixture(seed)
		g := NewCake()
		f.play(g)

		fours := 0
		for _, p := range g.plates {
			if p.cakes == targetCakes {
				fours++
				continue
			}
			assert.GreaterOrEqual(t, p.cakes, 1)
			assert.LessOrEqual(t, p.cakes, 3)
		}
		assert.Equal(t, 1, fours)
	}
}

func cakeTarget(g *Cake) (right, wrong int) {
	right, wrong = -1, -1
	for i, p := range g.plates {
		if p.cakes == targetCakes {
			right = i
		} else {
			wrong = i
		}
	}
	return right, wrong
}

func TestCakeRightPlate(t *testing.T) {
	f := newFixture(8)
	g := NewCake()
	f.play(g)
	right, _ := cakeTarget(g)
	pos, _ := g.plateCenter(right)

	g.ButtonDown(pos)
	f.drv.Advance(999 * time.Millisecond)
	assert.Empty(t, f.results)
	f.drv.Advance(time.Millisecond)
	assert.Equal(t, []bool{true}, f.results)
}

func TestCakeWrongPlate(t *testing.T) {
	f := newFixture(8)
	g := NewCake()
	f.play(g)
	right, wrong := cakeTarget(g)
	wrongPos, _ := g.plateCenter(wrong)
	rightPos, _ := g.plateCenter(right)

	g.ButtonDown(wrongPos)
	g.ButtonDown(rightPos)
	f.drv.Advance(time.Second)
	assert.Equal(t, []bool{false}, f.results)
}

func TestCakeMissIsIgnored(t *testing.T) {
	f := newFixture(8)
	g := NewCake()
	f.play(g)

	g.ButtonDown(canvas.Point{X: 18, Y: 2})
	assert.False(t, g.ended)
	f.drv.Advance(time.Second)
	assert.Empty(t, f.results)
}

func princessTowers(g *Princess) (long, short int) {
	if g.towers[0].longHair {
		return 0, 1
	}
	return 1, 0
}

func TestPrincessSidesAreRandom(t *testing.T) {
	seen := map[int]bool{}
	for seed := range uint64(30) {
		f := newFixture(seed)
		g := NewPrincess()
		f.play(g)
		long, _ := princessTowers(g)
		seen[long] = true
	}
	assert.Len(t, seen, 2)
}

func TestPrincessRescue(t *testing.T) {
	f := newFixture(2)
	g := NewPrincess()
	f.play(g)
	long, _ := princessTowers(g)

	g.ButtonDown(center(g.towerRect(f.env.Phone, long)))
	assert.True(t, g.inSequence)
	g.OnTimeout()

	f.drv.Advance(princessSuccessFor - time.Millisecond)
	assert.Empty(t, f.results)
	f.drv.Advance(time.Millisecond)
	assert.Equal(t, []bool{true}, f.results)
}

func TestPrincessWrongTower(t *testing.T) {
	f := newFixture(2)
	g := NewPrincess()
	f.play(g)
	_, short := princessTowers(g)

	g.ButtonDown(center(g.towerRect(f.env.Phone, short)))
	assert.Contains(t, f.sink.cues, audio.CueFail)
	f.drv.Advance(princessFailAfter)
	assert.Equal(t, []bool{false}, f.results)
}

func TestPrincessRendersOwnTV(t *testing.T) {
	f := newFixture(2)
	g := NewPrincess()
	f.play(g)

	g.RenderTV()
	assert.Equal(t, uint8(0xff), f.env.TV.At(1, 1).A)
}

func TestFlowerLevel(t *testing.T) {
	f := newFixture(6)
	g := NewFlower()
	f.play(g)

	got := map[int]bool{}
	for _, v := range g.vases {
		got[v.flowers] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, got)
	assert.Equal(t, targetFlowers, g.vases[g.target].flowers)
}

func TestFlowerSuccessSequence(t *testing.T) {
	f := newFixture(6)
	g := NewFlower()
	f.play(g)

	g.ButtonDown(center(g.vaseRect(g.target)))
	assert.Equal(t, 1, g.step)
	g.OnTimeout()

	f.drv.Advance(flowerPulseFor)
	assert.Equal(t, 2, g.step)
	assert.Empty(t, f.results)

	f.drv.Advance(flowerBurstFor)
	assert.Equal(t, []bool{true}, f.results)
}

func TestFlowerWrongVase(t *testing.T) {
	f := newFixture(6)
	g := NewFlower()
	f.play(g)
	wrong := (g.target + 1) % len(g.vases)

	g.ButtonDown(center(g.vaseRect(wrong)))
	f.drv.Advance(flowerFailFor)
	assert.Equal(t, []bool{false}, f.results)
	assert.Zero(t, g.step)
}

func TestGrapeFillsAndWins(t *testing.T) {
	f := newFixture(1)
	g := NewGrape()
	f.play(g)

	for range grapeSpots + 3 {
		g.ButtonDown(canvas.Point{})
	}
	assert.Equal(t, grapeSpots, g.filled)
	g.OnTimeout()

	f.drv.Advance(grapeSuccessIn)
	assert.Equal(t, []bool{true}, f.results)
}

func TestGrapeTimeoutWithEmptySpots(t *testing.T) {
	f := newFixture(1)
	g := NewGrape()
	f.play(g)
	for range 3 {
		g.ButtonDown(canvas.Point{})
	}

	g.OnTimeout()
	assert.True(t, g.failing)
	g.ButtonDown(canvas.Point{})
	assert.Equal(t, 3, g.filled)

	f.drv.Advance(grapeFailSlide)
	assert.Equal(t, []bool{false}, f.results)
}
