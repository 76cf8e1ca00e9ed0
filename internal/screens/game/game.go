package game

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/timer"
	"github.com/antigravity/petit/internal/ui/keys"
	"github.com/antigravity/petit/internal/ui/layout"
)

// cursorSteps is how many arrow presses cross the phone.
const cursorSteps = 8

// GameScreen shows the phone and TV surfaces of the running game and turns
// key and mouse input into button presses on the phone.
type GameScreen struct {
	orch  *orchestrator.Orchestrator
	loc   *i18n.Localizer
	sched *sched.Scheduler
	grace time.Duration

	// cursor is where keyboard presses land on the phone.
	cursor canvas.Point

	// held is set while the button is down. release auto-releases a key
	// press after grace on terminals that never report key releases.
	held     bool
	heldAt   canvas.Point
	release  *sched.Scope
	releases bool

	// phoneCol and phoneRow locate the phone's top-left cell in the last
	// View, for mapping pointer events.
	phoneCol, phoneRow int
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)

// New creates a GameScreen. grace is how long a key press without a
// matching release stays down.
func New(orch *orchestrator.Orchestrator, loc *i18n.Localizer, s *sched.Scheduler, grace time.Duration) *GameScreen {
	return &GameScreen{
		orch:     orch,
		loc:      loc,
		sched:    s,
		grace:    grace,
		phoneCol: -1,
		phoneRow: -1,
	}
}

func (g *GameScreen) Init() tea.Cmd {
	g.cancelRelease()
	g.held = false
	g.cursor = centerOf(g.orch.Phone())
	return nil
}

func (g *GameScreen) Title() string {
	id, game := g.orch.Showing()
	return minigame.Title(game, id, g.loc)
}

// Status shows the whole seconds left in the header.
func (g *GameScreen) Status() string {
	secs := timer.DisplaySeconds(max(g.orch.Remaining(), 0))
	return g.loc.Localize(secondsLeft, map[string]any{"Seconds": secs})
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: g.loc.T("hint_press", "press")},
		{Key: "←↑↓→", Description: g.loc.T("hint_move", "move")},
		{Key: "P", Description: g.loc.T("hint_pause", "pause")},
		{Key: "Esc", Description: g.loc.T("hint_back", "back")},
	}
}

// Cursor returns where the next key press lands on the phone.
func (g *GameScreen) Cursor() canvas.Point {
	return g.cursor
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		g.handleKey(msg)
	case tea.KeyReleaseMsg:
		if key.Matches(msg, keys.Default.Button) {
			g.releases = true
			g.up(g.heldAt)
		}
	case screen.PointerMsg:
		g.handlePointer(msg)
	}
	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, keys.Default.Button):
		if !g.held {
			g.down(g.cursor)
		}
		if !g.releases {
			g.armRelease()
		}
	case key.Matches(msg, keys.Default.Pause):
		g.up(g.heldAt)
		g.orch.TogglePause()
	case key.Matches(msg, keys.Default.Back):
		g.cancelRelease()
		g.held = false
		g.orch.Abandon()
	case key.Matches(msg, keys.Default.Left):
		g.moveCursor(-1, 0)
	case key.Matches(msg, keys.Default.Right):
		g.moveCursor(1, 0)
	case key.Matches(msg, keys.Default.Up):
		g.moveCursor(0, -1)
	case key.Matches(msg, keys.Default.Down):
		g.moveCursor(0, 1)
	}
}

func (g *GameScreen) handlePointer(msg screen.PointerMsg) {
	pos, inside := g.pixelAt(msg.Col, msg.Row)
	if msg.Down {
		if !inside || g.held {
			return
		}
		g.cursor = pos
		g.down(pos)
		return
	}
	if g.held {
		g.cancelRelease()
		g.up(pos)
	}
}

func (g *GameScreen) down(pos canvas.Point) {
	g.held = true
	g.heldAt = pos
	g.orch.ButtonDown(pos)
}

func (g *GameScreen) up(pos canvas.Point) {
	if !g.held {
		return
	}
	g.held = false
	g.cancelRelease()
	g.orch.ButtonUp(pos)
}

func (g *GameScreen) armRelease() {
	g.cancelRelease()
	g.release = g.sched.NewScope()
	g.release.After(g.grace, func() {
		g.up(g.heldAt)
	})
}

func (g *GameScreen) cancelRelease() {
	g.release.Cancel()
	g.release = nil
}

func (g *GameScreen) moveCursor(dx, dy float64) {
	p := g.orch.Phone()
	w, h := float64(p.Width()), float64(p.Height())
	g.cursor.X = clamp(g.cursor.X+dx*w/cursorSteps, 0.5, w-0.5)
	g.cursor.Y = clamp(g.cursor.Y+dy*h/cursorSteps, 0.5, h-0.5)
}

// pixelAt maps a content cell to a phone pixel and reports whether the
// cell lies on the phone.
func (g *GameScreen) pixelAt(col, row int) (canvas.Point, bool) {
	c, r := col-g.phoneCol, row-g.phoneRow
	p := g.orch.Phone()
	inside := g.phoneCol >= 0 && c >= 0 && r >= 0 && c < p.Width() && r < canvas.Rows(p)
	return canvas.CellToPixel(c, r), inside
}

func centerOf(s *canvas.Surface) canvas.Point {
	return canvas.Point{X: float64(s.Width()) / 2, Y: float64(s.Height()) / 2}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
