package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/config"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/ui/layout"
)

func newModel(t *testing.T, start int) (AppModel, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	cfg := config.Default()
	cfg.Seed = 7
	m, err := New(Options{Config: cfg, Clock: clock, Sink: audio.NopSink{}, StartGame: start})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, clock
}

func update(m AppModel, msg tea.Msg) AppModel {
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestNewRejectsBadLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "not a locale!"
	if _, err := New(Options{Config: cfg, Sink: audio.NopSink{}}); err == nil {
		t.Error("expected an error for a malformed locale")
	}
}

func TestInitStartsFrameLoop(t *testing.T) {
	m, _ := newModel(t, 0)
	m.Init()

	var found bool
	for _, id := range m.sched.Pending() {
		if d, ok := m.sched.Interval(id); ok && d == config.Default().FrameInterval() {
			found = true
		}
	}
	if !found {
		t.Error("expected a repeating frame task")
	}
}

func TestInitSelectsStartGame(t *testing.T) {
	m, _ := newModel(t, 13)
	m.Init()

	if m.orch.State() != orchestrator.StateInGame {
		t.Errorf("state = %v, want in-game", m.orch.State())
	}
	if m.router.Current() != orchestrator.StateInGame {
		t.Errorf("router shows %v, want in-game", m.router.Current())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newModel(t, 0)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRouterFollowsOrchestrator(t *testing.T) {
	m, _ := newModel(t, 0)
	m.Init()

	m = update(m, tea.KeyPressMsg{Code: '1', Text: "1"})

	if m.router.Current() != orchestrator.StateInGame {
		t.Errorf("router shows %v, want in-game", m.router.Current())
	}
	if id, _ := m.orch.Showing(); id != 11 {
		t.Errorf("showing %d, want 11", id)
	}
}

func TestFiredMsgDrivesCountdown(t *testing.T) {
	m, clock := newModel(t, 11)
	m.Init()
	interval := config.Default().TimerInterval

	var timerTask sched.TaskID
	for _, id := range m.sched.Pending() {
		if d, _ := m.sched.Interval(id); d == interval {
			timerTask = id
		}
	}
	if timerTask == 0 {
		t.Fatal("expected a countdown task")
	}

	clock.Advance(config.Default().RoundDuration)
	m = update(m, sched.FiredMsg{ID: timerTask})

	if _, ok := m.sched.Interval(timerTask); ok {
		t.Error("expected the countdown to finish and drop its task")
	}
	if got := m.orch.Remaining(); got != 0 {
		t.Errorf("remaining = %v, want 0", got)
	}
}

func TestPointerMapsBelowHeader(t *testing.T) {
	got := pointer(tea.Mouse{X: 12, Y: 10}, true)
	want := screen.PointerMsg{Col: 12, Row: 10 - layout.HeaderHeight, Down: true}
	if got != want {
		t.Errorf("pointer = %+v, want %+v", got, want)
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newModel(t, 0)
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if out := m.render(); !strings.Contains(out, "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestViewShowsHeaderAndFooter(t *testing.T) {
	m, _ := newModel(t, 0)
	m.Init()
	m = update(m, tea.WindowSizeMsg{Width: 140, Height: 50})

	out := m.render()
	for _, want := range []string{"Petit Arcade", "Pick a game", "Ctrl+C"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in the frame", want)
		}
	}
}

func TestViewDuringGameShowsCountdown(t *testing.T) {
	m, _ := newModel(t, 12)
	m.Init()
	m = update(m, tea.WindowSizeMsg{Width: 140, Height: 50})

	if out := m.render(); !strings.Contains(out, "5s") {
		t.Error("expected the seconds left in the frame")
	}
}

func TestMinSizeCoversSurfaces(t *testing.T) {
	m, _ := newModel(t, 0)
	if m.minWidth < config.Default().Phone.Width+config.Default().TV.Width {
		t.Errorf("min width %d is narrower than both surfaces", m.minWidth)
	}
	if m.minHeight < layout.MinHeight {
		t.Errorf("min height %d below the layout minimum", m.minHeight)
	}
}
