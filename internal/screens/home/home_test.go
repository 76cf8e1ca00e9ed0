package home

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/timer"
)

type namedGame struct {
	title string
	env   minigame.Env
}

func (g *namedGame) Init(env minigame.Env)                { g.env = env }
func (g *namedGame) Start()                               {}
func (g *namedGame) ButtonDown(canvas.Point)              {}
func (g *namedGame) ButtonUp(time.Duration, canvas.Point) {}
func (g *namedGame) Title() *goi18n.Message               { return &goi18n.Message{ID: "x_" + g.title, Other: g.title} }

type cueSink struct{ cues []audio.Cue }

func (s *cueSink) Emit(c audio.Cue) error {
	s.cues = append(s.cues, c)
	return nil
}

func newHome(t *testing.T) (*HomeScreen, *orchestrator.Orchestrator, *cueSink) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	s := sched.New()
	sink := &cueSink{}
	em := audio.New(sink, s, nil)
	reg := minigame.NewRegistry()
	for id, title := range map[int]string{11: "Brush", 12: "Cake", 13: "Princess"} {
		if err := reg.Register(id, &namedGame{title: title}); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	o := orchestrator.New(orchestrator.Options{
		Registry:  reg,
		Timer:     timer.New(clock, s, timer.Config{}),
		Scheduler: s,
		Phone:     canvas.New(8, 12),
		TV:        canvas.New(16, 9),
		Audio:     em,
		Clock:     clock,
	})
	return New(o, reg, i18n.English(), em), o, sink
}

func TestHomeScreen_ListsGamesInOrder(t *testing.T) {
	h, _, _ := newHome(t)
	labels := h.menu.Labels()

	want := []string{"1. Brush", "2. Cake", "3. Princess", "Quit"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestHomeScreen_EnterStartsSelectedGame(t *testing.T) {
	h, o, sink := newHome(t)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	id, _ := o.Showing()
	if o.State() != orchestrator.StateInGame || id != 12 {
		t.Errorf("state = %v showing %d, want in-game 12", o.State(), id)
	}
	if len(sink.cues) == 0 || sink.cues[0] != audio.CueClick {
		t.Errorf("expected a click cue first, got %v", sink.cues)
	}
}

func TestHomeScreen_DigitPicksGame(t *testing.T) {
	h, o, _ := newHome(t)

	h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})

	if id, _ := o.Showing(); id != 13 {
		t.Errorf("showing %d, want 13", id)
	}
}

func TestHomeScreen_DigitOutOfRangeIgnored(t *testing.T) {
	h, o, _ := newHome(t)

	h.Update(tea.KeyPressMsg{Code: '9', Text: "9"})

	if o.State() != orchestrator.StateHome {
		t.Errorf("state = %v, want home", o.State())
	}
}

func TestHomeScreen_QuitItem(t *testing.T) {
	h, _, _ := newHome(t)

	h.menu.Selected = len(h.menu.Items) - 1
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestHomeScreen_ClickStartsGame(t *testing.T) {
	h, o, _ := newHome(t)
	h.View(120, 40)

	if len(h.hits) != 4 {
		t.Fatalf("expected 4 hit boxes, got %d", len(h.hits))
	}
	h.Update(screen.PointerMsg{Col: 60, Row: h.hits[1].Start, Down: true})

	if id, _ := o.Showing(); o.State() != orchestrator.StateInGame || id != 12 {
		t.Errorf("state = %v showing %d, want in-game 12", o.State(), id)
	}
}

func TestHomeScreen_ClickReleaseIgnored(t *testing.T) {
	h, o, _ := newHome(t)
	h.View(120, 40)

	h.Update(screen.PointerMsg{Col: 60, Row: h.hits[0].Start})

	if o.State() != orchestrator.StateHome {
		t.Errorf("state = %v, want home", o.State())
	}
}

func TestHomeScreen_MascotFollowsLastOutcome(t *testing.T) {
	h, o, _ := newHome(t)
	if h.Mascot() != MascotIdle {
		t.Errorf("mascot = %v, want idle", h.Mascot())
	}

	o.SelectGame(11)
	o.Outcome(true)
	if h.Mascot() != MascotCheer {
		t.Errorf("mascot = %v, want cheer", h.Mascot())
	}

	o.GoHome()
	o.SelectGame(12)
	o.Outcome(false)
	if h.Mascot() != MascotSulk {
		t.Errorf("mascot = %v, want sulk", h.Mascot())
	}
}

func TestHomeScreen_ViewShowsGames(t *testing.T) {
	h, _, _ := newHome(t)
	view := h.View(120, 40)
	for _, want := range []string{"Brush", "Cake", "Princess", "Pick a game"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in the view", want)
		}
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h, _, _ := newHome(t)
	view := h.View(80, 18)
	if !strings.Contains(view, arcadeTitleCompact) {
		t.Error("expected the compact title on a small terminal")
	}
}
