package home

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/ui/components"
	"github.com/antigravity/petit/internal/ui/layout"
)

// HomeScreen lists the registered games.
type HomeScreen struct {
	orch  *orchestrator.Orchestrator
	loc   *i18n.Localizer
	audio *audio.Emitter

	menu components.Menu
	ids  []int

	// hits holds the row span of each menu item from the last View.
	hits []components.Span
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with one entry per game in reg, in id order,
// followed by a quit entry.
func New(orch *orchestrator.Orchestrator, reg *minigame.Registry, loc *i18n.Localizer, em *audio.Emitter) *HomeScreen {
	h := &HomeScreen{orch: orch, loc: loc, audio: em, ids: reg.IDs()}

	items := make([]components.MenuItem, 0, len(h.ids)+1)
	for i, id := range h.ids {
		g, _ := reg.Lookup(id)
		label := strconv.Itoa(i+1) + ". " + minigame.Title(g, id, loc)
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			h.audio.Play(audio.CueClick)
			h.orch.SelectGame(id)
			return nil
		}})
	}
	items = append(items, components.MenuItem{Label: loc.T("button_quit", "Quit"), Action: func() tea.Cmd {
		return tea.Quit
	}})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return h.loc.T("home_prompt", "Pick a game")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.loc.T("hint_move", "move")},
		{Key: "Enter", Description: h.loc.T("hint_select", "select")},
		{Key: "Ctrl+C", Description: h.loc.T("hint_quit", "quit")},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Digits pick a game directly.
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(h.ids) {
			return h, h.menu.Activate(n - 1)
		}
	case screen.PointerMsg:
		if !msg.Down {
			return h, nil
		}
		for i, span := range h.hits {
			if span.Contains(msg.Row) {
				return h, h.menu.Activate(i)
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Mascot picks the mascot for the last finished round.
func (h *HomeScreen) Mascot() MascotVariant {
	out, ok := h.orch.LastOutcome()
	switch {
	case !ok:
		return MascotIdle
	case out.Success:
		return MascotCheer
	default:
		return MascotSulk
	}
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.Mascot(), cw))
	}
	sections = append(sections, renderPrompt(h.Title(), cw))

	var menu string
	var spans []components.Span
	if compact {
		menu, spans = renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw)
	} else {
		menu, spans = renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw)
	}

	above := strings.Join(sections, "\n\n") + "\n\n"
	content := above + menu

	top := components.CabinetTop(strings.Count(content, "\n")+1, height)
	offset := top + strings.Count(above, "\n")
	h.hits = h.hits[:0]
	for _, s := range spans {
		h.hits = append(h.hits, s.Shift(offset))
	}

	return components.CabinetFrame(content, width, height)
}
