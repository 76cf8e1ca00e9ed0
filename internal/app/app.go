package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jonboulle/clockwork"

	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/router"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/ui/keys"
	"github.com/antigravity/petit/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	orch   *orchestrator.Orchestrator
	sched  *sched.Scheduler
	loc    *i18n.Localizer
	clock  clockwork.Clock

	// frames drives Orchestrator.Frame at frameRate.
	frames    *sched.Scope
	frameRate time.Duration
	startGame int

	minWidth  int
	minHeight int
	width     int
	height    int
}

// Orchestrator exposes the state machine behind the model.
func (m AppModel) Orchestrator() *orchestrator.Orchestrator { return m.orch }

func (m AppModel) Init() tea.Cmd {
	m.frames.Every(m.frameRate, func() {
		m.orch.Frame(m.clock.Now())
	})
	if m.startGame != 0 {
		m.orch.SelectGame(m.startGame)
	}
	return tea.Batch(m.router.Show(m.orch.Visible()), m.sched.Flush())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case sched.FiredMsg:
		m.sched.Handle(msg)

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Default.Quit) {
			return m, tea.Quit
		}
		cmd = m.router.Update(msg)

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			cmd = m.router.Update(pointer(msg.Mouse(), true))
		}

	case tea.MouseReleaseMsg:
		if msg.Button == tea.MouseLeft {
			cmd = m.router.Update(pointer(msg.Mouse(), false))
		}

	default:
		cmd = m.router.Update(msg)
	}

	// Screens act on the orchestrator directly; follow whatever it shows
	// now and arm any task scheduled along the way.
	return m, tea.Batch(cmd, m.router.Show(m.orch.Visible()), m.sched.Flush())
}

// pointer converts a mouse event to content coordinates below the header.
func pointer(ev tea.Mouse, down bool) screen.PointerMsg {
	return screen.PointerMsg{Col: ev.X, Row: ev.Y - layout.HeaderHeight, Down: down}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.KeyboardEnhancements.ReportEventTypes = true
	v.WindowTitle = m.brand()
	return v
}

func (m AppModel) brand() string {
	return m.loc.T("app_title", "Petit Arcade")
}

// render draws the whole frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < m.minWidth || m.height < m.minHeight {
		return layout.RenderMinSizeMessage(m.width, m.height, m.minWidth, m.minHeight)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(m.brand(), title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: m.loc.T("hint_quit", "quit")},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, m AppModel) error {
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
