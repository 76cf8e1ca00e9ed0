package result

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/assets"
	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/ui/components"
	"github.com/antigravity/petit/internal/ui/keys"
	"github.com/antigravity/petit/internal/ui/layout"
	"github.com/antigravity/petit/internal/ui/theme"
)

// Result art size in pixels.
const (
	artWidth  = 40
	artHeight = 24
)

const buttonWidth = 14

var (
	retryKey   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"))
	resultTime = &goi18n.Message{ID: "result_time", Other: "Time: {{.Time}}"}
)

// ResultScreen shows the outcome art with retry and home buttons.
type ResultScreen struct {
	orch   *orchestrator.Orchestrator
	loc    *i18n.Localizer
	audio  *audio.Emitter
	assets *assets.Library

	menu components.Menu

	// Button hit boxes from the last View, in content cells.
	row  components.Span
	cols []components.Span
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. lib may be nil, in which case the art is a
// plain color block.
func New(orch *orchestrator.Orchestrator, loc *i18n.Localizer, em *audio.Emitter, lib *assets.Library) *ResultScreen {
	r := &ResultScreen{orch: orch, loc: loc, audio: em, assets: lib}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: loc.T("button_retry", "Retry"), Action: func() tea.Cmd {
			r.audio.Play(audio.CueClick)
			r.orch.Retry()
			return nil
		}},
		{Label: loc.T("button_home", "Home"), Action: func() tea.Cmd {
			r.audio.Play(audio.CueClick)
			r.orch.GoHome()
			return nil
		}},
	})
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	r.menu.Selected = 0
	return nil
}

func (r *ResultScreen) Title() string {
	if r.success() {
		return r.loc.T("result_success", "Success!")
	}
	return r.loc.T("result_fail", "So close!")
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: r.loc.T("hint_move", "move")},
		{Key: "Enter", Description: r.loc.T("hint_select", "select")},
		{Key: "R", Description: r.loc.T("button_retry", "Retry")},
		{Key: "Esc", Description: r.loc.T("button_home", "Home")},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, retryKey):
			return r, r.menu.Activate(0)
		case key.Matches(msg, keys.Default.Back):
			return r, r.menu.Activate(1)
		}
	case screen.PointerMsg:
		if !msg.Down || !r.row.Contains(msg.Row) {
			return r, nil
		}
		for i, span := range r.cols {
			if span.Contains(msg.Col) {
				return r, r.menu.Activate(i)
			}
		}
		return r, nil
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	caption := theme.Lose
	if r.success() {
		caption = theme.Win
	}

	var b strings.Builder
	b.WriteString(center.Render(canvas.Render(r.art())))
	b.WriteString("\n\n")
	b.WriteString(center.Render(caption.Render(r.Title())))
	if out, ok := r.orch.LastOutcome(); ok {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			r.loc.Localize(resultTime, map[string]any{"Time": formatDuration(out.Duration)})))
	}
	b.WriteString("\n\n")
	above := b.String()

	row, spans := components.ArcadeRow(r.menu.Labels(), r.menu.Selected, buttonWidth)
	content := above + center.Render(row)

	// Every line is cw wide; the frame centers it inside its border.
	top := components.CabinetTop(strings.Count(content, "\n")+1, height)
	left := 1 + max(width-2-cw, 0)/2 + max(cw-lipgloss.Width(row), 0)/2
	rowTop := top + strings.Count(above, "\n")
	r.row = components.Span{Start: rowTop, End: rowTop + lipgloss.Height(row)}
	r.cols = r.cols[:0]
	for _, s := range spans {
		r.cols = append(r.cols, s.Shift(left))
	}

	return components.CabinetFrame(content, width, height)
}

func (r *ResultScreen) success() bool {
	out, ok := r.orch.LastOutcome()
	return ok && out.Success
}

// art draws the chosen result sprite.
func (r *ResultScreen) art() *canvas.Surface {
	s := canvas.New(artWidth, artHeight)
	var fallback color.Color = theme.Error
	if r.success() {
		fallback = theme.Success
	}
	name := r.orch.ResultArt()
	if r.assets == nil || name == "" {
		s.FillRect(s.Bounds(), fallback)
		return s
	}
	r.assets.Draw(s, name, s.Bounds(), fallback)
	return s
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
