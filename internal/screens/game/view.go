package game

import (
	"charm.land/lipgloss/v2"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/ui/components"
	"github.com/antigravity/petit/internal/ui/theme"
)

var secondsLeft = &goi18n.Message{ID: "seconds_left", Other: "{{.Seconds}}s"}

var cursorColor = canvas.Hex("#FACC15")

// panelGap separates the phone and TV panels.
const panelGap = "  "

func (g *GameScreen) View(width, height int) string {
	phone := g.renderPhone()
	tv := g.renderTV()

	block := lipgloss.JoinHorizontal(lipgloss.Top, phone, panelGap, tv)
	if g.orch.Paused() {
		block = lipgloss.JoinVertical(lipgloss.Center, block, "", renderPaused(g.loc.T("paused", "Paused")))
	}

	bw, bh := lipgloss.Width(block), lipgloss.Height(block)
	// The phone panel starts at the block's top-left; add its border.
	g.phoneCol = max(width-bw, 0)/2 + 1
	g.phoneRow = max(height-bh, 0)/2 + 1

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(block)
}

// renderPhone draws the phone surface with the keyboard cursor on top.
func (g *GameScreen) renderPhone() string {
	s := g.orch.Phone().Clone()
	c := g.cursor
	s.FillRect(canvas.CenteredRect(c.X, c.Y, 5, 1), cursorColor)
	s.FillRect(canvas.CenteredRect(c.X, c.Y, 1, 4), cursorColor)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadePink).
		Render(canvas.Render(s))
}

// renderTV draws the title bar, the countdown gauge and the TV surface.
func (g *GameScreen) renderTV() string {
	tv := g.orch.TV()
	w := tv.Width()

	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(w).
		Align(lipgloss.Center).
		Render(g.Title())

	gauge := components.NewGauge(g.orch.Remaining(), g.orch.RoundDuration(), w).View()

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, gauge, canvas.Render(tv)))
}

func renderPaused(text string) string {
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Bold(true).
		Padding(0, 2).
		Render("⏸ " + text)
}

// PanelSize returns the content size the game screen needs for phone and
// tv surfaces, including the paused banner.
func PanelSize(phone, tv *canvas.Surface) (int, int) {
	w := phone.Width() + 2 + len(panelGap) + tv.Width() + 2
	h := max(canvas.Rows(phone)+2, canvas.Rows(tv)+4) + 2
	return w, h
}
