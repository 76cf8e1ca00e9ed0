package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/antigravity/petit/internal/ui/components"
	"github.com/antigravity/petit/internal/ui/theme"
)

const arcadeTitleFull = ` ██████╗ ███████╗████████╗██╗████████╗
 ██╔══██╗██╔════╝╚══██╔══╝██║╚══██╔══╝
 ██████╔╝█████╗     ██║   ██║   ██║
 ██╔═══╝ ██╔══╝     ██║   ██║   ██║
 ██║     ███████╗   ██║   ██║   ██║
 ╚═╝     ╚══════╝   ╚═╝   ╚═╝   ╚═╝`

const arcadeTitleCompact = "P · E · T · I · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center)

	if compact {
		return style.Render(arcadeTitleCompact)
	}
	return style.Render(arcadeTitleFull)
}

// renderPrompt renders the line above the game list.
func renderPrompt(text string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderArcadeMenu renders each item as a bordered button, one per row,
// and returns the row span of each button relative to the block.
func renderArcadeMenu(items []string, selected int, cw int) (string, []components.Span) {
	bw := min(cw, 44)
	buttons := make([]string, 0, len(items))
	spans := make([]components.Span, 0, len(items))
	y := 0
	for i, label := range items {
		b := components.ArcadeButton(label, i == selected, bw)
		h := lipgloss.Height(b)
		spans = append(spans, components.Span{Start: y, End: y + h})
		buttons = append(buttons, b)
		y += h
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n")), spans
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) (string, []components.Span) {
	lines := make([]string, 0, len(items))
	spans := make([]components.Span, 0, len(items))
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		spans = append(spans, components.Span{Start: i, End: i + 1})
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n")), spans
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
