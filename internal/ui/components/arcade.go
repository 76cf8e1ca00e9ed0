package components

import (
	"charm.land/lipgloss/v2"

	"github.com/antigravity/petit/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all arcade sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame that fills
// width x height, centering the content inside it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// CabinetTop returns the row at which CabinetFrame places content of the
// given height inside a frame of frameHeight rows.
func CabinetTop(contentHeight, frameHeight int) int {
	inner := frameHeight - 2
	if inner < contentHeight {
		return 1
	}
	return 1 + (inner-contentHeight)/2
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a fixed-width menu button.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ArcadeYellow).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// ArcadeRow lays buttons out side by side, one column apart, and returns
// the rendered row together with each button's column span.
func ArcadeRow(labels []string, selected, width int) (string, []Span) {
	buttons := make([]string, 0, len(labels))
	spans := make([]Span, 0, len(labels))
	x := 0
	for i, label := range labels {
		if i > 0 {
			buttons = append(buttons, " ")
			x++
		}
		b := ArcadeButton(label, i == selected, width)
		w := lipgloss.Width(b)
		spans = append(spans, Span{Start: x, End: x + w})
		buttons = append(buttons, b)
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...), spans
}

// Span is a half-open range of rows or columns.
type Span struct {
	Start, End int
}

// Contains reports whether v lies in the span.
func (s Span) Contains(v int) bool {
	return v >= s.Start && v < s.End
}

// Shift moves the span by d.
func (s Span) Shift(d int) Span {
	return Span{Start: s.Start + d, End: s.End + d}
}
