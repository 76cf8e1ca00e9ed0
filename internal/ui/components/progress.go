package components

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/antigravity/petit/internal/timer"
	"github.com/antigravity/petit/internal/ui/theme"
)

// Gauge displays the round countdown as a draining bar with the whole
// seconds left beside it.
type Gauge struct {
	Remaining time.Duration
	Total     time.Duration
	Width     int
}

// NewGauge creates a new countdown gauge.
func NewGauge(remaining, total time.Duration, width int) Gauge {
	return Gauge{
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// GaugeColor returns the bar color for a countdown stage.
func GaugeColor(stage timer.Stage) color.Color {
	switch stage {
	case timer.StageFull:
		return theme.GaugeIdle
	case timer.StageCalm:
		return theme.GaugeCalm
	case timer.StageWarn:
		return theme.GaugeWarn
	default:
		return theme.GaugeLast
	}
}

// Fraction returns the share of the round still left, in [0, 1].
func (g Gauge) Fraction() float64 {
	if g.Total <= 0 {
		return 0
	}
	f := float64(g.Remaining) / float64(g.Total)
	return min(max(f, 0), 1)
}

// View renders the gauge.
func (g Gauge) View() string {
	label := fmt.Sprintf(" %ds", timer.DisplaySeconds(max(g.Remaining, 0)))
	barWidth := g.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*g.Fraction() + 0.5)
	empty := barWidth - filled
	c := GaugeColor(timer.StageFor(g.Remaining))

	filledStr := lipgloss.NewStyle().
		Background(c).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return filledStr + emptyStr + lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Render(label)
}
