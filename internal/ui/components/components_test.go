package components

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/antigravity/petit/internal/timer"
	"github.com/antigravity/petit/internal/ui/theme"
)

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Selected != 1 {
		t.Errorf("after left Selected = %d, want 1", m.Selected)
	}
}

func TestMenuActivate(t *testing.T) {
	var ran []string
	m := NewMenu([]MenuItem{
		{Label: "a", Action: func() tea.Cmd { ran = append(ran, "a"); return nil }},
		{Label: "b", Disabled: true, Action: func() tea.Cmd { ran = append(ran, "b"); return nil }},
	})

	m.Activate(1)
	m.Activate(5)
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(ran) != 1 || ran[0] != "a" {
		t.Errorf("ran = %v, want [a]", ran)
	}
}

func TestGaugeFraction(t *testing.T) {
	tests := []struct {
		remaining, total time.Duration
		want             float64
	}{
		{5 * time.Second, 5 * time.Second, 1},
		{2500 * time.Millisecond, 5 * time.Second, 0.5},
		{-time.Second, 5 * time.Second, 0},
		{time.Second, 0, 0},
	}
	for _, tt := range tests {
		if got := NewGauge(tt.remaining, tt.total, 20).Fraction(); got != tt.want {
			t.Errorf("Fraction(%v/%v) = %v, want %v", tt.remaining, tt.total, got, tt.want)
		}
	}
}

func TestGaugeView(t *testing.T) {
	out := NewGauge(1200*time.Millisecond, 5*time.Second, 30).View()
	if !strings.Contains(out, "2s") {
		t.Errorf("expected the rounded-up seconds in %q", out)
	}
	if w := lipgloss.Width(out); w != 30 {
		t.Errorf("width = %d, want 30", w)
	}
}

func TestGaugeColor(t *testing.T) {
	if GaugeColor(timer.StageFull) != theme.GaugeIdle {
		t.Error("full stage should use the idle color")
	}
	if GaugeColor(timer.StageWarn) != theme.GaugeWarn {
		t.Error("warn stage should use the warn color")
	}
	if GaugeColor(timer.StageLast) != theme.GaugeLast {
		t.Error("last stage should use the last color")
	}
}

func TestArcadeRowSpans(t *testing.T) {
	row, spans := ArcadeRow([]string{"Retry", "Home"}, 0, 14)
	if len(spans) != 2 {
		t.Fatalf("spans = %v, want 2", spans)
	}
	if spans[0].Start != 0 || spans[1].Start != spans[0].End+1 {
		t.Errorf("spans = %v, want adjacent buttons one column apart", spans)
	}
	if spans[1].End != lipgloss.Width(row) {
		t.Errorf("last span ends at %d, row is %d wide", spans[1].End, lipgloss.Width(row))
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 5}
	if !s.Contains(2) || !s.Contains(4) || s.Contains(5) {
		t.Error("span should be half-open")
	}
	if got := s.Shift(3); got != (Span{Start: 5, End: 8}) {
		t.Errorf("Shift = %v", got)
	}
}

func TestCabinetTop(t *testing.T) {
	if got := CabinetTop(4, 12); got != 4 {
		t.Errorf("CabinetTop(4, 12) = %d, want 4", got)
	}
	if got := CabinetTop(20, 12); got != 1 {
		t.Errorf("CabinetTop(20, 12) = %d, want 1", got)
	}
}
