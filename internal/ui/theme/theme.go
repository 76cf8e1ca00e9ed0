package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgDark  = lipgloss.Color("#0F172A") // Deep Navy
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
	ArcadePink   = lipgloss.Color("#F472B6")
)

// Countdown gauge colors, indexed by timer.Stage.
var (
	GaugeIdle = lipgloss.Color("#9CA3AF") // 5
	GaugeCalm = lipgloss.Color("#3B82F6") // 4, 3
	GaugeWarn = lipgloss.Color("#F97316") // 2
	GaugeLast = lipgloss.Color("#EF4444") // 1
)

// Outcome captions
var (
	Win = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Lose = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
