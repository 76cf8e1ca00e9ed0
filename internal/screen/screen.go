package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/antigravity/petit/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command each time the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider screens show a status string on the right of the header.
type StatusProvider interface {
	Status() string
}

// PointerMsg is a mouse button event in content coordinates: column and
// row are relative to the top-left cell below the header.
type PointerMsg struct {
	Col, Row int
	Down     bool
}
