package home

import (
	"charm.land/lipgloss/v2"

	"github.com/antigravity/petit/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // no round played yet
	MascotCheer                      // last round won
	MascotSulk                       // last round lost
)

const mascotIdle = `  ╭───╮
 ( ◕ ◕ )
  ╰─▽─╯`

const mascotCheer = `\ ╭───╮ /
 ( ★ ★ )
  ╰─◡─╯`

const mascotSulk = `  ╭───╮
 ( ╥ ╥ )
  ╰─︵─╯`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.ArcadePink

	switch v {
	case MascotCheer:
		art = mascotCheer
		fg = theme.ArcadeYellow
	case MascotSulk:
		art = mascotSulk
		fg = theme.ArcadeCyan
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
