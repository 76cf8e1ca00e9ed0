package canvas

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

const halfBlock = "▀"

// Backdrop is shown where a surface pixel is fully transparent.
var Backdrop = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}

// Render draws s as terminal text, two pixel rows per line: the upper half
// block takes the top pixel as foreground and the bottom pixel as background.
func Render(s *Surface) string {
	w, h := s.Width(), s.Height()
	var b strings.Builder

	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		var runTop, runBottom color.RGBA
		run := 0
		flush := func() {
			if run == 0 {
				return
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(runTop).
				Background(runBottom).
				Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for x := 0; x < w; x++ {
			top := opaque(s.At(x, y))
			bottom := top
			if y+1 < h {
				bottom = opaque(s.At(x, y+1))
			}
			if run > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			run++
		}
		flush()
	}
	return b.String()
}

// Rows returns the number of text lines Render produces for s.
func Rows(s *Surface) int {
	return (s.Height() + 1) / 2
}

// CellToPixel maps a text cell inside a rendered surface to the pixel
// position at the center of that cell.
func CellToPixel(col, row int) Point {
	return Point{X: float64(col) + 0.5, Y: float64(row*2) + 1}
}

func opaque(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	if c.A == 0 {
		return Backdrop
	}
	// image.RGBA is alpha-premultiplied.
	a := uint32(c.A)
	blend := func(fg, bg uint8) uint8 {
		return uint8(uint32(fg) + uint32(bg)*(0xff-a)/0xff)
	}
	return color.RGBA{R: blend(c.R, Backdrop.R), G: blend(c.G, Backdrop.G), B: blend(c.B, Backdrop.B), A: 0xff}
}
