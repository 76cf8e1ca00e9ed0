// Package canvas provides the pixel surfaces the phone and TV screens draw on.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	xdraw "golang.org/x/image/draw"
)

// Point is a pixel position on a surface.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns a w×h box centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Scale grows or shrinks r around its center.
func (r Rect) Scale(f float64) Rect {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	return CenteredRect(cx, cy, r.W*f, r.H*f)
}

func (r Rect) image() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}

// Surface is an RGBA pixel buffer.
type Surface struct {
	img *image.RGBA
}

// New allocates a w×h surface.
func New(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Image exposes the backing buffer.
func (s *Surface) Image() *image.RGBA { return s.img }

// Bounds returns the whole surface as a Rect.
func (s *Surface) Bounds() Rect {
	return Rect{W: float64(s.Width()), H: float64(s.Height())}
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Clone returns an independent copy of s.
func (s *Surface) Clone() *Surface {
	c := New(s.Width(), s.Height())
	draw.Draw(c.img, c.img.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return c
}

// Clear paints the whole surface transparent black.
func (s *Surface) Clear() {
	s.Fill(color.RGBA{})
}

// Fill paints the whole surface with c.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect paints r with c, blending by alpha.
func (s *Surface) FillRect(r Rect, c color.Color) {
	draw.Draw(s.img, r.image().Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// FillEllipse paints the ellipse inscribed in r.
func (s *Surface) FillEllipse(r Rect, c color.Color) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	if rx <= 0 || ry <= 0 {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	b := r.image().Intersect(s.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.img.SetRGBA(x, y, rgba)
			}
		}
	}
}

// DrawImage scales src into r, compositing over existing pixels.
func (s *Surface) DrawImage(src image.Image, r Rect) {
	if src == nil {
		return
	}
	xdraw.NearestNeighbor.Scale(s.img, r.image(), src, src.Bounds(), xdraw.Over, nil)
}

// Mirror scales the contents of src onto dst, replacing dst's pixels.
func Mirror(dst, src *Surface) {
	xdraw.ApproxBiLinear.Scale(dst.img, dst.img.Bounds(), src.img, src.img.Bounds(), xdraw.Src, nil)
}

// Hex parses "#rrggbb" or "#rrggbbaa". Invalid input yields opaque magenta so
// that mistakes are visible.
func Hex(s string) color.RGBA {
	bad := color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return bad
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return bad
	}
	if len(s) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
