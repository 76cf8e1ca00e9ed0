// Package assets loads the sprite artwork used by the mini-games and result
// screen. Sprites are SVG files rasterized on demand at the size a surface asks
// for, so the same art works on the phone and on the larger TV.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"math"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/antigravity/petit/internal/canvas"
)

//go:embed sprites/*.svg
var embedded embed.FS

// LoadError reports a sprite that could not be read or rasterized.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load sprite %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

type cacheKey struct {
	name string
	w, h int
}

// Library rasterizes and caches sprites. Files in the override filesystem
// take precedence over the built-in set.
type Library struct {
	override fs.FS
	logger   *slog.Logger

	mu     sync.Mutex
	cache  map[cacheKey]*image.RGBA
	failed map[string]error
}

// New creates a Library. override may be nil.
func New(override fs.FS, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Library{
		override: override,
		logger:   logger,
		cache:    make(map[cacheKey]*image.RGBA),
		failed:   make(map[string]error),
	}
}

// Names lists the built-in sprites.
func Names() []string {
	entries, err := embedded.ReadDir("sprites")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	slices.Sort(names)
	return names
}

// Sprite returns name rasterized to w×h pixels.
func (l *Library) Sprite(name string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, &LoadError{Name: name, Err: fmt.Errorf("invalid size %dx%d", w, h)}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err, ok := l.failed[name]; ok {
		return nil, err
	}
	key := cacheKey{name: name, w: w, h: h}
	if img, ok := l.cache[key]; ok {
		return img, nil
	}

	img, err := l.rasterize(name, w, h)
	if err != nil {
		lerr := &LoadError{Name: name, Err: err}
		l.failed[name] = lerr
		l.logger.Warn("sprite unavailable, using fallback fill", "sprite", name, "error", err)
		return nil, lerr
	}
	l.cache[key] = img
	return img, nil
}

// Draw paints sprite name into r on s. If the sprite cannot be loaded, r is
// filled with fallback instead.
func (l *Library) Draw(s *canvas.Surface, name string, r canvas.Rect, fallback color.Color) {
	w, h := int(math.Round(r.W)), int(math.Round(r.H))
	img, err := l.Sprite(name, w, h)
	if err != nil {
		s.FillRect(r, fallback)
		return
	}
	s.DrawImage(img, r)
}

func (l *Library) open(name string) (fs.File, error) {
	file := name + ".svg"
	if l.override != nil {
		f, err := l.override.Open(file)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return embedded.Open(path.Join("sprites", file))
}

func (l *Library) rasterize(name string, w, h int) (*image.RGBA, error) {
	f, err := l.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}
