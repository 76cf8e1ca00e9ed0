package assets

import (
	"bytes"
	"errors"
	"image/color"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/petit/internal/canvas"
)

func TestNamesListsEmbeddedSprites(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "cake")
	assert.Contains(t, names, "result_success_1")
	assert.NotContains(t, names, "cake.svg")
}

func TestSpriteRasterizesAtRequestedSize(t *testing.T) {
	lib := New(nil, nil)
	img, err := lib.Sprite("plate", 40, 20)
	require.NoError(t, err)

	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	assert.Equal(t, uint8(0xff), img.RGBAAt(20, 10).A)
	assert.Zero(t, img.RGBAAt(0, 0).A, "corner is outside the plate")
}

func TestSpriteIsCachedPerSize(t *testing.T) {
	lib := New(nil, nil)
	a, err := lib.Sprite("cake", 16, 16)
	require.NoError(t, err)
	b, err := lib.Sprite("cake", 16, 16)
	require.NoError(t, err)
	c, err := lib.Sprite("cake", 24, 24)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestMissingSpriteIsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	lib := New(nil, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := lib.Sprite("unicorn", 10, 10)
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "unicorn", lerr.Name)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = lib.Sprite("unicorn", 20, 20)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "sprite unavailable"))
}

func TestInvalidSize(t *testing.T) {
	_, err := New(nil, nil).Sprite("cake", 0, 5)
	var lerr *LoadError
	assert.True(t, errors.As(err, &lerr))
}

func TestOverrideTakesPrecedence(t *testing.T) {
	override := fstest.MapFS{
		"cake.svg": &fstest.MapFile{Data: []byte(
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#FF0000"/></svg>`,
		)},
	}
	lib := New(override, nil)

	img, err := lib.Sprite("cake", 10, 10)
	require.NoError(t, err)
	px := img.RGBAAt(5, 5)
	assert.Equal(t, uint8(0xff), px.R)
	assert.Zero(t, px.G)

	_, err = lib.Sprite("plate", 10, 10)
	assert.NoError(t, err, "names missing from the override fall back to built-ins")
}

func TestDrawFallsBackToFill(t *testing.T) {
	lib := New(nil, nil)
	s := canvas.New(10, 10)
	green := color.RGBA{G: 0xff, A: 0xff}

	lib.Draw(s, "unicorn", canvas.Rect{X: 2, Y: 2, W: 4, H: 4}, green)
	assert.Equal(t, green, s.At(3, 3))
	assert.Equal(t, color.RGBA{}, s.At(8, 8))
}

func TestDrawPlacesSprite(t *testing.T) {
	lib := New(nil, nil)
	s := canvas.New(20, 20)

	lib.Draw(s, "grape", canvas.Rect{X: 0, Y: 0, W: 20, H: 20}, color.Black)
	assert.Equal(t, uint8(0xff), s.At(10, 12).A)
}
