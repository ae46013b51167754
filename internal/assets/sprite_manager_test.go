package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestLoadAllWithPlaceholders(t *testing.T) {
	fsys := fstest.MapFS{
		"fig/3.png":      {Data: pngBytes(t, 24, 30)},
		"fig/alien1.png": {Data: pngBytes(t, 16, 16)},
		"fig/alien2.png": {Data: []byte("not a png")},
	}
	m := NewSpriteManager(fsys, zap.NewNop())

	fallback := func() image.Image { return Placeholder(40, color.RGBA{255, 0, 0, 255}) }
	reqs := []Request{
		{Name: HeroSprite(3), Fallback: fallback},
		{Name: EnemySprite(1), Fallback: fallback},
		{Name: EnemySprite(2), Fallback: fallback},
		{Name: EnemySprite(3), Fallback: fallback},
	}
	require.NoError(t, m.LoadAll(context.Background(), reqs))

	w, h, ok := m.Size("fig/3.png")
	require.True(t, ok)
	assert.Equal(t, 24, w)
	assert.Equal(t, 30, h)

	w, _, ok = m.Size("fig/alien2.png")
	require.True(t, ok)
	assert.Equal(t, 40, w, "corrupt file replaced by placeholder")

	assert.ElementsMatch(t, []string{"fig/alien2.png", "fig/alien3.png"}, m.Missing())
}

func TestLoadAllCancelled(t *testing.T) {
	m := NewSpriteManager(fstest.MapFS{}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.LoadAll(ctx, []Request{{Name: "fig/1.png", Fallback: func() image.Image { return Solid(1, 1, color.RGBA{}) }}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadIsCached(t *testing.T) {
	m := NewSpriteManager(fstest.MapFS{}, zap.NewNop())
	calls := 0
	req := Request{Name: "fig/9.png", Fallback: func() image.Image {
		calls++
		return Solid(2, 2, color.RGBA{})
	}}
	first := m.Load(req)
	second := m.Load(req)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestPlaceholderShape(t *testing.T) {
	c := color.RGBA{10, 20, 30, 255}
	img := Placeholder(40, c).(*image.RGBA)

	assert.Equal(t, c, img.RGBAAt(20, 20), "center")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0), "corner is transparent")
	assert.Equal(t, color.RGBA{245, 235, 225, 255}, img.RGBAAt(2, 20), "nose on the left")
}

func TestSolid(t *testing.T) {
	img := Solid(4, 3, color.RGBA{1, 2, 3, 255})
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	r, g, b, _ := img.At(3, 2).RGBA()
	assert.Equal(t, []uint32{1 * 0x101, 2 * 0x101, 3 * 0x101}, []uint32{r, g, b})
}
