package paint

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaster_ClampsDegenerateSizes(t *testing.T) {
	r := NewRaster(0, -5)
	require.NotNil(t, r.Ctx())
	assert.Equal(t, 1, r.Ctx().Width())
	assert.Equal(t, 1, r.Ctx().Height())
}

func TestRaster_Resize(t *testing.T) {
	r := NewRaster(100, 100)
	r.Resize(320, 240)
	assert.Equal(t, 320, r.Ctx().Width())
	assert.Equal(t, 240, r.Ctx().Height())

	// Degenerate viewports clamp instead of failing.
	r.Resize(0, 0)
	assert.Equal(t, 1, r.Ctx().Width())
	assert.Equal(t, 1, r.Ctx().Height())
}

func TestRaster_ChildTracking(t *testing.T) {
	root := NewRaster(10, 10)
	a := NewRaster(10, 10)
	b := NewRaster(10, 10)

	root.AppendChild(a)
	root.AppendChild(b)
	require.Equal(t, []Surface{a, b}, root.Children())

	root.RemoveChild(a)
	assert.Equal(t, []Surface{b}, root.Children())
}

func TestRaster_DisposeIdempotent(t *testing.T) {
	r := NewRaster(10, 10)
	r.AppendChild(NewRaster(10, 10))

	r.Dispose()
	r.Dispose()
	assert.Empty(t, r.Children())

	// Operations after dispose must not panic.
	r.Resize(20, 20)
}

func TestRaster_FlattenBounds(t *testing.T) {
	root := NewRaster(64, 32)
	child := NewRaster(64, 32)
	root.AppendChild(child)

	img := root.Flatten()
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func fillRect(r *Raster, red, green, blue float64) {
	dc := r.Ctx()
	dc.SetRGBA(red, green, blue, 1.0)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	_ = dc.Fill()
}

func pixelAt(img image.Image, x, y int) (r, g, b uint8) {
	r16, g16, b16, _ := img.At(x, y).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)
}

func TestRaster_FlattenRepeatable(t *testing.T) {
	root := NewRaster(32, 32)
	child := NewRaster(32, 32)
	root.AppendChild(child)

	fillRect(root, 0, 0, 1)
	fillRect(child, 1, 0, 0)

	// The opaque child covers the parent in the flattened output.
	for i := 0; i < 2; i++ {
		red, _, blue := pixelAt(root.Flatten(), 16, 16)
		assert.Greater(t, red, uint8(200), "flatten %d", i)
		assert.Less(t, blue, uint8(50), "flatten %d", i)
	}

	// Flattening must not paint children into the surface itself.
	red, _, blue := pixelAt(root.Ctx().Image(), 16, 16)
	assert.Less(t, red, uint8(50))
	assert.Greater(t, blue, uint8(200))
}

func TestRasterFactory_CreatesRasters(t *testing.T) {
	s := RasterFactory{}.NewSurface(100, 50)
	r, ok := s.(*Raster)
	require.True(t, ok)
	assert.Equal(t, 100, r.Ctx().Width())
	assert.Equal(t, 50, r.Ctx().Height())
}
