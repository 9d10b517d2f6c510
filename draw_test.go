package drawkit

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentered(t *testing.T) {
	r := Centered(image.Pt(10, 20), Vector2{X: 50, Y: 50})
	assert.Equal(t, image.Rect(45, 40, 55, 60), r)
	assert.Equal(t, Vector2{X: 50, Y: 50}, Center(r))

	// fractional positions are truncated
	r = Centered(image.Pt(4, 4), Vector2{X: 10.7, Y: 3.2})
	assert.Equal(t, image.Rect(8, 1, 12, 5), r)
}

func TestDrawSurface(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	src := solid(20, 10, color.RGBA{0, 255, 0, 255})
	pos := Vector2{X: 30, Y: 40}

	r := DrawSurface(dst, src, pos)

	assert.Equal(t, pos, Center(r))
	assert.Equal(t, src.Bounds().Size(), r.Size())
	assert.Equal(t, r, inked(dst))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, dst.RGBAAt(30, 40))
}

func TestDrawSurfaceClipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := solid(8, 8, color.White)

	r := DrawSurface(dst, src, Vector2{X: 0, Y: 0})

	// the returned rectangle is not clipped to the destination
	assert.Equal(t, image.Rect(-4, -4, 4, 4), r)
	assert.Equal(t, image.Rect(0, 0, 4, 4), inked(dst))
}

func TestDrawCircle(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))

	DrawCircle(dst, Vector2{X: 50, Y: 50}, 10, Red)

	assert.Equal(t, Red, dst.RGBAAt(50, 50))
	assert.Equal(t, Red, dst.RGBAAt(50, 43))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(50, 35))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))

	box := inked(dst)
	assert.True(t, box.In(image.Rect(39, 39, 61, 61)), "circle bounds %v", box)
}

func TestDrawCircleColor(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	blue := color.RGBA{0, 0, 255, 255}

	DrawCircle(dst, Vector2{X: 10, Y: 10}, 5, blue)

	assert.Equal(t, blue, dst.RGBAAt(10, 10))
}

func TestDrawRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c := color.RGBA{10, 20, 30, 255}

	DrawRect(dst, Vector2{X: 50, Y: 50}, Vector2{X: 20, Y: 10}, c)

	assert.Equal(t, c, dst.RGBAAt(50, 50))
	assert.Equal(t, c, dst.RGBAAt(41, 46))
	assert.Equal(t, c, dst.RGBAAt(58, 53))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(50, 30))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(70, 50))
}

func TestRenderText(t *testing.T) {
	f, err := loadFont("")
	require.NoError(t, err)
	face := newFace(f, 24)
	defer face.Close()

	img := RenderText(face, "Hello", color.White)

	b := img.Bounds()
	m := face.Metrics()
	assert.Equal(t, (m.Ascent + m.Descent).Ceil(), b.Dy())
	assert.Greater(t, b.Dx(), 0)
	assert.False(t, inked(img).Empty())

	empty := RenderText(face, "", color.White)
	assert.True(t, empty.Bounds().Empty())
}

func TestDrawText(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	pos := Vector2{X: 100, Y: 50}

	err := DrawText(dst, writeFont(t), "Hi", pos, 24)
	require.NoError(t, err)

	box := inked(dst)
	require.False(t, box.Empty())
	assert.True(t, box.In(image.Rect(60, 20, 140, 80)), "text bounds %v", box)

	// text is rendered in white
	var found bool
	for y := box.Min.Y; y < box.Max.Y && !found; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if dst.RGBAAt(x, y) == (color.RGBA{255, 255, 255, 255}) {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no fully white pixel")
}

func TestDrawTextDefaultFont(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 40))

	require.NoError(t, DrawText(dst, "", "ok", Vector2{X: 50, Y: 20}, 16))
	assert.False(t, inked(dst).Empty())
}

func TestDrawTextMissingFont(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))

	err := DrawText(dst, "does/not/exist.ttf", "x", Vector2{}, 12)
	assert.Error(t, err)
	assert.True(t, inked(dst).Empty())
}
