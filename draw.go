package drawkit

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// Red is the fill color circles used before the color became a parameter.
var Red = color.RGBA{255, 0, 0, 255}

// DrawSurface blits src onto dst, centered over position, and returns
// the destination rectangle. The rectangle is not clipped to dst.
func DrawSurface(dst draw.Image, src image.Image, position Vector2) image.Rectangle {
	b := src.Bounds()
	r := Centered(b.Size(), position)
	draw.Draw(dst, r, src, b.Min, draw.Over)
	return r
}

// DrawCircle fills a circle of radius around center.
func DrawCircle(dst *image.RGBA, center Vector2, radius float64, c color.Color) {
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(c)
	dc.DrawCircle(center.X, center.Y, radius)
	dc.Fill()
}

// DrawRect fills a rectangle of dimensions centered over center.
func DrawRect(dst *image.RGBA, center Vector2, dimensions Vector2, c color.Color) {
	size := image.Pt(int(dimensions.X), int(dimensions.Y))
	r := Centered(size, center)

	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(c)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()
}
