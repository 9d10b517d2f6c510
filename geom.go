package drawkit

import (
	"image"

	"github.com/fogleman/gg"
)

// Vector2 is a 2D point or size.
type Vector2 = gg.Point

// Center returns the center point of r.
func Center(r image.Rectangle) Vector2 {
	return Vector2{
		X: float64(r.Min.X) + float64(r.Dx())/2,
		Y: float64(r.Min.Y) + float64(r.Dy())/2,
	}
}

// Centered returns a rectangle of the given size whose center is at c.
// Positions are truncated to whole pixels.
func Centered(size image.Point, c Vector2) image.Rectangle {
	x := int(c.X) - size.X/2
	y := int(c.Y) - size.Y/2
	return image.Rect(x, y, x+size.X, y+size.Y)
}
