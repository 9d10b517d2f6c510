package drawkit

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// separate from draw.go, this file resamples with x/image/draw
// instead of image/draw.

// Fit scales texture so its width matches dimensions.X. The height is
// dimensions.Y divided by the texture's aspect ratio (width / height).
func Fit(dimensions Vector2, texture image.Image) (*image.RGBA, error) {
	if isNil(texture) {
		return nil, ErrNoSource
	}
	b := texture.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.Wrapf(ErrDegenerate, "fit source %dx%d", b.Dx(), b.Dy())
	}

	aspect := float64(b.Dx()) / float64(b.Dy())
	return resize(texture, dimensions.X, dimensions.Y/aspect)
}

// ScaleSurface returns a copy of src resized by factor along both axes.
func ScaleSurface(src image.Image, factor float64) (*image.RGBA, error) {
	if isNil(src) {
		return nil, ErrNoSource
	}
	b := src.Bounds()
	return resize(src, float64(b.Dx())*factor, float64(b.Dy())*factor)
}

// ScaleRect multiplies left, top, width and height of r by factor.
// The rectangle is scaled from the origin, not from its own center.
//
// The result is not canonicalized: a negative factor gives a negative
// width and height, with Min still at the scaled left and top.
func ScaleRect(r image.Rectangle, factor float64) image.Rectangle {
	x := int(float64(r.Min.X) * factor)
	y := int(float64(r.Min.Y) * factor)
	w := int(float64(r.Dx()) * factor)
	h := int(float64(r.Dy()) * factor)
	return image.Rectangle{
		Min: image.Pt(x, y),
		Max: image.Pt(x+w, y+h),
	}
}

// resize scales src to w x h, truncated to whole pixels.
func resize(src image.Image, fw, fh float64) (*image.RGBA, error) {
	if !validDimension(fw) || !validDimension(fh) {
		return nil, errors.Wrapf(ErrDegenerate, "resize to %vx%v", fw, fh)
	}
	w, h := int(fw), int(fh)
	// same limit image.NewRGBA enforces before it panics
	if w > 0 && h > math.MaxInt/4/w {
		return nil, errors.Wrapf(ErrDegenerate, "resize to %dx%d", w, h)
	}

	r := image.Rect(0, 0, w, h)
	dst := image.NewRGBA(r)
	if r.Empty() {
		return dst, nil
	}
	s := draw.ApproxBiLinear
	s.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func validDimension(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v < math.MaxInt32
}

// isNil reports whether img is nil, including a nil pointer of one of
// the standard image types.
func isNil(img image.Image) bool {
	switch i := img.(type) {
	case nil:
		return true
	case *image.RGBA:
		return i == nil
	case *image.NRGBA:
		return i == nil
	case *image.RGBA64:
		return i == nil
	case *image.NRGBA64:
		return i == nil
	case *image.Alpha:
		return i == nil
	case *image.Alpha16:
		return i == nil
	case *image.Gray:
		return i == nil
	case *image.Gray16:
		return i == nil
	case *image.CMYK:
		return i == nil
	case *image.Paletted:
		return i == nil
	case *image.YCbCr:
		return i == nil
	case *image.NYCbCrA:
		return i == nil
	case *image.Uniform:
		return i == nil
	}
	return false
}
