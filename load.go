package drawkit

import (
	"image"
	// decoders for LoadImage
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image file at path and converts it to RGBA
// with the alpha channel preserved, ready for fast blits.
//
// Any registered format can be read: PNG, JPEG, GIF, BMP, TIFF and WebP.
// Open and decode errors keep their cause, so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, image.ErrFormat) work on the result.
func LoadImage(path string) (*image.RGBA, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load image %q", path)
	}
	return toRGBA(img), nil
}

// LoadImageScaled loads the image at path and scales it by factor.
func LoadImageScaled(path string, factor float64) (*image.RGBA, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return ScaleSurface(img, factor)
}

// LoadBackdrop loads the image at path and fits it to dimensions.
// A zero Vector2 yields an empty surface; pass the real target size.
func LoadBackdrop(path string, dimensions Vector2) (*image.RGBA, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return Fit(dimensions, img)
}

// toRGBA converts img to an *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
