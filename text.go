package drawkit

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DrawText renders text in white, centered over position, onto dst.
//
// The font is read from fontPath and rasterized at size points on every
// call. An empty fontPath selects the embedded Go Regular font.
// Use a FontCache to avoid reloading the font.
func DrawText(dst draw.Image, fontPath, text string, position Vector2, size float64) error {
	f, err := loadFont(fontPath)
	if err != nil {
		return err
	}
	drawText(dst, newFace(f, size), text, position)
	return nil
}

// RenderText rasterizes text with face onto a new transparent surface.
// The surface is as wide as the text advance and spans the face's ascent
// and descent.
func RenderText(face font.Face, text string, c color.Color) *image.RGBA {
	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)
	return dst
}

func drawText(dst draw.Image, face font.Face, text string, position Vector2) {
	defer face.Close()
	DrawSurface(dst, RenderText(face, text, color.White), position)
}

func loadFont(path string) (*truetype.Font, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load font %q", path)
		}
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %q", path)
	}
	return f, nil
}

// newFace builds an anti-aliased face; freetype rasterizes with coverage
// unless told otherwise.
func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}
