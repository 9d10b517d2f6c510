package drawkit

import (
	"image/color"

	"github.com/RadonCoding/drawkit/internal/logging"
)

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp limits value to the range [min, max].
func Clamp[T number](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp interpolates linearly between a and b.
//
// A t greater than 1 is rejected with ErrOutOfRange. A negative t is not
// checked and extrapolates below a.
func Lerp(a, b, t float64) (float64, error) {
	if t > 1 {
		logging.Warning("lerp t exceeds 1: %v", t)
		return 0, ErrOutOfRange
	}
	return a + t*(b-a), nil
}

// LerpRGB interpolates each channel of a and b like Lerp and truncates
// the result toward zero. Channels are clamped to 0..255.
func LerpRGB(a, b color.RGBA, t float64) (color.RGBA, error) {
	if t > 1 {
		logging.Warning("rgb lerp t exceeds 1: %v", t)
		return color.RGBA{}, ErrOutOfRange
	}
	return color.RGBA{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
		A: channel(a.A, b.A, t),
	}, nil
}

func channel(a, b uint8, t float64) uint8 {
	v := int(float64(a) + t*(float64(b)-float64(a)))
	return uint8(Clamp(v, 0, 255))
}
