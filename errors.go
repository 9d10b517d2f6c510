package drawkit

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by the interpolation helpers when t exceeds 1.
	ErrOutOfRange = errors.New("interpolation factor exceeds 1")

	// ErrNoSource is returned when a scaling helper is given a nil image.
	ErrNoSource = errors.New("no source image")

	// ErrDegenerate is returned when a computed size is unusable,
	// e.g. a negative dimension or a source without width or height.
	ErrDegenerate = errors.New("degenerate dimensions")
)
