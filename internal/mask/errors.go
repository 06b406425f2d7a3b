package mask

import "fmt"

// InvalidDimensionError reports a grid shape or patch count that cannot be
// tiled: an empty grid, ragged rows, or a per-axis count below 1.
type InvalidDimensionError struct {
	Height int // grid height in pixels, when known
	Width  int // grid width in pixels, when known
	Count  int // requested patches per axis, when relevant
	Reason string
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimensions (height=%d, width=%d, count=%d): %s",
		e.Height, e.Width, e.Count, e.Reason)
}

// DegenerateInputError reports patch data with a single distinct intensity,
// for which Otsu's method has no defined threshold.
type DegenerateInputError struct {
	Value float64 // the constant intensity present in the data
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("intensity data is constant at %g: Otsu threshold undefined", e.Value)
}

// OutOfBoundsError reports a brush center outside the patch. Note that only
// the center is validated; disk pixels falling outside the patch are clipped
// silently, which is policy rather than an error.
type OutOfBoundsError struct {
	X, Y          int // the rejected position
	Width, Height int // patch dimensions
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) outside patch bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}
