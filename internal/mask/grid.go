package mask

import "fmt"

// Grid is a single-channel intensity raster with float64 values in [0,1],
// stored row-major. A Grid is immutable once constructed; tiling and patch
// construction copy the regions they need rather than aliasing it.
type Grid struct {
	w, h int
	pix  []float64
}

// NewGrid builds a Grid from rows of intensities. Rows must be non-empty and
// all the same length; otherwise it fails with *InvalidDimensionError.
// Values are expected to be normalized to [0,1] by the loader.
func NewGrid(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &InvalidDimensionError{
			Height: len(rows),
			Reason: "grid must have at least one row and one column",
		}
	}
	w := len(rows[0])
	pix := make([]float64, 0, len(rows)*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, &InvalidDimensionError{
				Height: len(rows),
				Width:  w,
				Reason: fmt.Sprintf("row %d has %d columns, want %d", y, len(row), w),
			}
		}
		pix = append(pix, row...)
	}
	return &Grid{w: w, h: len(rows), pix: pix}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// At returns the intensity at (x, y). Coordinates must be within bounds.
func (g *Grid) At(x, y int) float64 { return g.pix[y*g.w+x] }

// SubGrid copies the w×h block whose top-left corner is at (x0, y0) into a
// new Grid. The block must lie entirely within the grid.
func (g *Grid) SubGrid(x0, y0, w, h int) *Grid {
	pix := make([]float64, 0, w*h)
	for y := y0; y < y0+h; y++ {
		pix = append(pix, g.pix[y*g.w+x0:y*g.w+x0+w]...)
	}
	return &Grid{w: w, h: h, pix: pix}
}
