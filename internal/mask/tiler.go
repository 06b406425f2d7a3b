package mask

import "fmt"

// Tile pads and partitions grid into count×count equal-size, non-overlapping
// blocks and wraps each into a new Patch tagged with its (row, col) position.
// Patches are returned in row-major order.
//
// When a dimension does not divide evenly by count, the grid is padded at
// the bottom/right with zeros until it does; dimensions that already divide
// evenly get no padding. The input grid is never modified.
//
// Fails with *InvalidDimensionError when count < 1 or the grid is empty.
// Patch construction errors, including *DegenerateInputError for a
// constant-intensity block, are wrapped with the block position and
// propagated.
func Tile(grid *Grid, count int, hook Hook) ([]*Patch, error) {
	if count < 1 {
		return nil, &InvalidDimensionError{Count: count, Reason: "patch count per axis must be at least 1"}
	}
	if grid == nil || grid.Width() == 0 || grid.Height() == 0 {
		return nil, &InvalidDimensionError{Count: count, Reason: "grid must be non-empty"}
	}

	padded := padToMultiple(grid, count)
	blockH := padded.Height() / count
	blockW := padded.Width() / count

	patches := make([]*Patch, 0, count*count)
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			block := padded.SubGrid(j*blockW, i*blockH, blockW, blockH)
			p, err := NewPatch(block, PatchIndex{Row: i, Col: j}, hook)
			if err != nil {
				return nil, fmt.Errorf("patch (%d,%d): %w", i, j, err)
			}
			patches = append(patches, p)
		}
	}
	return patches, nil
}

// padToMultiple returns g extended with zero rows/columns at the bottom and
// right until both dimensions are multiples of n, or g itself when both
// already are.
func padToMultiple(g *Grid, n int) *Grid {
	padH := (n - g.h%n) % n
	padW := (n - g.w%n) % n
	if padH == 0 && padW == 0 {
		return g
	}

	w, h := g.w+padW, g.h+padH
	pix := make([]float64, w*h)
	for y := 0; y < g.h; y++ {
		copy(pix[y*w:y*w+g.w], g.pix[y*g.w:(y+1)*g.w])
	}
	return &Grid{w: w, h: h, pix: pix}
}
