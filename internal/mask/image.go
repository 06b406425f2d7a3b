package mask

import (
	"fmt"
	"image"
	"image/draw"
)

// DefaultPatchesPerAxis is the patch grid size used when none is configured.
const DefaultPatchesPerAxis = 10

// Image owns a full intensity grid and its decomposition into patches. The
// grid is tiled once at construction; patch masks are then edited in place
// through the patches themselves.
type Image struct {
	grid           *Grid
	fullMask       *Bitmap
	patchesPerAxis int
	patches        []*Patch
	hook           Hook
}

// NewImage tiles grid into patchesPerAxis² patches. A patchesPerAxis of 0
// selects DefaultPatchesPerAxis. The full-resolution mask starts all false
// and is only populated by AssembleMask.
func NewImage(grid *Grid, patchesPerAxis int, hook Hook) (*Image, error) {
	if patchesPerAxis == 0 {
		patchesPerAxis = DefaultPatchesPerAxis
	}
	patches, err := Tile(grid, patchesPerAxis, hook)
	if err != nil {
		return nil, err
	}
	im := &Image{
		grid:           grid,
		fullMask:       NewBitmap(grid.Width(), grid.Height()),
		patchesPerAxis: patchesPerAxis,
		patches:        patches,
		hook:           hook,
	}
	if hook != nil {
		hook(Event{
			Op:  "tile",
			Row: -1, Col: -1,
			Detail: fmt.Sprintf("%dx%d grid into %d patches of %dx%d",
				grid.Height(), grid.Width(), len(patches), patches[0].Height(), patches[0].Width()),
		})
	}
	return im, nil
}

// Grid returns the full intensity grid.
func (im *Image) Grid() *Grid { return im.grid }

// PatchesPerAxis returns the patch grid size along one dimension.
func (im *Image) PatchesPerAxis() int { return im.patchesPerAxis }

// Patches returns the patches in row-major order. The returned slice is a
// copy; the patches themselves are shared and editable.
func (im *Image) Patches() []*Patch {
	out := make([]*Patch, len(im.patches))
	copy(out, im.patches)
	return out
}

// PatchAt returns the patch at grid position (row, col).
func (im *Image) PatchAt(row, col int) (*Patch, error) {
	if row < 0 || row >= im.patchesPerAxis || col < 0 || col >= im.patchesPerAxis {
		return nil, fmt.Errorf("patch (%d,%d) outside %dx%d patch grid",
			row, col, im.patchesPerAxis, im.patchesPerAxis)
	}
	return im.patches[row*im.patchesPerAxis+col], nil
}

// FullMask returns a copy of the full-resolution mask: all false after
// construction, and the stitched patch masks after AssembleMask.
func (im *Image) FullMask() *Bitmap { return im.fullMask.Clone() }

// AssembleMask stitches the current patch masks into the full-resolution
// mask, dropping pixels that belong to tiling padding, and returns a copy.
func (im *Image) AssembleMask() *Bitmap {
	blockH := im.patches[0].Height()
	blockW := im.patches[0].Width()
	assembled := NewBitmap(im.grid.Width(), im.grid.Height())
	for _, p := range im.patches {
		originX := p.Index().Col * blockW
		originY := p.Index().Row * blockH
		for y := 0; y < blockH; y++ {
			for x := 0; x < blockW; x++ {
				// Set ignores padded coordinates beyond the original grid.
				assembled.Set(originX+x, originY+y, p.MaskAt(x, y))
			}
		}
	}
	im.fullMask = assembled
	return assembled.Clone()
}

// AssembleOverlay stitches the current patch overlays into one raster
// cropped to the original grid dimensions.
func (im *Image) AssembleOverlay() *image.RGBA {
	blockH := im.patches[0].Height()
	blockW := im.patches[0].Width()
	out := image.NewRGBA(image.Rect(0, 0, im.grid.Width(), im.grid.Height()))
	for _, p := range im.patches {
		originX := p.Index().Col * blockW
		originY := p.Index().Row * blockH
		target := image.Rect(originX, originY, originX+blockW, originY+blockH)
		draw.Draw(out, target, p.Overlay(), image.Point{}, draw.Src)
	}
	return out
}
