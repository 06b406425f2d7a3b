package mask

import (
	"fmt"
	"image"
	"math"
)

// clearedThreshold marks a patch whose mask was cleared manually rather than
// seeded from its data.
const clearedThreshold = 1

// PatchIndex locates a patch within an image's patch grid.
type PatchIndex struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Patch is one rectangular tile of an image: immutable intensity data, a
// mutable binary foreground mask, the threshold the mask was seeded from,
// and an RGB overlay kept consistent with the mask after every mutation.
type Patch struct {
	data      *Grid
	index     PatchIndex
	mask      *Bitmap
	threshold float64
	overlay   *image.RGBA
	hook      Hook
}

// NewPatch builds a patch from its tile data. It computes the Otsu threshold
// of the data, seeds the mask with every pixel strictly brighter than the
// threshold, and composes the initial overlay. A nil hook disables events.
//
// Fails with *InvalidDimensionError for empty data and with
// *DegenerateInputError when the data has a single distinct intensity.
func NewPatch(data *Grid, index PatchIndex, hook Hook) (*Patch, error) {
	if data == nil || data.Width() == 0 || data.Height() == 0 {
		return nil, &InvalidDimensionError{Reason: "patch data must be non-empty"}
	}
	threshold, err := OtsuThreshold(data)
	if err != nil {
		return nil, err
	}
	p := &Patch{data: data, index: index, hook: hook}
	p.ApplyThreshold(threshold)
	return p, nil
}

// Data returns the patch's intensity grid. Grids are immutable, so sharing
// the reference is safe.
func (p *Patch) Data() *Grid { return p.data }

// Index returns the patch's (row, col) position in the patch grid.
func (p *Patch) Index() PatchIndex { return p.index }

// Width returns the patch width in pixels.
func (p *Patch) Width() int { return p.data.Width() }

// Height returns the patch height in pixels.
func (p *Patch) Height() int { return p.data.Height() }

// Threshold returns the threshold the current mask was seeded from, or 1
// after ClearMask.
func (p *Patch) Threshold() float64 { return p.threshold }

// MaskAt reports whether the pixel at (x, y) is foreground. Positions
// outside the patch are background.
func (p *Patch) MaskAt(x, y int) bool { return p.mask.At(x, y) }

// Mask returns an independent copy of the current mask. Mutating the copy
// has no effect on the patch; edits go through AddRegion, RemoveRegion,
// ClearMask, and ApplyThreshold.
func (p *Patch) Mask() *Bitmap { return p.mask.Clone() }

// Overlay returns the current overlay raster. Every mutation allocates a
// fresh raster, so a held reference remains a consistent snapshot of the
// state at call time.
func (p *Patch) Overlay() *image.RGBA { return p.overlay }

// ForegroundCount returns the number of foreground pixels in the mask.
func (p *Patch) ForegroundCount() int { return p.mask.CountTrue() }

// ForegroundFraction returns the fraction of the patch marked foreground.
func (p *Patch) ForegroundFraction() float64 {
	return float64(p.mask.CountTrue()) / float64(p.data.Width()*p.data.Height())
}

// ApplyThreshold reseeds the mask with every pixel strictly brighter than
// value and recomputes the overlay. NewPatch uses it with the Otsu
// threshold; callers may reapply any other cutoff.
func (p *Patch) ApplyThreshold(value float64) {
	m := NewBitmap(p.data.Width(), p.data.Height())
	for y := 0; y < p.data.Height(); y++ {
		for x := 0; x < p.data.Width(); x++ {
			if p.data.At(x, y) > value {
				m.Set(x, y, true)
			}
		}
	}
	p.threshold = value
	p.mask = m
	p.overlay = composeOverlay(p.data, p.mask)
	p.emit("apply_threshold", fmt.Sprintf("threshold %.6f, %d foreground pixels", value, m.CountTrue()))
}

// AddRegion marks every pixel within radius of (x, y) as foreground and
// recomputes the overlay. The center must lie within the patch; parts of the
// disk outside it are clipped silently. Reapplying the identical call leaves
// the mask unchanged.
func (p *Patch) AddRegion(x, y int, radius float64) error {
	return p.paintDisk("add_region", x, y, radius, true)
}

// RemoveRegion marks every pixel within radius of (x, y) as background and
// recomputes the overlay. Bounds behavior matches AddRegion.
func (p *Patch) RemoveRegion(x, y int, radius float64) error {
	return p.paintDisk("remove_region", x, y, radius, false)
}

// ClearMask resets every mask pixel to background and sets the threshold to
// the sentinel 1, marking the patch as manually overridden. The overlay is
// recomputed so it keeps reflecting the mask.
func (p *Patch) ClearMask() {
	p.mask = NewBitmap(p.data.Width(), p.data.Height())
	p.threshold = clearedThreshold
	p.overlay = composeOverlay(p.data, p.mask)
	p.emit("clear_mask", "mask cleared")
}

// paintDisk assigns value to every pixel (px, py) with
// (px-x)² + (py-y)² <= radius², clipped to the patch.
func (p *Patch) paintDisk(op string, x, y int, radius float64, value bool) error {
	w, h := p.data.Width(), p.data.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return &OutOfBoundsError{X: x, Y: y, Width: w, Height: h}
	}
	if radius < 0 {
		return fmt.Errorf("radius must be non-negative, got %g", radius)
	}

	reach := int(math.Ceil(radius))
	for py := max(0, y-reach); py <= min(h-1, y+reach); py++ {
		for px := max(0, x-reach); px <= min(w-1, x+reach); px++ {
			dx, dy := float64(px-x), float64(py-y)
			if dx*dx+dy*dy <= radius*radius {
				p.mask.Set(px, py, value)
			}
		}
	}
	p.overlay = composeOverlay(p.data, p.mask)
	p.emit(op, fmt.Sprintf("center (%d,%d) radius %g", x, y, radius))
	return nil
}
