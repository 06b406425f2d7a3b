package mask

// Bitmap is a fixed-size binary raster used for foreground masks.
type Bitmap struct {
	w, h int
	bits []bool
}

// NewBitmap creates an all-false Bitmap of the given size.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.w }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.h }

// At reports the bit at (x, y). Positions outside the bitmap are false.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.bits[y*b.w+x]
}

// Set assigns the bit at (x, y). Positions outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, v bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.bits[y*b.w+x] = v
}

// Clone returns an independent copy.
func (b *Bitmap) Clone() *Bitmap {
	bits := make([]bool, len(b.bits))
	copy(bits, b.bits)
	return &Bitmap{w: b.w, h: b.h, bits: bits}
}

// CountTrue returns the number of set bits.
func (b *Bitmap) CountTrue() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}
