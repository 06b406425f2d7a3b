package mask

import (
	"errors"
	"testing"
)

// gradientGrid builds a w×h grid whose intensities increase smoothly from 0
// to 1 in row-major order. Every pixel value is distinct.
func gradientGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			rows[y][x] = float64(y*w+x) / float64(w*h-1)
		}
	}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

// twoToneGrid builds a w×h grid with the left half at lo and the right half
// at hi.
func twoToneGrid(t *testing.T, w, h int, lo, hi float64) *Grid {
	t.Helper()
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			if x < w/2 {
				rows[y][x] = lo
			} else {
				rows[y][x] = hi
			}
		}
	}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

// constantGrid builds a w×h grid with every pixel at v.
func constantGrid(t *testing.T, w, h int, v float64) *Grid {
	t.Helper()
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			rows[y][x] = v
		}
	}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid([][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", g.Width(), g.Height())
	}
	if got := g.At(2, 1); got != 0.6 {
		t.Errorf("At(2,1): got %v, want 0.6", got)
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"no rows", nil},
		{"empty rows", [][]float64{}},
		{"empty first row", [][]float64{{}}},
		{"ragged rows", [][]float64{{0.1, 0.2}, {0.3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows)
			var dimErr *InvalidDimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("got %v, want *InvalidDimensionError", err)
			}
		})
	}
}

func TestGrid_SubGrid(t *testing.T) {
	g := gradientGrid(t, 6, 4)

	sub := g.SubGrid(2, 1, 3, 2)
	if sub.Width() != 3 || sub.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", sub.Width(), sub.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got, want := sub.At(x, y), g.At(x+2, y+1); got != want {
				t.Errorf("At(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBitmap(t *testing.T) {
	b := NewBitmap(4, 3)
	if b.CountTrue() != 0 {
		t.Fatalf("new bitmap has %d set bits, want 0", b.CountTrue())
	}

	b.Set(1, 2, true)
	if !b.At(1, 2) {
		t.Error("At(1,2) false after Set")
	}
	if b.CountTrue() != 1 {
		t.Errorf("CountTrue: got %d, want 1", b.CountTrue())
	}

	// Out-of-range access is a no-op / false, never a panic.
	b.Set(-1, 0, true)
	b.Set(4, 0, true)
	if b.At(-1, 0) || b.At(4, 0) {
		t.Error("out-of-range At should be false")
	}
	if b.CountTrue() != 1 {
		t.Errorf("CountTrue after out-of-range Set: got %d, want 1", b.CountTrue())
	}

	clone := b.Clone()
	clone.Set(0, 0, true)
	if b.At(0, 0) {
		t.Error("mutating a clone changed the original")
	}
}
