package mask

import (
	"errors"
	"testing"
)

func TestTile_CountAndShape(t *testing.T) {
	tests := []struct {
		name               string
		w, h, n            int
		wantBlockW, wantBlockH int
	}{
		{"even split", 20, 20, 2, 10, 10},
		{"padding both axes", 23, 23, 5, 5, 5},
		{"padding one axis", 20, 23, 5, 4, 5},
		{"single patch", 7, 9, 1, 7, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gradientGrid(t, tt.w, tt.h)

			patches, err := Tile(g, tt.n, nil)
			if err != nil {
				t.Fatalf("Tile failed: %v", err)
			}
			if len(patches) != tt.n*tt.n {
				t.Fatalf("patch count: got %d, want %d", len(patches), tt.n*tt.n)
			}
			for _, p := range patches {
				if p.Width() != tt.wantBlockW || p.Height() != tt.wantBlockH {
					t.Errorf("patch (%d,%d) shape: got %dx%d, want %dx%d",
						p.Index().Row, p.Index().Col, p.Width(), p.Height(), tt.wantBlockW, tt.wantBlockH)
				}
			}
		})
	}
}

func TestTile_RowMajorOrder(t *testing.T) {
	g := gradientGrid(t, 9, 9)

	patches, err := Tile(g, 3, nil)
	if err != nil {
		t.Fatalf("Tile failed: %v", err)
	}
	for k, p := range patches {
		wantRow, wantCol := k/3, k%3
		if p.Index().Row != wantRow || p.Index().Col != wantCol {
			t.Errorf("patch %d index: got (%d,%d), want (%d,%d)",
				k, p.Index().Row, p.Index().Col, wantRow, wantCol)
		}
	}
}

// The union of patch data must reconstruct every original pixel exactly;
// padding only ever appends beyond the original extent.
func TestTile_Reconstruction(t *testing.T) {
	g := gradientGrid(t, 23, 17)
	n := 5

	patches, err := Tile(g, n, nil)
	if err != nil {
		t.Fatalf("Tile failed: %v", err)
	}
	blockH := patches[0].Height()
	blockW := patches[0].Width()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := patches[(y/blockH)*n+x/blockW]
			if got, want := p.Data().At(x%blockW, y%blockH), g.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTile_PaddingIsZero(t *testing.T) {
	// 23 rows with n=5 pads to 25; the two extra rows must be zero.
	g := gradientGrid(t, 25, 23)

	patches, err := Tile(g, 5, nil)
	if err != nil {
		t.Fatalf("Tile failed: %v", err)
	}
	if got := patches[0].Height(); got != 5 {
		t.Fatalf("block height: got %d, want 5 (padded height 25)", got)
	}

	bottomRow := patches[len(patches)-1] // (4,4): covers padded rows 20-24
	for y := 3; y < 5; y++ {             // padded rows 23, 24
		for x := 0; x < bottomRow.Width(); x++ {
			if got := bottomRow.Data().At(x, y); got != 0 {
				t.Errorf("padding pixel (%d,%d): got %v, want 0", x, y, got)
			}
		}
	}
}

func TestTile_Invalid(t *testing.T) {
	g := gradientGrid(t, 4, 4)

	tests := []struct {
		name  string
		grid  *Grid
		count int
	}{
		{"zero count", g, 0},
		{"negative count", g, -3},
		{"nil grid", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tile(tt.grid, tt.count, nil)
			var dimErr *InvalidDimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("got %v, want *InvalidDimensionError", err)
			}
		})
	}
}

func TestTile_DegenerateBlockPropagates(t *testing.T) {
	// A constant grid makes every block degenerate for Otsu.
	g := constantGrid(t, 8, 8, 0.5)

	_, err := Tile(g, 2, nil)
	var degErr *DegenerateInputError
	if !errors.As(err, &degErr) {
		t.Fatalf("got %v, want wrapped *DegenerateInputError", err)
	}
}
