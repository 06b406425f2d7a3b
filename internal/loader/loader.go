// Package loader decodes image files into normalized grayscale intensity
// grids for the annotation core.
//
// Decoding supports PNG, JPEG, and GIF. Color images are reduced to a single
// luminance channel and scaled to [0,1] before they reach the core. An
// optional Gaussian pre-smoothing pass can be enabled for noisy sources;
// it is off by default so thresholding sees the image as decoded.
//
// Decode failures are reported as *DecodeError and always propagate to the
// caller; there is no fallback image.
package loader

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/friendlygt/mask-tools-mcp/internal/mask"
)

// DecodeError reports a file that could not be opened or decoded as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Cache provides thread-safe caching of loaded intensity grids to avoid
// redundant disk reads and grayscale conversions. Grids are immutable, so
// cached entries can be shared freely.
type Cache struct {
	mu             sync.RWMutex
	smoothingSigma float64
	grids          map[string]*mask.Grid
}

// NewCache creates an empty grid cache. A smoothingSigma above zero enables
// Gaussian pre-smoothing of every loaded image with that radius.
func NewCache(smoothingSigma float64) *Cache {
	return &Cache{
		smoothingSigma: smoothingSigma,
		grids:          make(map[string]*mask.Grid),
	}
}

// Load retrieves the grid for path from the cache, decoding and converting
// the file on first use. The grid is cached under the exact path string.
func (c *Cache) Load(path string) (*mask.Grid, error) {
	c.mu.RLock()
	if g, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	g, err := GridFromImage(img, c.smoothingSigma)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	c.mu.Lock()
	c.grids[path] = g
	c.mu.Unlock()

	return g, nil
}

// Evict removes the grid cached for path, if present.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.grids, path)
	c.mu.Unlock()
}

// Clear removes all cached grids.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.grids = make(map[string]*mask.Grid)
	c.mu.Unlock()
}

// GridFromImage converts a decoded image to a normalized intensity grid.
// A sigma above zero applies Gaussian smoothing before the grayscale
// reduction.
func GridFromImage(img image.Image, sigma float64) (*mask.Grid, error) {
	if sigma > 0 {
		img = blur.Gaussian(img, sigma)
	}
	gray := imaging.Grayscale(img)

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			// Grayscale output has R == G == B; any channel is the luminance.
			rows[y][x] = float64(gray.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y).R) / 255.0
		}
	}
	return mask.NewGrid(rows)
}
