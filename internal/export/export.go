// Package export renders masks and overlays into PNG form for callers:
// base64 strings for the wire and image files on disk. Mask persistence is
// a thin wrapper around the core; no file format beyond PNG is defined.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/friendlygt/mask-tools-mcp/internal/mask"
)

// MIMEType identifies the encoding used by PNGBase64 results.
const MIMEType = "image/png"

// MaskImage renders a bitmap as an 8-bit grayscale image: foreground pixels
// are white (255), background pixels black (0).
func MaskImage(bm *mask.Bitmap) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, bm.Width(), bm.Height()))
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.At(x, y) {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// PNGBase64 encodes an image as a base64 PNG string.
func PNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// SaveImage writes an image to path, with the format inferred from the file
// extension (.png, .jpg, .gif, ...).
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
