package mask

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// overlayAlpha scales the saturation contributed by the mask tint.
const overlayAlpha = 0.6

// composeOverlay renders the intensity data with masked pixels tinted red
// and unmasked pixels left as neutral grayscale.
//
// The compositing runs in HSV space: the grayscale image (intensity
// replicated into R, G, B) keeps its value channel, while its hue and
// saturation are replaced by those of a pure-red mask image, the saturation
// scaled by overlayAlpha. The result is converted back to RGB and quantized
// to 8 bits per channel with rounding. Unmasked pixels pick up zero hue and
// zero saturation, so they come out as the original grayscale.
func composeOverlay(data *Grid, mask *Bitmap) *image.RGBA {
	w, h := data.Width(), data.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := data.At(x, y)
			_, _, grayV := colorful.Color{R: v, G: v, B: v}.Hsv()

			var tint colorful.Color
			if mask.At(x, y) {
				tint.R = 1
			}
			tintH, tintS, _ := tint.Hsv()

			r, g, b := colorful.Hsv(tintH, tintS*overlayAlpha, grayV).Clamped().RGB255()
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}
