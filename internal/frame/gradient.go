package frame

import (
	"image"
	"image/color"
	"math"
)

// Gradient renders a circular gradient, inner at the center fading to
// outer at the corners.
func Gradient(width, height int, inner, outer color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx, cy := float64(width)/2, float64(height)/2
	radius := math.Hypot(cx, cy)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 0.0
			if radius > 0 {
				t = clamp(math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)/radius, 0, 1)
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = mix(inner.R, outer.R, t)
			img.Pix[i+1] = mix(inner.G, outer.G, t)
			img.Pix[i+2] = mix(inner.B, outer.B, t)
			img.Pix[i+3] = mix(inner.A, outer.A, t)
		}
	}
	return img
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(math.Round(lerp(float64(a), float64(b), t)))
}
