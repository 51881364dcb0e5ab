package game

import "image/color"

func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// white returns opaque-to-transparent white; alpha is 0-255.
func white(alpha uint8) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: alpha}
}
