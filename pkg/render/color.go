// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LifeTint — множитель яркости башни: чем меньше жизней, тем темнее, но не ниже половины.
func LifeTint(life, maxLife int) float32 {
	if maxLife <= 0 || life >= maxLife {
		return 1
	}
	if life < 0 {
		life = 0
	}
	return 0.5 + 0.5*float32(life)/float32(maxLife)
}
