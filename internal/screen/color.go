package screen

import "math"

// BlackbodyRGB approximates the perceived color of a blackbody radiator
// at the given temperature in kelvin, clamped to [1000, 40000]. Cool
// stars come out red through orange, ~6600 K is near white, and hotter
// stars shade into blue.
func BlackbodyRGB(kelvin float64) (r, g, b uint8) {
	if kelvin < 1000 {
		kelvin = 1000
	}
	if kelvin > 40000 {
		kelvin = 40000
	}
	t := kelvin / 100

	var rf, gf, bf float64
	if t <= 66 {
		rf = 255
		gf = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		rf = 329.698727446 * math.Pow(t-60, -0.1332047592)
		gf = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}
	switch {
	case t >= 66:
		bf = 255
	case t <= 19:
		bf = 0
	default:
		bf = 138.5177312231*math.Log(t-10) - 305.0447927307
	}
	return clampByte(rf), clampByte(gf), clampByte(bf)
}

// PointSize maps luminosity to a draw radius in pixels. Brightness
// scales with area, so the radius grows with the square root.
func PointSize(luminosity float64) float64 {
	if luminosity <= 0 {
		return 0
	}
	return 1 + 1.5*math.Sqrt(luminosity)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
