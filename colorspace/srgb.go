package colorspace

import "github.com/chewxy/math32"

// LinearToSRGB converts one linear component to gamma-encoded sRGB using
// the exact piecewise transfer function (OETF).
func LinearToSRGB(c float32) float32 {
	if c < 0.0031308 {
		return c * 12.92
	}
	return 1.055*math32.Pow(c, 1.0/2.4) - 0.055
}

// SRGBToLinear converts one gamma-encoded sRGB component back to linear
// using the exact piecewise transfer function (EOTF).
func SRGBToLinear(s float32) float32 {
	if s < 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGBFast approximates the sRGB encode with a flat 1/2.2 power
// curve. Kept for API parity with the exact form; the pipeline itself
// always uses the exact transfer function.
func LinearToSRGBFast(c float32) float32 {
	return math32.Pow(c, 1.0/2.2)
}

// SRGBToLinearFast approximates the sRGB decode with a flat 2.2 power curve.
func SRGBToLinearFast(s float32) float32 {
	return math32.Pow(s, 2.2)
}

func rgbToSRGB(rgb [3]float32) [3]float32 {
	return [3]float32{
		LinearToSRGB(rgb[0]),
		LinearToSRGB(rgb[1]),
		LinearToSRGB(rgb[2]),
	}
}

func srgbToRGB(v [3]float32) [3]float32 {
	return [3]float32{
		SRGBToLinear(v[0]),
		SRGBToLinear(v[1]),
		SRGBToLinear(v[2]),
	}
}
