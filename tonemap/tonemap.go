// Package tonemap compresses HDR linear colors into displayable range with
// a filmic response curve, an optional highlight-desaturation pass
// ("crosstalk"), and the final gamma encode.
package tonemap

import "github.com/chewxy/math32"

// Config selects which tonemapping stages run. Brightness and gamma are
// passed separately because they apply even when the curve is disabled.
type Config struct {
	// Enabled runs the filmic curve. When false the color passes through
	// with only the brightness scale applied.
	Enabled bool

	// PreserveLuminance applies the curve to scalar luminance and rescales
	// the color by the resulting ratio, avoiding the hue shift of the
	// per-channel form. When false the curve is applied per channel.
	PreserveLuminance bool

	// Crosstalk desaturates near-clipped highlights smoothly instead of
	// letting each channel clip independently.
	Crosstalk bool

	// CrosstalkUsesLuminance drives the crosstalk pivot from luminance
	// (the Y of xyY) instead of the per-channel maximum.
	CrosstalkUsesLuminance bool
}

// lumaWeights is the Y row of the sRGB RGB-to-XYZ matrix. The HCY converter
// uses the rounded 0.2126/0.7152/0.0722 triple; the two are near-identical
// but kept distinct per call site.
var lumaWeights = [3]float32{0.2126729, 0.7151522, 0.0721750}

// Crosstalk shaping constants.
const (
	saturation          = 1.1
	crosstalkSaturation = 2.0
	invCrosstalkAmount  = 1.7
)

// Aces is the Narkowicz ACES filmic approximation.
// Aces(0) == 0 and the curve is monotonically non-decreasing on [0, inf).
func Aces(x float32) float32 {
	const (
		a = 2.51
		b = 0.03
		c = 2.43
		d = 0.59
		e = 0.14
	)
	return x * (a*x + b) / (x*(c*x+d) + e)
}

// Luminance returns the CIE Y of a linear RGB color.
func Luminance(c [3]float32) float32 {
	return c[0]*lumaWeights[0] + c[1]*lumaWeights[1] + c[2]*lumaWeights[2]
}

// Map applies the brightness scale and the configured tonemapping stages to
// a linear RGB color. The result stays linear; gamma encoding is a separate
// step (see Gamma).
func Map(c [3]float32, brightness float32, cfg Config) [3]float32 {
	c = [3]float32{c[0] * brightness, c[1] * brightness, c[2] * brightness}
	if !cfg.Enabled {
		return c
	}

	if cfg.PreserveLuminance {
		// Curve the luminance alone and rescale the full-precision color.
		// At l == 0 the ratio is 0/0; the containment clamp below maps the
		// resulting NaN to 0, keeping the damage inside this pixel.
		l := Luminance(c)
		ratio := Aces(l) / l
		c = [3]float32{c[0] * ratio, c[1] * ratio, c[2] * ratio}
	} else {
		c = [3]float32{Aces(c[0]), Aces(c[1]), Aces(c[2])}
	}

	// Contain non-finite and runaway intermediates while still allowing
	// HDR values above 1 into the crosstalk stage.
	c = [3]float32{contain(c[0]), contain(c[1]), contain(c[2])}

	if cfg.Crosstalk {
		c = Crosstalk(c, cfg.CrosstalkUsesLuminance)
	}
	return c
}

// Crosstalk smoothly converges channel ratios toward white as the pivot m
// approaches the clipping point, instead of hard-clamping each channel.
// With the pivot at or below 1 an achromatic color passes through
// unchanged; saturated colors are gently desaturated.
func Crosstalk(c [3]float32, useLuminance bool) [3]float32 {
	var m float32
	if useLuminance {
		m = Luminance(c)
	} else {
		m = math32.Max(c[0], math32.Max(c[1], c[2]))
	}

	// m == 0 (pure black) divides to NaN here; the gamma clamp downstream
	// absorbs it. Matches the unguarded shader arithmetic.
	ratio := [3]float32{c[0] / m, c[1] / m, c[2] / m}
	if m > 1 {
		m = 1
	}

	ratio = pow3(ratio, saturation/crosstalkSaturation)
	t := math32.Pow(m, invCrosstalkAmount)
	ratio = [3]float32{
		ratio[0] + (1-ratio[0])*t,
		ratio[1] + (1-ratio[1])*t,
		ratio[2] + (1-ratio[2])*t,
	}
	ratio = pow3(ratio, crosstalkSaturation)

	return [3]float32{ratio[0] * m, ratio[1] * m, ratio[2] * m}
}

// Gamma applies the inverse-gamma exponent and clamps to [0,1]. This is the
// last stage of the pipeline; alpha is never routed through it.
func Gamma(c [3]float32, invGamma float32) [3]float32 {
	return [3]float32{
		clamp01(math32.Pow(c[0], invGamma)),
		clamp01(math32.Pow(c[1], invGamma)),
		clamp01(math32.Pow(c[2], invGamma)),
	}
}

func pow3(v [3]float32, e float32) [3]float32 {
	return [3]float32{
		math32.Pow(v[0], e),
		math32.Pow(v[1], e),
		math32.Pow(v[2], e),
	}
}

// contain clamps to [0,100]. Written so NaN falls through to 0.
func contain(x float32) float32 {
	if x > 100 {
		return 100
	}
	if x >= 0 {
		return x
	}
	return 0
}

// clamp01 clamps to [0,1]. Written so NaN falls through to 0.
func clamp01(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x >= 0 {
		return x
	}
	return 0
}
