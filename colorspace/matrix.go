package colorspace

import "github.com/chewxy/math32"

// matrix3 is a row-major 3x3 matrix.
type matrix3 [3][3]float32

// mulVec multiplies the matrix by a column vector.
func (m *matrix3) mulVec(v [3]float32) [3]float32 {
	return [3]float32{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// sRGB D65 primaries, CIE 1931. Both directions are fixed constants;
// the inverse is never computed at runtime.
var (
	rgbToXYZMat = matrix3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToRGBMat = matrix3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

func rgbToXYZ(rgb [3]float32) [3]float32 {
	return rgbToXYZMat.mulVec(rgb)
}

func xyzToRGB(xyz [3]float32) [3]float32 {
	return xyzToRGBMat.mulVec(xyz)
}

// rgbToXyY derives CIE xyY chromaticity coordinates from XYZ.
// The X+Y+Z denominator is deliberately unguarded to match the shader this
// stage reproduces: pure black produces NaN chromaticity rather than a
// special-cased value. Known numerical risk, kept for output parity.
func rgbToXyY(rgb [3]float32) [3]float32 {
	xyz := rgbToXYZ(rgb)
	sum := xyz[0] + xyz[1] + xyz[2]
	return [3]float32{xyz[0] / sum, xyz[1] / sum, xyz[1]}
}

// xyYToRGB inverts rgbToXyY. The y denominator is unguarded for the same
// reason as the forward direction.
func xyYToRGB(v [3]float32) [3]float32 {
	x, y, yy := v[0], v[1], v[2]
	xyz := [3]float32{
		yy * x / y,
		yy,
		yy * (1 - x - y) / y,
	}
	return xyzToRGB(xyz)
}

// OKLab approximation: cube-rooted LMS cone response, skipping the
// secondary Lab matrix. The two matrices are exact inverses of each other.
var (
	rgbToLMSMat = matrix3{
		{0.4121656120, 0.5362752080, 0.0514575653},
		{0.2118591070, 0.6807189584, 0.1074065790},
		{0.0883097947, 0.2818474174, 0.6302613616},
	}
	lmsToRGBMat = matrix3{
		{4.0767245293, -3.3072168827, 0.2307590544},
		{-1.2681437731, 2.6093323231, -0.3411344290},
		{-0.0041119885, -0.7034763098, 1.7068625689},
	}
)

func rgbToOKLab(rgb [3]float32) [3]float32 {
	lms := rgbToLMSMat.mulVec(rgb)
	// pow(x, 1/3), not a signed cube root: negative cone responses come
	// out NaN. This matches the upstream behavior; the pipeline clamps
	// before this stage so in practice inputs are non-negative.
	return [3]float32{
		math32.Pow(lms[0], 1.0/3.0),
		math32.Pow(lms[1], 1.0/3.0),
		math32.Pow(lms[2], 1.0/3.0),
	}
}

func oklabToRGB(v [3]float32) [3]float32 {
	lms := [3]float32{
		v[0] * v[0] * v[0],
		v[1] * v[1] * v[1],
		v[2] * v[2] * v[2],
	}
	return lmsToRGBMat.mulVec(lms)
}
