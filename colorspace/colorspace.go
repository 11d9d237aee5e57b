// Package colorspace converts linear-RGB colors to and from alternate
// color representations.
//
// All conversions are pure functions over [3]float32 vectors. A vector is
// tagged with its space only by context: the caller is responsible for not
// mixing spaces inside one computation. Conversions between two non-linear
// spaces always route through linear RGB, so the number of conversion
// routines stays linear in the number of spaces.
package colorspace

// Space identifies a color representation.
type Space uint8

const (
	// Linear is plain linear RGB. It is the zero value and the identity
	// conversion: ToSpace and FromSpace pass the vector through unchanged.
	Linear Space = iota
	// XYZ is CIE 1931 XYZ with sRGB primaries and D65 white.
	XYZ
	// XyY is the CIE xyY chromaticity representation derived from XYZ.
	XyY
	// HSL is hue/saturation/lightness with hue normalized to [0,1).
	HSL
	// HSV is hue/saturation/value with hue normalized to [0,1).
	HSV
	// SRGB is gamma-encoded sRGB using the exact piecewise transfer function.
	SRGB
	// HCY is hue/chroma/luma with Rec.709 luma weights.
	HCY
	// YCbCr is luma plus blue- and red-difference chroma on normalized
	// real values, not the [0,255] integer codec.
	YCbCr
	// OKLab is an approximate OKLab using the LMS cone matrix and a cube
	// root, without the secondary Lab matrix.
	OKLab
)

// String returns the space name for logging.
func (s Space) String() string {
	switch s {
	case Linear:
		return "Linear"
	case XYZ:
		return "XYZ"
	case XyY:
		return "xyY"
	case HSL:
		return "HSL"
	case HSV:
		return "HSV"
	case SRGB:
		return "sRGB"
	case HCY:
		return "HCY"
	case YCbCr:
		return "YCbCr"
	case OKLab:
		return "OKLab"
	default:
		return "Linear"
	}
}

// ToSpace converts a linear-RGB vector into the given space.
// Unknown spaces behave as Linear (identity).
func ToSpace(s Space, rgb [3]float32) [3]float32 {
	switch s {
	case XYZ:
		return rgbToXYZ(rgb)
	case XyY:
		return rgbToXyY(rgb)
	case HSL:
		return rgbToHSL(rgb)
	case HSV:
		return rgbToHSV(rgb)
	case SRGB:
		return rgbToSRGB(rgb)
	case HCY:
		return rgbToHCY(rgb)
	case YCbCr:
		return rgbToYCbCr(rgb)
	case OKLab:
		return rgbToOKLab(rgb)
	default:
		return rgb
	}
}

// FromSpace converts a vector in the given space back to linear RGB.
// Unknown spaces behave as Linear (identity).
func FromSpace(s Space, v [3]float32) [3]float32 {
	switch s {
	case XYZ:
		return xyzToRGB(v)
	case XyY:
		return xyYToRGB(v)
	case HSL:
		return hslToRGB(v)
	case HSV:
		return hsvToRGB(v)
	case SRGB:
		return srgbToRGB(v)
	case HCY:
		return hcyToRGB(v)
	case YCbCr:
		return ycbcrToRGB(v)
	case OKLab:
		return oklabToRGB(v)
	default:
		return v
	}
}

// Convert moves a vector from one space to another, routing through
// linear RGB when neither end is Linear.
func Convert(from, to Space, v [3]float32) [3]float32 {
	if from == to {
		return v
	}
	return ToSpace(to, FromSpace(from, v))
}
