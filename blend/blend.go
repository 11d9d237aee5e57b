// Package blend implements the layer compositing modes of the post-process
// pipeline.
//
// Every mode has an unweighted form, Blend, and an opacity-weighted form,
// BlendWeighted. Colors are [3]float32 vectors; the package assumes both
// operands are expressed in the same color space and performs no range
// checking beyond what the individual formulas require. Components are
// nominally in [0,1] but out-of-range inputs degrade to out-of-range
// outputs, never to a panic.
package blend

// Mode selects a compositing formula.
type Mode uint8

const (
	// ModeDefault is the unnamed zero mode. Its unweighted form is additive
	// (same as ModeAdd); its weighted form is a plain lerp toward the
	// overlay, like ModeNormal. The asymmetry is inherited from the shader
	// this package reproduces and is observable behavior, so it is kept
	// rather than unified.
	ModeDefault Mode = iota
	ModeNormal
	ModeAdd
	ModeAverage
	ModeColorBurn
	ModeColorDodge
	ModeDarken
	ModeDifference
	ModeExclusion
	ModeGlow
	ModeHardLight
	ModeHardMix
	ModeLighten
	ModeLinearBurn
	ModeLinearDodge
	ModeLinearLight
	ModeMultiply
	ModeNegation
	ModeOverlay
	ModePhoenix
	ModePinLight
	ModeReflect
	ModeScreen
	ModeSoftLight
	ModeSubtract
	ModeVividLight

	// NumModes is the number of defined modes.
	NumModes = iota
)

// String returns the mode name for logging.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Default"
}

var modeNames = [NumModes]string{
	"Default", "Normal", "Add", "Average", "ColorBurn", "ColorDodge",
	"Darken", "Difference", "Exclusion", "Glow", "HardLight", "HardMix",
	"Lighten", "LinearBurn", "LinearDodge", "LinearLight", "Multiply",
	"Negation", "Overlay", "Phoenix", "PinLight", "Reflect", "Screen",
	"SoftLight", "Subtract", "VividLight",
}

// Blend composites overlay onto base using the given mode.
// Unrecognized modes (including ModeDefault) fall back to additive blending.
func Blend(mode Mode, base, overlay [3]float32) [3]float32 {
	switch mode {
	case ModeNormal:
		return overlay
	case ModeAdd, ModeLinearDodge:
		return perChannel(base, overlay, addc)
	case ModeAverage:
		return [3]float32{
			(base[0] + overlay[0]) * 0.5,
			(base[1] + overlay[1]) * 0.5,
			(base[2] + overlay[2]) * 0.5,
		}
	case ModeColorBurn:
		return perChannel(base, overlay, colorBurn)
	case ModeColorDodge:
		return perChannel(base, overlay, colorDodge)
	case ModeDarken:
		return perChannel(base, overlay, darken)
	case ModeDifference:
		return perChannel(base, overlay, difference)
	case ModeExclusion:
		return perChannel(base, overlay, exclusion)
	case ModeGlow:
		return perChannel(base, overlay, glow)
	case ModeHardLight:
		return perChannel(base, overlay, hardLight)
	case ModeHardMix:
		return perChannel(base, overlay, hardMix)
	case ModeLighten:
		return perChannel(base, overlay, lighten)
	case ModeLinearBurn, ModeSubtract:
		return perChannel(base, overlay, linearBurn)
	case ModeLinearLight:
		return perChannel(base, overlay, linearLight)
	case ModeMultiply:
		return [3]float32{
			base[0] * overlay[0],
			base[1] * overlay[1],
			base[2] * overlay[2],
		}
	case ModeNegation:
		return perChannel(base, overlay, negation)
	case ModeOverlay:
		return perChannel(base, overlay, overlayc)
	case ModePhoenix:
		return perChannel(base, overlay, phoenix)
	case ModePinLight:
		return perChannel(base, overlay, pinLight)
	case ModeReflect:
		return perChannel(base, overlay, reflect)
	case ModeScreen:
		return perChannel(base, overlay, screen)
	case ModeSoftLight:
		return perChannel(base, overlay, softLight)
	case ModeVividLight:
		return perChannel(base, overlay, vividLight)
	default:
		return perChannel(base, overlay, addc)
	}
}

// BlendWeighted composites overlay onto base at the given opacity:
// lerp(base, Blend(mode, base, overlay), opacity) for every named mode.
// ModeDefault and unrecognized modes instead lerp straight toward the
// overlay, i.e. a Normal composite at the given opacity.
func BlendWeighted(mode Mode, base, overlay [3]float32, opacity float32) [3]float32 {
	// Exact boundary: at opacity 0 the layer contributes nothing even when
	// the overlay is non-finite (e.g. a black layer expressed in xyY).
	// GPU arithmetic collapses 0*NaN the same way; a straight lerp here
	// would not.
	if opacity == 0 {
		return base
	}
	switch {
	case mode == ModeDefault, mode >= NumModes:
		return lerp3(base, overlay, opacity)
	default:
		return lerp3(base, Blend(mode, base, overlay), opacity)
	}
}

// perChannel applies a scalar blend formula to each channel pair.
func perChannel(base, overlay [3]float32, f func(b, v float32) float32) [3]float32 {
	return [3]float32{
		f(base[0], overlay[0]),
		f(base[1], overlay[1]),
		f(base[2], overlay[2]),
	}
}
