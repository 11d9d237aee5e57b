package blend

import "github.com/chewxy/math32"

// Scalar blend formulas. b is the base (accumulator) channel, v the overlay
// channel. Division-prone modes branch on the exact singular value the way
// the classic Photoshop-style formulas do; other inputs may still divide by
// small values and produce large results, which the pipeline clamps later.

func addc(b, v float32) float32 {
	return math32.Min(b+v, 1)
}

func colorBurn(b, v float32) float32 {
	if v == 0 {
		return v
	}
	return math32.Max(1-(1-b)/v, 0)
}

func colorDodge(b, v float32) float32 {
	if v == 1 {
		return v
	}
	return math32.Min(b/(1-v), 1)
}

func darken(b, v float32) float32 {
	return math32.Min(v, b)
}

func difference(b, v float32) float32 {
	return math32.Abs(b - v)
}

func exclusion(b, v float32) float32 {
	return b + v - 2*b*v
}

// glow is Reflect with the operands swapped.
func glow(b, v float32) float32 {
	return reflect(v, b)
}

// hardLight is Overlay with the operands swapped.
func hardLight(b, v float32) float32 {
	return overlayc(v, b)
}

func hardMix(b, v float32) float32 {
	if vividLight(b, v) < 0.5 {
		return 0
	}
	return 1
}

func lighten(b, v float32) float32 {
	return math32.Max(v, b)
}

// linearBurn doubles as Subtract; the two enumerators share this formula.
func linearBurn(b, v float32) float32 {
	return math32.Max(b+v-1, 0)
}

func linearLight(b, v float32) float32 {
	if v < 0.5 {
		return linearBurn(b, 2*v)
	}
	return addc(b, 2*(v-0.5))
}

func negation(b, v float32) float32 {
	return 1 - math32.Abs(1-b-v)
}

func overlayc(b, v float32) float32 {
	if b < 0.5 {
		return 2 * b * v
	}
	return 1 - 2*(1-b)*(1-v)
}

func phoenix(b, v float32) float32 {
	return math32.Min(b, v) - math32.Max(b, v) + 1
}

func pinLight(b, v float32) float32 {
	if v < 0.5 {
		return darken(b, 2*v)
	}
	return lighten(b, 2*(v-0.5))
}

func reflect(b, v float32) float32 {
	if v == 1 {
		return v
	}
	return math32.Min(b*b/(1-v), 1)
}

func screen(b, v float32) float32 {
	return 1 - (1-b)*(1-v)
}

func softLight(b, v float32) float32 {
	if v < 0.5 {
		return 2*b*v + b*b*(1-2*v)
	}
	return math32.Sqrt(b)*(2*v-1) + 2*b*(1-v)
}

func vividLight(b, v float32) float32 {
	if v < 0.5 {
		return colorBurn(b, 2*v)
	}
	return colorDodge(b, 2*(v-0.5))
}
