package colorspace

import "github.com/chewxy/math32"

// epsilon pads denominators in the hue-family conversions so achromatic
// colors (chroma ~ 0) divide by a tiny value instead of zero.
const epsilon = 1e-10

// hcyWeights are the simplified Rec.709 luma weights used by the HCY
// conversions. These are intentionally not the 0.2126729/0.7151522/0.0721750
// XYZ row used by the tonemapper; the two triples are near-identical but
// belong to different call sites.
var hcyWeights = [3]float32{0.2126, 0.7152, 0.0722}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

// rgbToHCV computes the shared hue/chroma/value intermediate.
// Hue is normalized to [0,1) with 0 at red.
func rgbToHCV(rgb [3]float32) (h, c, v float32) {
	r, g, b := rgb[0], rgb[1], rgb[2]
	v = max3(r, g, b)
	c = v - min3(r, g, b)

	var h6 float32
	switch {
	case r >= g && r >= b:
		h6 = (g - b) / (c + epsilon)
		if h6 < 0 {
			h6 += 6
		}
	case g >= b:
		h6 = 2 + (b-r)/(c+epsilon)
	default:
		h6 = 4 + (r-g)/(c+epsilon)
	}
	return h6 / 6, c, v
}

// hueToRGB expands a hue in [0,1) to the fully saturated RGB color on the
// hue wheel (chroma 1, value 1).
func hueToRGB(h float32) [3]float32 {
	h -= math32.Floor(h)
	h6 := h * 6
	x := 1 - math32.Abs(math32.Mod(h6, 2)-1)
	switch {
	case h6 < 1:
		return [3]float32{1, x, 0}
	case h6 < 2:
		return [3]float32{x, 1, 0}
	case h6 < 3:
		return [3]float32{0, 1, x}
	case h6 < 4:
		return [3]float32{0, x, 1}
	case h6 < 5:
		return [3]float32{x, 0, 1}
	default:
		return [3]float32{1, 0, x}
	}
}

func rgbToHSV(rgb [3]float32) [3]float32 {
	h, c, v := rgbToHCV(rgb)
	s := c / (v + epsilon)
	return [3]float32{h, s, v}
}

func hsvToRGB(v [3]float32) [3]float32 {
	hue := hueToRGB(v[0])
	s, val := v[1], v[2]
	return [3]float32{
		((hue[0]-1)*s + 1) * val,
		((hue[1]-1)*s + 1) * val,
		((hue[2]-1)*s + 1) * val,
	}
}

func rgbToHSL(rgb [3]float32) [3]float32 {
	h, c, v := rgbToHCV(rgb)
	l := v - c*0.5
	s := c / (1 - math32.Abs(2*l-1) + epsilon)
	return [3]float32{h, s, l}
}

func hslToRGB(v [3]float32) [3]float32 {
	hue := hueToRGB(v[0])
	s, l := v[1], v[2]
	c := (1 - math32.Abs(2*l-1)) * s
	return [3]float32{
		(hue[0]-0.5)*c + l,
		(hue[1]-0.5)*c + l,
		(hue[2]-0.5)*c + l,
	}
}

// rgbToHCY rescales chroma by the ratio of the actual luma to the luma of
// the pure-hue color, so chroma never exceeds what is representable at the
// given luma.
func rgbToHCY(rgb [3]float32) [3]float32 {
	h, c, _ := rgbToHCV(rgb)
	y := dot3(rgb, hcyWeights)
	z := dot3(hueToRGB(h), hcyWeights)
	if y < z {
		c *= z / (epsilon + y)
	} else if z < 1 {
		// epsilon must pair with (1 - y): epsilon+1 folds to 1 in float32
		// and the guard disappears at full luma.
		c *= (1 - z) / (epsilon + (1 - y))
	}
	return [3]float32{h, c, y}
}

func hcyToRGB(v [3]float32) [3]float32 {
	h, c, y := v[0], v[1], v[2]
	hue := hueToRGB(h)
	z := dot3(hue, hcyWeights)
	if y < z {
		c *= y / (epsilon + z)
	} else if z < 1 {
		c *= (1 - y) / (epsilon + (1 - z))
	}
	return [3]float32{
		(hue[0]-z)*c + y,
		(hue[1]-z)*c + y,
		(hue[2]-z)*c + y,
	}
}
