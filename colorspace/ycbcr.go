package colorspace

// YCbCr on normalized real values. This is not the [0,255] integer codec:
// the forward and inverse constants are the usual BT.601-derived pairs but
// the transform operates on floats and is only approximately round-trip
// exact (the constant pairs are rounded independently).

func rgbToYCbCr(rgb [3]float32) [3]float32 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	y := 0.299*r + 0.587*g + 0.114*b
	return [3]float32{
		y,
		(b - y) * 0.565,
		(r - y) * 0.713,
	}
}

func ycbcrToRGB(v [3]float32) [3]float32 {
	y, cb, cr := v[0], v[1], v[2]
	return [3]float32{
		y + 1.403*cr,
		y - 0.344*cb - 0.714*cr,
		y + 1.770*cb,
	}
}
