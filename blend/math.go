package blend

// lerp interpolates linearly between a and b.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// lerp3 interpolates each channel of two color vectors.
func lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		lerp(a[0], b[0], t),
		lerp(a[1], b[1], t),
		lerp(a[2], b[2], t),
	}
}
