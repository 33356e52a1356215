package blend

// Premultiply scales the colour components by alpha.
func Premultiply(c Color) Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides the colour components by alpha. A fully
// transparent colour comes back as transparent black.
func Unpremultiply(c Color) Color {
	if c.A <= 0 {
		return Color{}
	}
	if c.A >= 1 {
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}
