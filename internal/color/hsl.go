package color

import "math"

// HSL is a hue/saturation/lightness triple. H is in degrees [0,360),
// S and L are in [0,1].
type HSL struct {
	H, S, L float64
}

// HSV is a hue/saturation/value triple. H is in degrees [0,360),
// S and V are in [0,1].
type HSV struct {
	H, S, V float64
}

// hue computes the hexcone hue of c in degrees. Achromatic colours get 0.
func hue(c RGB, maxC, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case c.R:
		h = math.Mod((c.G-c.B)/chroma, 6)
	case c.G:
		h = (c.B-c.R)/chroma + 2
	default:
		h = (c.R-c.G)/chroma + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

// fromHueChroma builds an RGB colour from hue, chroma and the offset m
// added to every component.
func fromHueChroma(h, chroma, m float64) RGB {
	hp := NormalizeHue(h) / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{R: r + m, G: g + m, B: b + m}
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// RGBToHSL converts a normalised sRGB colour to HSL.
func RGBToHSL(c RGB) HSL {
	maxC := max(c.R, c.G, c.B)
	minC := min(c.R, c.G, c.B)
	chroma := maxC - minC
	l := (maxC + minC) / 2

	var s float64
	if chroma != 0 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return HSL{H: hue(c, maxC, chroma), S: s, L: l}
}

// HSLToRGB converts HSL back to a normalised sRGB colour. S and L are
// clamped to [0,1] first.
func HSLToRGB(c HSL) RGB {
	s := clamp01(c.S)
	l := clamp01(c.L)
	if s == 0 {
		return RGB{R: l, G: l, B: l}
	}
	chroma := (1 - math.Abs(2*l-1)) * s
	return fromHueChroma(c.H, chroma, l-chroma/2)
}

// RGBToHSV converts a normalised sRGB colour to HSV.
func RGBToHSV(c RGB) HSV {
	maxC := max(c.R, c.G, c.B)
	minC := min(c.R, c.G, c.B)
	chroma := maxC - minC

	var s float64
	if maxC != 0 {
		s = chroma / maxC
	}
	return HSV{H: hue(c, maxC, chroma), S: s, V: maxC}
}

// HSVToRGB converts HSV back to a normalised sRGB colour. S and V are
// clamped to [0,1] first.
func HSVToRGB(c HSV) RGB {
	s := clamp01(c.S)
	v := clamp01(c.V)
	if s == 0 {
		return RGB{R: v, G: v, B: v}
	}
	chroma := v * s
	return fromHueChroma(c.H, chroma, v-chroma)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
