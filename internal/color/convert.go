package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ToLinear converts every component of c from sRGB to linear.
func ToLinear(c RGB) RGB {
	return RGB{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B)}
}

// Rec. 709 luma coefficients, applied to linear components.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luminance returns the relative luminance of 8-bit sRGB components,
// re-encoded to sRGB and scaled to [0,255].
func Luminance(r, g, b uint8) float64 {
	y := LumaR*SRGBToLinearFast(r) + LumaG*SRGBToLinearFast(g) + LumaB*SRGBToLinearFast(b)
	return LinearToSRGB(y) * 255
}

// Quantize maps a normalised component to a byte: clamp to [0,1], scale
// by 255 and round half to even. A NaN input means a kernel produced an
// undefined value, which is a programming error.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) {
		panic("color: NaN component")
	}
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.RoundToEven(v * 255))
}

// Clamp255 rounds half to even and clamps to [0,255].
func Clamp255(v float64) uint8 {
	if math.IsNaN(v) {
		panic("color: NaN component")
	}
	v = math.RoundToEven(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
