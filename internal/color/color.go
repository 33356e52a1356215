// Package color implements the colour-space kernels used by photon's
// point operations.
//
// All kernels are pure functions on float64 triples. RGB components are
// normalised to [0,1]; hue is in degrees [0,360). Conversions back to
// 8-bit go through [Quantize], which clamps and rounds half to even.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - CIE 1976 L*a*b*: https://en.wikipedia.org/wiki/CIELAB_color_space
package color

// RGB is a normalised colour triple. Whether the components are gamma
// encoded or linear depends on context.
type RGB struct {
	R, G, B float64
}

// FromBytes normalises 8-bit sRGB components to [0,1].
func FromBytes(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Bytes quantises the triple back to 8-bit components.
func (c RGB) Bytes() (r, g, b uint8) {
	return Quantize(c.R), Quantize(c.G), Quantize(c.B)
}
