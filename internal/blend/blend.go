// Package blend implements separable blend modes and Porter-Duff
// source-over compositing on straight-alpha colours.
//
// Blending follows the W3C Compositing and Blending Level 1 model: the
// blend function B(Cb, Cs) is mixed with the source colour according to
// the backdrop alpha, and the result is composited source-over.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Porter, Duff. Compositing Digital Images (SIGGRAPH 1984)
package blend

// Color is a straight (non-premultiplied) RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Mode selects the blend function B(Cb, Cs).
type Mode int

const (
	// ModeNormal is plain source-over: B(Cb, Cs) = Cs.
	ModeNormal Mode = iota
	ModeMultiply
	ModeScreen
	ModeOverlay
	ModeDarken
	ModeLighten
	ModeColorDodge
	ModeColorBurn
	ModeHardLight
	ModeSoftLight
	ModeDifference
	ModeExclusion
)

var modeNames = [...]string{
	ModeNormal:     "normal",
	ModeMultiply:   "multiply",
	ModeScreen:     "screen",
	ModeOverlay:    "overlay",
	ModeDarken:     "darken",
	ModeLighten:    "lighten",
	ModeColorDodge: "dodge",
	ModeColorBurn:  "burn",
	ModeHardLight:  "hard_light",
	ModeSoftLight:  "soft_light",
	ModeDifference: "difference",
	ModeExclusion:  "exclusion",
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	return m >= ModeNormal && m <= ModeExclusion
}

// Composite blends src onto dst with mode m and returns the straight-alpha
// result:
//
//	Cr = (1 - αb)·Cs + αb·B(Cb, Cs)
//	αo = αs + αb·(1 - αs)
//	Co = (αs·Cr + αb·(1 - αs)·Cb) / αo
func Composite(dst, src Color, m Mode) Color {
	fn := channelFunc(m)
	ab, as := dst.A, src.A

	mix := func(cb, cs float64) float64 {
		return (1-ab)*cs + ab*fn(cb, cs)
	}
	cr := Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: as}
	return SourceOver(dst, cr)
}

// SourceOver composites src over dst (Porter-Duff src-over). The maths is
// done on premultiplied values and the result is un-premultiplied.
func SourceOver(dst, src Color) Color {
	s := Premultiply(src)
	d := Premultiply(dst)
	inv := 1 - s.A
	out := Color{
		R: s.R + d.R*inv,
		G: s.G + d.G*inv,
		B: s.B + d.B*inv,
		A: s.A + d.A*inv,
	}
	return Unpremultiply(out)
}
