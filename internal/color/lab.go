package color

import "math"

// D65 reference white in XYZ.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// linearToXYZ is the sRGB (D65) primaries matrix.
var linearToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// xyzToLinear is the exact inverse of linearToXYZ.
var xyzToLinear = invert3(linearToXYZ)

// XYZ is a CIE 1931 tristimulus value relative to D65 with Y in [0,1].
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* colour. L is in [0,100].
type Lab struct {
	L, A, B float64
}

// LCh is the cylindrical form of Lab. H is in degrees [0,360).
type LCh struct {
	L, C, H float64
}

// LinearToXYZ converts linear sRGB to XYZ.
func LinearToXYZ(c RGB) XYZ {
	m := &linearToXYZ
	return XYZ{
		X: m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B,
		Y: m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B,
		Z: m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B,
	}
}

// XYZToLinear converts XYZ to linear sRGB. The result may fall outside
// [0,1] for colours outside the sRGB gamut.
func XYZToLinear(c XYZ) RGB {
	m := &xyzToLinear
	return RGB{
		R: m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z,
		G: m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z,
		B: m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z,
	}
}

const (
	labDelta  = 6.0 / 29.0
	labDelta3 = labDelta * labDelta * labDelta
)

func labF(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(f float64) float64 {
	if f > labDelta {
		return f * f * f
	}
	return 3 * labDelta * labDelta * (f - 4.0/29.0)
}

// XYZToLab converts XYZ to L*a*b* using the D65 white point.
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz)}
}

// LabToXYZ converts L*a*b* back to XYZ.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{X: whiteX * labFInv(fx), Y: whiteY * labFInv(fy), Z: whiteZ * labFInv(fz)}
}

// LabToLCh converts Lab to its cylindrical form.
func LabToLCh(c Lab) LCh {
	chroma := math.Hypot(c.A, c.B)
	if chroma == 0 {
		return LCh{L: c.L}
	}
	h := math.Atan2(c.B, c.A) * 180 / math.Pi
	return LCh{L: c.L, C: chroma, H: NormalizeHue(h)}
}

// LChToLab converts LCh back to Lab. Negative chroma is treated as zero.
func LChToLab(c LCh) Lab {
	chroma := max(c.C, 0)
	rad := c.H * math.Pi / 180
	return Lab{L: c.L, A: chroma * math.Cos(rad), B: chroma * math.Sin(rad)}
}

// RGBToLab converts a normalised sRGB colour to Lab.
func RGBToLab(c RGB) Lab {
	return XYZToLab(LinearToXYZ(ToLinear(c)))
}

// LabToRGB converts Lab to normalised sRGB. Out-of-gamut components are
// left for Quantize to clamp.
func LabToRGB(c Lab) RGB {
	lin := XYZToLinear(LabToXYZ(c))
	return RGB{R: linearToSRGBSigned(lin.R), G: linearToSRGBSigned(lin.G), B: linearToSRGBSigned(lin.B)}
}

// RGBToLCh converts a normalised sRGB colour to LCh.
func RGBToLCh(c RGB) LCh {
	return LabToLCh(RGBToLab(c))
}

// LChToRGB converts LCh to normalised sRGB.
func LChToRGB(c LCh) RGB {
	return LabToRGB(LChToLab(c))
}

// linearToSRGBSigned applies the OETF to negative inputs by symmetry so
// that out-of-gamut values stay finite.
func linearToSRGBSigned(l float64) float64 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	return LinearToSRGB(l)
}

func invert3(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	co00 := e*i - f*h
	co01 := -(d*i - f*g)
	co02 := d*h - e*g
	det := a*co00 + b*co01 + c*co02

	return [3][3]float64{
		{co00 / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{co01 / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{co02 / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}
