package filter

import "math"

// ColorMatrix is a 4x5 colour transformation in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Components are straight-alpha values in [0,255]; the fifth column is a
// bias in the same units.
type ColorMatrix [20]float64

// Identity returns the matrix that leaves colours unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Sepia returns the classic sepia tone matrix.
func Sepia() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Brightness scales RGB by factor: 0 = black, 1 = unchanged.
func Brightness(factor float64) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast maps c to (c-128)*factor+128: 0 = grey, 1 = unchanged.
func Contrast(factor float64) ColorMatrix {
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between Rec. 709 grey (0) and identity (1).
func Saturation(factor float64) ColorMatrix {
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates hue by degrees in the luminance-preserving RGB space
// used by SVG feColorMatrix.
func HueRotate(degrees float64) ColorMatrix {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return ColorMatrix{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928, 0, 0,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283, 0, 0,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Transform applies m to a straight-alpha colour and returns unclamped
// results.
func (m *ColorMatrix) Transform(r, g, b, a float64) (float64, float64, float64, float64) {
	return m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4],
		m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9],
		m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14],
		m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
}

// Then returns the matrix that applies m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := range 4 {
		for col := range 4 {
			sum := 0.0
			for k := range 4 {
				sum += next[row*5+k] * m[k*5+col]
			}
			out[row*5+col] = sum
		}
		out[row*5+4] = next[row*5+0]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return out
}
