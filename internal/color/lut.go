package color

// sRGBToLinearLUT provides O(1) sRGB to linear conversion for bytes.
var sRGBToLinearLUT [256]float64

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = SRGBToLinear(float64(i) / 255)
	}
}

// SRGBToLinearFast converts an sRGB byte to a linear component using a
// lookup table. It returns exactly SRGBToLinear(float64(s)/255).
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float64 {
	return sRGBToLinearLUT[s]
}
