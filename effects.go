package photon

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/photon/internal/color"
	"github.com/gogpu/photon/internal/filter"
)

// ColorMatrix is a 4x5 row-major colour transform on straight-alpha
// values in [0,255]; the fifth column is a bias.
type ColorMatrix [20]float64

// ApplyMatrix returns a PixelFunc applying m. The alpha row is evaluated
// too, but only reaches the image when the Map mask includes A.
func ApplyMatrix(m ColorMatrix) PixelFunc {
	fm := filter.ColorMatrix(m)
	return colorMatrixFunc(&fm)
}

func colorMatrixFunc(m *filter.ColorMatrix) PixelFunc {
	return func(p Pixel) Pixel {
		r, g, b, a := m.Transform(float64(p.R), float64(p.G), float64(p.B), float64(p.A))
		return Pixel{R: color.Clamp255(r), G: color.Clamp255(g), B: color.Clamp255(b), A: color.Clamp255(a)}
	}
}

// ComposeMatrices returns the single matrix equivalent to applying ms in
// order. No matrices yields the identity.
func ComposeMatrices(ms ...ColorMatrix) ColorMatrix {
	out := filter.Identity()
	for _, m := range ms {
		out = out.Then(filter.ColorMatrix(m))
	}
	return ColorMatrix(out)
}

// BrightnessMatrix scales RGB by factor in [0,8]: 0 is black, 1 leaves
// the colour unchanged.
func BrightnessMatrix(factor float64) (ColorMatrix, error) {
	if err := inRange("brightness factor", factor, 0, 8); err != nil {
		return ColorMatrix{}, err
	}
	return ColorMatrix(filter.Brightness(factor)), nil
}

// SaturationMatrix mixes each colour with its Rec. 709 grey by factor in
// [0,8]: 0 is greyscale, 1 leaves the colour unchanged. Grey is computed
// on the stored values, so the luma is preserved without a linear
// round trip.
func SaturationMatrix(factor float64) (ColorMatrix, error) {
	if err := inRange("saturation factor", factor, 0, 8); err != nil {
		return ColorMatrix{}, err
	}
	return ColorMatrix(filter.Saturation(factor)), nil
}

// HueRotateMatrix rotates hue by degrees with the luminance-preserving
// matrix of SVG feColorMatrix. Unlike HueRotateIn no colour space round
// trip is made, so the result is cheaper but only approximately
// hue-exact.
func HueRotateMatrix(degrees float64) (ColorMatrix, error) {
	if err := finite("degrees", degrees); err != nil {
		return ColorMatrix{}, err
	}
	return ColorMatrix(filter.HueRotate(degrees)), nil
}

// Brighten adds delta in [-255,255] to every colour channel.
func Brighten(delta int) (PixelFunc, error) {
	if delta < -255 || delta > 255 {
		return nil, fmt.Errorf("%w: brightness %d outside [-255, 255]", ErrInvalidArgument, delta)
	}
	return func(p Pixel) Pixel {
		return Pixel{R: addSat(p.R, delta), G: addSat(p.G, delta), B: addSat(p.B, delta), A: p.A}
	}, nil
}

// Contrast adjusts contrast by c in [-255,255]; 0 leaves the image
// unchanged, -255 collapses it to mid grey.
func Contrast(c float64) (PixelFunc, error) {
	if err := inRange("contrast", c, -255, 255); err != nil {
		return nil, err
	}
	factor := (259 * (c + 255)) / (255 * (259 - c))
	m := filter.Contrast(factor)
	return colorMatrixFunc(&m), nil
}

// Tint adds per-channel offsets in [-255,255].
func Tint(r, g, b int) (PixelFunc, error) {
	for _, v := range []int{r, g, b} {
		if v < -255 || v > 255 {
			return nil, fmt.Errorf("%w: tint offset %d outside [-255, 255]", ErrInvalidArgument, v)
		}
	}
	return func(p Pixel) Pixel {
		return Pixel{R: addSat(p.R, r), G: addSat(p.G, g), B: addSat(p.B, b), A: p.A}
	}, nil
}

// Monochrome converts to the channel average and then adds per-channel
// offsets, giving a tinted greyscale.
func Monochrome(r, g, b int) (PixelFunc, error) {
	tint, err := Tint(r, g, b)
	if err != nil {
		return nil, err
	}
	return Chain(GreyAverage(), tint), nil
}

// Gamma applies per-channel gamma correction: c' = 255·(c/255)^(1/γ).
// Each γ must be positive.
func Gamma(r, g, b float64) (PixelFunc, error) {
	var lut [3][256]uint8
	for ch, gamma := range []float64{r, g, b} {
		if !(gamma > 0) || math.IsInf(gamma, 0) {
			return nil, fmt.Errorf("%w: gamma %v must be positive", ErrInvalidArgument, gamma)
		}
		for i := range 256 {
			lut[ch][i] = color.Quantize(math.Pow(float64(i)/255, 1/gamma))
		}
	}
	return func(p Pixel) Pixel {
		return Pixel{R: lut[0][p.R], G: lut[1][p.G], B: lut[2][p.B], A: p.A}
	}, nil
}

// Duotone maps luma onto the gradient from dark to light.
func Duotone(dark, light Rgb) PixelFunc {
	lerp := func(a, b uint8, t float64) uint8 {
		return color.Clamp255(float64(a) + (float64(b)-float64(a))*t)
	}
	return func(p Pixel) Pixel {
		t := color.Luminance(p.R, p.G, p.B) / 255
		return Pixel{
			R: lerp(dark.r, light.r, t),
			G: lerp(dark.g, light.g, t),
			B: lerp(dark.b, light.b, t),
			A: p.A,
		}
	}
}

// MixWithColour blends every pixel towards c by opacity in [0,1].
func MixWithColour(c Rgb, opacity float64) (PixelFunc, error) {
	if err := inRange("opacity", opacity, 0, 1); err != nil {
		return nil, err
	}
	mix := func(v, target uint8) uint8 {
		return color.Clamp255(float64(v)*(1-opacity) + float64(target)*opacity)
	}
	return func(p Pixel) Pixel {
		return Pixel{R: mix(p.R, c.r), G: mix(p.G, c.g), B: mix(p.B, c.b), A: p.A}
	}, nil
}

// AddNoise perturbs every colour channel by a value in [-amount, amount].
// The noise for each pixel is derived from seed and the pixel index, so
// the output is reproducible and independent of worker count.
func AddNoise(img *Image, amount uint8, seed uint64) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if amount == 0 {
		return nil
	}
	span := uint64(2*int(amount) + 1)
	width := img.width

	img.forRows(func(y int, row []uint8) {
		var key [16]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		for x := range width {
			binary.LittleEndian.PutUint64(key[8:], uint64(y*width+x))
			h := xxhash.Sum64(key[:])
			i := x * 4
			for c := range 3 {
				off := int(((h>>(16*c))&0xffff)%span) - int(amount)
				row[i+c] = addSat(row[i+c], off)
			}
		}
	})
	return nil
}
