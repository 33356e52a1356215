package photon

import (
	"fmt"
	"math"

	"github.com/gogpu/photon/internal/color"
	"github.com/gogpu/photon/internal/filter"
)

// Space selects the colour space a point operation works in.
type Space uint8

const (
	SpaceHSL Space = iota
	SpaceHSV
	SpaceLCh
)

// String returns the lower-case space name.
func (s Space) String() string {
	switch s {
	case SpaceHSL:
		return "hsl"
	case SpaceHSV:
		return "hsv"
	case SpaceLCh:
		return "lch"
	default:
		return fmt.Sprintf("Space(%d)", s)
	}
}

func (s Space) validate() error {
	if s > SpaceLCh {
		return fmt.Errorf("%w: unknown colour space %d", ErrInvalidArgument, s)
	}
	return nil
}

// inRange checks lo <= v <= hi, rejecting NaN.
func inRange(name string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidArgument, name, v, lo, hi)
	}
	return nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}

// withRGB replaces the colour of p, keeping alpha.
func withRGB(p Pixel, c color.RGB) Pixel {
	p.R, p.G, p.B = c.Bytes()
	return p
}

func rgbOf(p Pixel) color.RGB {
	return color.FromBytes(p.R, p.G, p.B)
}

// Invert maps each channel c to 255-c.
func Invert() PixelFunc {
	return func(p Pixel) Pixel {
		return Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B, A: 255 - p.A}
	}
}

// Solarize inverts channels in the upper half of the range.
func Solarize() PixelFunc {
	sol := func(c uint8) uint8 {
		if c > 127 {
			return 255 - c
		}
		return c
	}
	return func(p Pixel) Pixel {
		return Pixel{R: sol(p.R), G: sol(p.G), B: sol(p.B), A: p.A}
	}
}

// GreyAverage sets every channel to (R+G+B)/3 rounded to nearest.
func GreyAverage() PixelFunc {
	return func(p Pixel) Pixel {
		v := uint8((int(p.R) + int(p.G) + int(p.B) + 1) / 3)
		return Pixel{R: v, G: v, B: v, A: p.A}
	}
}

// GreyLuminance sets every channel to the Rec. 709 luma, computed on
// linear values and re-encoded to sRGB.
func GreyLuminance() PixelFunc {
	return func(p Pixel) Pixel {
		v := color.Clamp255(color.Luminance(p.R, p.G, p.B))
		return Pixel{R: v, G: v, B: v, A: p.A}
	}
}

// Desaturate converts to HSL, drops saturation and converts back.
func Desaturate() PixelFunc {
	return func(p Pixel) Pixel {
		hsl := color.RGBToHSL(rgbOf(p))
		hsl.S = 0
		return withRGB(p, color.HSLToRGB(hsl))
	}
}

// Threshold maps pixels whose luma is at least t to white and the rest
// to black. The luma is the 8-bit value GreyLuminance produces, so a grey
// of level t always maps to white. Alpha is kept.
func Threshold(t uint8) PixelFunc {
	return func(p Pixel) Pixel {
		if color.Clamp255(color.Luminance(p.R, p.G, p.B)) >= t {
			return Pixel{R: 255, G: 255, B: 255, A: p.A}
		}
		return Pixel{A: p.A}
	}
}

// Sepia applies the classic sepia colour matrix.
func Sepia() PixelFunc {
	m := filter.Sepia()
	return colorMatrixFunc(&m)
}

// HueRotate rotates hue by degrees in HSL.
func HueRotate(degrees float64) (PixelFunc, error) {
	return HueRotateIn(degrees, SpaceHSL)
}

// HueRotateIn rotates hue by degrees in the given space.
func HueRotateIn(degrees float64, space Space) (PixelFunc, error) {
	if err := finite("degrees", degrees); err != nil {
		return nil, err
	}
	if err := space.validate(); err != nil {
		return nil, err
	}
	return spaceFunc(space,
		func(c *color.HSL) { c.H = color.NormalizeHue(c.H + degrees) },
		func(c *color.HSV) { c.H = color.NormalizeHue(c.H + degrees) },
		func(c *color.LCh) { c.H = color.NormalizeHue(c.H + degrees) },
	), nil
}

// Saturate adds delta in [-1,1] to saturation: S in HSL and HSV, and
// 100·delta to chroma in LCh. Negative delta desaturates.
func Saturate(delta float64, space Space) (PixelFunc, error) {
	if err := inRange("saturation delta", delta, -1, 1); err != nil {
		return nil, err
	}
	if err := space.validate(); err != nil {
		return nil, err
	}
	return spaceFunc(space,
		func(c *color.HSL) { c.S = clamp01(c.S + delta) },
		func(c *color.HSV) { c.S = clamp01(c.S + delta) },
		func(c *color.LCh) { c.C = max(c.C+100*delta, 0) },
	), nil
}

// Lighten adds delta in [0,1] to lightness: L in HSL, V in HSV and
// 100·delta to L* in LCh.
func Lighten(delta float64, space Space) (PixelFunc, error) {
	if err := inRange("lighten delta", delta, 0, 1); err != nil {
		return nil, err
	}
	return lightness(delta, space)
}

// Darken subtracts delta in [0,1] from lightness; see Lighten.
func Darken(delta float64, space Space) (PixelFunc, error) {
	if err := inRange("darken delta", delta, 0, 1); err != nil {
		return nil, err
	}
	return lightness(-delta, space)
}

func lightness(delta float64, space Space) (PixelFunc, error) {
	if err := space.validate(); err != nil {
		return nil, err
	}
	return spaceFunc(space,
		func(c *color.HSL) { c.L = clamp01(c.L + delta) },
		func(c *color.HSV) { c.V = clamp01(c.V + delta) },
		func(c *color.LCh) { c.L = min(max(c.L+100*delta, 0), 100) },
	), nil
}

// spaceFunc builds a PixelFunc that round-trips each pixel through the
// selected space and applies the matching edit.
func spaceFunc(space Space, hsl func(*color.HSL), hsv func(*color.HSV), lch func(*color.LCh)) PixelFunc {
	switch space {
	case SpaceHSV:
		return func(p Pixel) Pixel {
			c := color.RGBToHSV(rgbOf(p))
			hsv(&c)
			return withRGB(p, color.HSVToRGB(c))
		}
	case SpaceLCh:
		return func(p Pixel) Pixel {
			c := color.RGBToLCh(rgbOf(p))
			lch(&c)
			return withRGB(p, color.LChToRGB(c))
		}
	default:
		return func(p Pixel) Pixel {
			c := color.RGBToHSL(rgbOf(p))
			hsl(&c)
			return withRGB(p, color.HSLToRGB(c))
		}
	}
}

// ChannelAdd adds delta in [-255,255] to channel c with saturation.
func ChannelAdd(c Channel, delta int) (PixelFunc, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: unknown channel %d", ErrInvalidArgument, c)
	}
	if delta < -255 || delta > 255 {
		return nil, fmt.Errorf("%w: channel delta %d outside [-255, 255]", ErrInvalidArgument, delta)
	}
	return func(p Pixel) Pixel {
		return p.WithChannel(c, addSat(p.Channel(c), delta))
	}, nil
}

// ChannelRemove sets channel c to zero.
func ChannelRemove(c Channel) (PixelFunc, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: unknown channel %d", ErrInvalidArgument, c)
	}
	return func(p Pixel) Pixel {
		return p.WithChannel(c, 0)
	}, nil
}

// ChannelSwap exchanges the values of channels a and b.
func ChannelSwap(a, b Channel) (PixelFunc, error) {
	if !a.valid() || !b.valid() {
		return nil, fmt.Errorf("%w: unknown channel in swap %d<->%d", ErrInvalidArgument, a, b)
	}
	return func(p Pixel) Pixel {
		va, vb := p.Channel(a), p.Channel(b)
		return p.WithChannel(a, vb).WithChannel(b, va)
	}, nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
