package photon

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrUnknownEffect is returned by Apply for names missing from the
// catalogue. It matches ErrInvalidArgument as well.
var ErrUnknownEffect = fmt.Errorf("%w: unknown effect", ErrInvalidArgument)

// Effect is a named preset over the drivers. Params names the numeric
// arguments Apply expects, in order.
type Effect struct {
	Name   string
	Params []string
	Apply  func(img *Image, args []float64) error
}

var catalogue = map[string]Effect{}

// register adds an effect whose Apply checks the image and argument
// count before calling apply.
func register(name string, params []string, apply func(*Image, []float64) error) {
	catalogue[name] = Effect{
		Name:   name,
		Params: params,
		Apply: func(img *Image, args []float64) error {
			if img == nil {
				return fmt.Errorf("%w: nil image", ErrInvalidArgument)
			}
			if len(args) != len(params) {
				return fmt.Errorf("%w: %s takes %d arguments (%s), got %d", ErrInvalidArgument,
					name, len(params), strings.Join(params, ", "), len(args))
			}
			Logger().Debug("photon: apply effect", "name", name, "args", args)
			return apply(img, args)
		},
	}
}

// point registers a Map-based effect over RGB.
func point(name string, params []string, build func(args []float64) (PixelFunc, error)) {
	register(name, params, func(img *Image, args []float64) error {
		fn, err := build(args)
		if err != nil {
			return err
		}
		return Map(img, fn, RGB)
	})
}

// fixed registers a parameterless Map-based effect.
func fixed(name string, fn func() PixelFunc) {
	point(name, nil, func([]float64) (PixelFunc, error) { return fn(), nil })
}

func matrixEffect(m ColorMatrix, err error) (PixelFunc, error) {
	if err != nil {
		return nil, err
	}
	return ApplyMatrix(m), nil
}

// Effects lists the catalogue sorted by name.
func Effects() []Effect {
	out := make([]Effect, 0, len(catalogue))
	for _, e := range catalogue {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Effect) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Lookup returns the effect registered under name.
func Lookup(name string) (Effect, bool) {
	e, ok := catalogue[name]
	return e, ok
}

// Apply runs the named effect on img with the given arguments.
func Apply(img *Image, name string, args ...float64) error {
	e, ok := catalogue[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownEffect, name)
	}
	return e.Apply(img, args)
}

// intArg converts an integral float argument.
func intArg(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidArgument, name, v)
	}
	return int(v), nil
}

// byteArg converts an integral argument in [0,255].
func byteArg(name string, v float64) (uint8, error) {
	n, err := intArg(name, v)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %s %d outside [0, 255]", ErrInvalidArgument, name, n)
	}
	return uint8(n), nil
}

func rgbArgs(prefix string, args []float64) (Rgb, error) {
	var c [3]uint8
	for i, ch := range []string{"r", "g", "b"} {
		v, err := byteArg(prefix+ch, args[i])
		if err != nil {
			return Rgb{}, err
		}
		c[i] = v
	}
	return NewRgb(c[0], c[1], c[2]), nil
}

// colourPresets are the colour-mix filters: each blends the image
// towards one colour.
var colourPresets = map[string]struct {
	c       Rgb
	opacity float64
}{
	"oceanic":    {NewRgb(0, 89, 173), 0.2},
	"islands":    {NewRgb(0, 24, 95), 0.2},
	"marine":     {NewRgb(0, 14, 119), 0.2},
	"seagreen":   {NewRgb(0, 68, 62), 0.2},
	"flagblue":   {NewRgb(0, 0, 131), 0.2},
	"liquid":     {NewRgb(0, 10, 75), 0.2},
	"diamante":   {NewRgb(30, 82, 87), 0.1},
	"radio":      {NewRgb(0, 0, 0), 0.3},
	"twenties":   {NewRgb(116, 60, 0), 0.2},
	"rosetint":   {NewRgb(255, 20, 147), 0.15},
	"mauve":      {NewRgb(90, 40, 112), 0.2},
	"bluechrome": {NewRgb(6, 80, 192), 0.2},
	"vintage":    {NewRgb(120, 70, 13), 0.2},
	"perfume":    {NewRgb(80, 40, 120), 0.2},
	"serenity":   {NewRgb(10, 40, 90), 0.2},
}

var spaces = map[string]Space{"hsl": SpaceHSL, "hsv": SpaceHSV, "lch": SpaceLCh}

var channelNames = map[string]Channel{"red": Red, "green": Green, "blue": Blue}

func init() {
	for name, p := range colourPresets {
		point(name, nil, func([]float64) (PixelFunc, error) {
			return MixWithColour(p.c, p.opacity)
		})
	}
	point("mix_with_colour", []string{"r", "g", "b", "opacity"}, func(a []float64) (PixelFunc, error) {
		c, err := rgbArgs("", a)
		if err != nil {
			return nil, err
		}
		return MixWithColour(c, a[3])
	})

	fixed("invert", Invert)
	fixed("solarize", Solarize)
	fixed("sepia", Sepia)
	fixed("grayscale", GreyAverage)
	fixed("grayscale_human_corrected", GreyLuminance)
	fixed("desaturate", Desaturate)

	point("threshold", []string{"threshold"}, func(a []float64) (PixelFunc, error) {
		t, err := byteArg("threshold", a[0])
		if err != nil {
			return nil, err
		}
		return Threshold(t), nil
	})
	point("duotone", []string{"r1", "g1", "b1", "r2", "g2", "b2"}, func(a []float64) (PixelFunc, error) {
		dark, err := rgbArgs("dark ", a[:3])
		if err != nil {
			return nil, err
		}
		light, err := rgbArgs("light ", a[3:])
		if err != nil {
			return nil, err
		}
		return Duotone(dark, light), nil
	})

	for sname, space := range spaces {
		point("hue_rotate_"+sname, []string{"degrees"}, func(a []float64) (PixelFunc, error) {
			return HueRotateIn(a[0], space)
		})
		point("saturate_"+sname, []string{"amount"}, func(a []float64) (PixelFunc, error) {
			return Saturate(a[0], space)
		})
		point("desaturate_"+sname, []string{"amount"}, func(a []float64) (PixelFunc, error) {
			if err := inRange("desaturate amount", a[0], 0, 1); err != nil {
				return nil, err
			}
			return Saturate(-a[0], space)
		})
		point("lighten_"+sname, []string{"amount"}, func(a []float64) (PixelFunc, error) {
			return Lighten(a[0], space)
		})
		point("darken_"+sname, []string{"amount"}, func(a []float64) (PixelFunc, error) {
			return Darken(a[0], space)
		})
	}

	for cname, ch := range channelNames {
		point("alter_"+cname+"_channel", []string{"amount"}, func(a []float64) (PixelFunc, error) {
			n, err := intArg("amount", a[0])
			if err != nil {
				return nil, err
			}
			return ChannelAdd(ch, n)
		})
		point("remove_"+cname+"_channel", nil, func([]float64) (PixelFunc, error) {
			return ChannelRemove(ch)
		})
	}
	point("swap_channels", []string{"channel1", "channel2"}, func(a []float64) (PixelFunc, error) {
		c1, err := intArg("channel1", a[0])
		if err != nil {
			return nil, err
		}
		c2, err := intArg("channel2", a[1])
		if err != nil {
			return nil, err
		}
		if c1 < 0 || c1 > 2 || c2 < 0 || c2 > 2 {
			return nil, fmt.Errorf("%w: swap channels must be 0, 1 or 2", ErrInvalidArgument)
		}
		return ChannelSwap(Channel(c1), Channel(c2))
	})

	point("inc_brightness", []string{"amount"}, func(a []float64) (PixelFunc, error) {
		n, err := byteArg("amount", a[0])
		if err != nil {
			return nil, err
		}
		return Brighten(int(n))
	})
	point("dec_brightness", []string{"amount"}, func(a []float64) (PixelFunc, error) {
		n, err := byteArg("amount", a[0])
		if err != nil {
			return nil, err
		}
		return Brighten(-int(n))
	})
	point("adjust_contrast", []string{"contrast"}, func(a []float64) (PixelFunc, error) {
		return Contrast(a[0])
	})
	point("scale_brightness", []string{"factor"}, func(a []float64) (PixelFunc, error) {
		return matrixEffect(BrightnessMatrix(a[0]))
	})
	point("saturate_matrix", []string{"factor"}, func(a []float64) (PixelFunc, error) {
		return matrixEffect(SaturationMatrix(a[0]))
	})
	point("hue_rotate_matrix", []string{"degrees"}, func(a []float64) (PixelFunc, error) {
		return matrixEffect(HueRotateMatrix(a[0]))
	})
	point("tint", []string{"r", "g", "b"}, func(a []float64) (PixelFunc, error) {
		c, err := rgbArgs("", a)
		if err != nil {
			return nil, err
		}
		return Tint(int(c.r), int(c.g), int(c.b))
	})
	point("monochrome", []string{"r", "g", "b"}, func(a []float64) (PixelFunc, error) {
		c, err := rgbArgs("", a)
		if err != nil {
			return nil, err
		}
		return Monochrome(int(c.r), int(c.g), int(c.b))
	})
	point("gamma_correction", []string{"red", "green", "blue"}, func(a []float64) (PixelFunc, error) {
		return Gamma(a[0], a[1], a[2])
	})
	register("add_noise_rand", []string{"amount", "seed"}, func(img *Image, a []float64) error {
		amount, err := byteArg("amount", a[0])
		if err != nil {
			return err
		}
		seed, err := intArg("seed", a[1])
		if err != nil {
			return err
		}
		return AddNoise(img, amount, uint64(seed))
	})

	register("box_blur", nil, func(img *Image, _ []float64) error { return BoxBlur(img, 3) })
	register("gaussian_blur", []string{"radius"}, func(img *Image, a []float64) error {
		r, err := intArg("radius", a[0])
		if err != nil {
			return err
		}
		if r < 0 || r > 64 {
			return fmt.Errorf("%w: radius %d outside [0, 64]", ErrInvalidArgument, r)
		}
		return GaussianBlur(img, 2*r+1)
	})
	register("sharpen", nil, func(img *Image, _ []float64) error { return Sharpen(img) })
	register("emboss", nil, func(img *Image, _ []float64) error { return Emboss(img) })
	register("laplace", nil, func(img *Image, _ []float64) error { return Laplace(img) })
	register("sobel_horizontal", nil, func(img *Image, _ []float64) error { return SobelX(img) })
	register("sobel_vertical", nil, func(img *Image, _ []float64) error { return SobelY(img) })
	register("prewitt_horizontal", nil, func(img *Image, _ []float64) error { return PrewittX(img) })
	register("noise_reduction", nil, func(img *Image, _ []float64) error { return NoiseReduction(img) })
	register("edge_detection", nil, func(img *Image, _ []float64) error { return EdgeDetect(img) })

	register("fliph", nil, func(img *Image, _ []float64) error { return FlipH(img) })
	register("flipv", nil, func(img *Image, _ []float64) error { return FlipV(img) })
}
