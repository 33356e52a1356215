package photon

import "fmt"

// Pixel is one straight-alpha RGBA8 sample.
type Pixel struct {
	R, G, B, A uint8
}

// Channel selects one component of a pixel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

// String returns the lower-case channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	default:
		return fmt.Sprintf("Channel(%d)", c)
	}
}

func (c Channel) valid() bool { return c <= Alpha }

// Mask returns the single-channel mask for c.
func (c Channel) Mask() Channels { return 1 << c }

// Channels is a set of channels used to scope a transform.
type Channels uint8

const (
	R Channels = 1 << iota
	G
	B
	A

	// RGB is the default transform scope. Alpha is left alone.
	RGB = R | G | B
	// RGBA includes alpha and must be requested explicitly.
	RGBA = RGB | A
)

// Has reports whether c is in the set.
func (m Channels) Has(c Channel) bool { return m&c.Mask() != 0 }

// Channel returns the value of channel c.
func (p Pixel) Channel(c Channel) uint8 {
	switch c {
	case Red:
		return p.R
	case Green:
		return p.G
	case Blue:
		return p.B
	default:
		return p.A
	}
}

// WithChannel returns p with channel c set to v.
func (p Pixel) WithChannel(c Channel, v uint8) Pixel {
	switch c {
	case Red:
		p.R = v
	case Green:
		p.G = v
	case Blue:
		p.B = v
	default:
		p.A = v
	}
	return p
}

// Rgb is an opaque RGB8 colour used as a parameter: background colours,
// duotone endpoints, tints and text colour.
type Rgb struct {
	r, g, b uint8
}

// NewRgb returns the colour (r, g, b).
func NewRgb(r, g, b uint8) Rgb {
	return Rgb{r: r, g: g, b: b}
}

// RgbFromSlice builds a colour from exactly three bytes.
func RgbFromSlice(v []uint8) (Rgb, error) {
	if len(v) != 3 {
		return Rgb{}, fmt.Errorf("%w: rgb needs 3 components, got %d", ErrInvalidArgument, len(v))
	}
	return Rgb{r: v[0], g: v[1], b: v[2]}, nil
}

// Red returns the red component.
func (c Rgb) Red() uint8 { return c.r }

// Green returns the green component.
func (c Rgb) Green() uint8 { return c.g }

// Blue returns the blue component.
func (c Rgb) Blue() uint8 { return c.b }

// SetRed replaces the red component.
func (c *Rgb) SetRed(v uint8) { c.r = v }

// SetGreen replaces the green component.
func (c *Rgb) SetGreen(v uint8) { c.g = v }

// SetBlue replaces the blue component.
func (c *Rgb) SetBlue(v uint8) { c.b = v }

// Pixel returns the colour as an opaque pixel.
func (c Rgb) Pixel() Pixel {
	return Pixel{R: c.r, G: c.g, B: c.b, A: 255}
}

// String formats the colour as #rrggbb.
func (c Rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// addSat adds delta to v, saturating to [0,255].
func addSat(v uint8, delta int) uint8 {
	s := int(v) + delta
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
