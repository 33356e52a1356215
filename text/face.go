package text

import (
	"bytes"
	"fmt"
	"math"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a font at a fixed pixel size.
//
// The font data is parsed twice: once by sfnt for outlines and metrics,
// once by go-text for shaping. Both parsers index glyphs the same way.
// Face is safe for concurrent use; per-call state lives in the callers.
type Face struct {
	outlines *sfnt.Font
	shaping  *gotext.Font
	size     float64
}

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line.
	// It is positive.
	Descent float64

	// Height is the recommended line height.
	Height float64
}

// LoadFace parses TrueType or OpenType data and returns a face of the
// given pixel size.
func LoadFace(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	parsed, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	return &Face{outlines: outlines, shaping: parsed.Font, size: size}, nil
}

// DefaultFace returns the Go Regular font at the given pixel size.
func DefaultFace(size float64) (*Face, error) {
	return LoadFace(goregular.TTF, size)
}

// Size returns the pixel size of the face.
func (f *Face) Size() float64 {
	return f.size
}

// Name returns the family name of the font, or "" if it has none.
func (f *Face) Name() string {
	var buf sfnt.Buffer
	name, err := f.outlines.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the vertical metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.outlines.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{Ascent: f.size, Height: f.size}
	}
	// sfnt reports Descent as a positive distance below the baseline.
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

// floatToFixed converts a float64 to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
