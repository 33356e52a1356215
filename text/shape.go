package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the writing direction of a run.
type Direction uint8

const (
	// LeftToRight is used for Latin, Cyrillic, CJK and most scripts.
	LeftToRight Direction = iota

	// RightToLeft is used for Arabic and Hebrew.
	RightToLeft
)

// String returns the direction name.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Glyph is a shaped glyph positioned relative to the pen origin on the
// baseline. Y grows downward, as in image space.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint16

	// Cluster is the rune index in the source string this glyph maps to.
	Cluster int

	// X and Y are the glyph origin.
	X, Y float64

	// Advance is the horizontal pen advance after the glyph.
	Advance float64

	// Direction is the direction of the run the glyph belongs to.
	Direction Direction
}

// HarfbuzzShaper keeps internal buffers and is not safe for concurrent
// use, so instances are pooled.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// run is a slice of the input with one direction, in visual order.
type run struct {
	runes []rune
	start int
	dir   Direction
}

// Shape converts s into glyphs laid out left to right on one line.
//
// The string is split into bidi runs first; each run is shaped on its own
// with the script of its first letter, and runs are placed in visual
// order. Newlines are not interpreted.
func Shape(s string, face *Face) []Glyph {
	if s == "" || face == nil {
		return nil
	}

	runs := bidiRuns(s)
	out := make([]Glyph, 0, len(s))
	size := face.ppem()
	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer shaperPool.Put(shaper)

	var pen float64
	for _, r := range runs {
		dir := di.DirectionLTR
		if r.dir == RightToLeft {
			dir = di.DirectionRTL
		}
		input := shaping.Input{
			Text:      r.runes,
			RunStart:  0,
			RunEnd:    len(r.runes),
			Direction: dir,
			// font.Face carries glyph caches and must not be shared
			// between goroutines; NewFace is cheap.
			Face:     gotext.NewFace(face.shaping),
			Size:     size,
			Script:   detectScript(r.runes),
			Language: language.NewLanguage("en"),
		}
		output := shaper.Shape(input)

		for _, g := range output.Glyphs {
			adv := fixedToFloat(g.Advance)
			out = append(out, Glyph{
				ID:        uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
				Cluster:   r.start + g.TextIndex(),
				X:         pen + fixedToFloat(g.XOffset),
				Y:         -fixedToFloat(g.YOffset),
				Advance:   adv,
				Direction: r.dir,
			})
			pen += adv
		}
	}
	return out
}

// Advance returns the total width of s when shaped with face.
func Advance(s string, face *Face) float64 {
	var w float64
	for _, g := range Shape(s, face) {
		w += g.Advance
	}
	return w
}

// bidiRuns splits s into directional runs in visual order. If the bidi
// algorithm fails, the whole string is one left-to-right run.
func bidiRuns(s string) []run {
	all := []rune(s)
	fallback := []run{{runes: all, dir: LeftToRight}}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return fallback
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		br := ordering.Run(i)
		// Pos returns rune indices, end inclusive.
		start, end := br.Pos()
		if start < 0 || end >= len(all) || start > end {
			return fallback
		}
		dir := LeftToRight
		if br.Direction() == bidi.RightToLeft {
			dir = RightToLeft
		}
		runs = append(runs, run{runes: all[start : end+1], start: start, dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
