package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// point is an outline coordinate in pen space: origin on the baseline at
// the start of the line, Y down.
type point struct{ x, y float64 }

type segment struct {
	op   sfnt.SegmentOp
	args [3]point
}

// Rasterize fills the outlines of s into a coverage mask.
//
// The mask bounds are in pen space: (0, 0) is the start of the baseline,
// so Rect.Min is usually negative in Y and may be negative in X for glyphs
// that overhang to the left. The mask is at least as tall as the face's
// line box and as wide as the advance. An empty string yields an empty
// mask.
func Rasterize(s string, face *Face) (*image.Alpha, error) {
	if face == nil {
		return nil, ErrEmptyFontData
	}
	glyphs := Shape(s, face)
	if len(glyphs) == 0 {
		return image.NewAlpha(image.Rectangle{}), nil
	}

	segs, bounds := outlines(glyphs, face)

	m := face.Metrics()
	var adv float64
	for _, g := range glyphs {
		adv += g.Advance
	}
	bounds = bounds.Union(image.Rect(0, -int(math.Ceil(m.Ascent)), int(math.Ceil(adv)), int(math.Ceil(m.Descent))))

	mask := image.NewAlpha(bounds)
	if len(segs) == 0 {
		return mask, nil
	}

	w, h := bounds.Dx(), bounds.Dy()
	ox, oy := float64(-bounds.Min.X), float64(-bounds.Min.Y)
	z := vector.NewRasterizer(w, h)
	for i, sg := range segs {
		a := sg.args
		switch sg.op {
		case sfnt.SegmentOpMoveTo:
			// MoveTo does not close the previous contour.
			if i > 0 {
				z.ClosePath()
			}
			z.MoveTo(f32(a[0].x+ox), f32(a[0].y+oy))
		case sfnt.SegmentOpLineTo:
			z.LineTo(f32(a[0].x+ox), f32(a[0].y+oy))
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(f32(a[0].x+ox), f32(a[0].y+oy), f32(a[1].x+ox), f32(a[1].y+oy))
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(f32(a[0].x+ox), f32(a[0].y+oy), f32(a[1].x+ox), f32(a[1].y+oy), f32(a[2].x+ox), f32(a[2].y+oy))
		}
	}
	z.ClosePath()
	z.DrawOp = draw.Src
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask, nil
}

// outlines loads every glyph outline, moves it to its pen position and
// returns the segments together with their integer bounding box.
func outlines(glyphs []Glyph, face *Face) ([]segment, image.Rectangle) {
	var (
		buf  sfnt.Buffer
		segs []segment
	)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	ppem := face.ppem()
	for _, g := range glyphs {
		loaded, err := face.outlines.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			continue
		}
		for _, s := range loaded {
			n := argCount(s.Op)
			sg := segment{op: s.Op}
			for i := range n {
				p := point{
					x: g.X + fixedToFloat(s.Args[i].X),
					y: g.Y + fixedToFloat(s.Args[i].Y),
				}
				sg.args[i] = p
				minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
				minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
			}
			segs = append(segs, sg)
		}
	}
	if len(segs) == 0 {
		return nil, image.Rectangle{}
	}
	return segs, image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

func f32(v float64) float32 { return float32(v) }
