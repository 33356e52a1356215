package photon

import (
	"fmt"

	"github.com/gogpu/photon/internal/parallel"
)

// PixelFunc is a pure per-pixel transform. It must be deterministic and
// free of side effects, since rows may be processed concurrently and in
// any order.
type PixelFunc func(Pixel) Pixel

// Map applies fn to every pixel of img. Only the channels in mask are
// written back; the others keep their original value, so alpha is
// preserved unless mask includes [A].
func Map(img *Image, fn PixelFunc, mask Channels) error {
	if img == nil || fn == nil {
		return fmt.Errorf("%w: nil image or transform", ErrInvalidArgument)
	}
	if mask&RGBA == 0 {
		return fmt.Errorf("%w: empty channel mask", ErrInvalidArgument)
	}

	img.forRows(func(_ int, row []uint8) {
		for i := 0; i < len(row); i += 4 {
			in := Pixel{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			out := fn(in)
			if mask&R != 0 {
				row[i] = out.R
			}
			if mask&G != 0 {
				row[i+1] = out.G
			}
			if mask&B != 0 {
				row[i+2] = out.B
			}
			if mask&A != 0 {
				row[i+3] = out.A
			}
		}
	})
	return nil
}

// MapRGB is Map with the default RGB scope.
func MapRGB(img *Image, fn PixelFunc) error {
	return Map(img, fn, RGB)
}

// forRows calls fn for every row, splitting rows across the image's
// workers. fn receives the row index and the row's bytes.
func (img *Image) forRows(fn func(y int, row []uint8)) {
	parallel.Rows(img.workers, img.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			fn(y, img.row(y))
		}
	})
}

// Chain composes transforms left to right.
func Chain(fns ...PixelFunc) PixelFunc {
	return func(p Pixel) Pixel {
		for _, fn := range fns {
			p = fn(p)
		}
		return p
	}
}
