package photon

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/photon/internal/blend"
	"github.com/gogpu/photon/internal/parallel"
)

// BlendMode selects the separable blend function used by Blend.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendOverlay
	BlendMultiply
	BlendScreen
	BlendDarken
	BlendLighten
	BlendDodge
	BlendBurn
	BlendDifference
	BlendExclusion
	BlendSoftLight
	BlendHardLight
)

var blendModes = [...]blend.Mode{
	BlendNormal:     blend.ModeNormal,
	BlendOverlay:    blend.ModeOverlay,
	BlendMultiply:   blend.ModeMultiply,
	BlendScreen:     blend.ModeScreen,
	BlendDarken:     blend.ModeDarken,
	BlendLighten:    blend.ModeLighten,
	BlendDodge:      blend.ModeColorDodge,
	BlendBurn:       blend.ModeColorBurn,
	BlendDifference: blend.ModeDifference,
	BlendExclusion:  blend.ModeExclusion,
	BlendSoftLight:  blend.ModeSoftLight,
	BlendHardLight:  blend.ModeHardLight,
}

func (m BlendMode) valid() bool {
	return m >= 0 && int(m) < len(blendModes)
}

// String returns the mode name as accepted by ParseBlendMode.
func (m BlendMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("BlendMode(%d)", m)
	}
	return blendModes[m].String()
}

// ParseBlendMode looks a mode up by name ("multiply", "soft_light", ...).
func ParseBlendMode(name string) (BlendMode, error) {
	for m := range blendModes {
		if blendModes[m].String() == name {
			return BlendMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown blend mode %q", ErrInvalidArgument, name)
}

func toColor(p []uint8) blend.Color {
	return blend.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
		A: float64(p[3]) / 255,
	}
}

func storeColor(p []uint8, c blend.Color) {
	p[0] = unit8(c.R)
	p[1] = unit8(c.G)
	p[2] = unit8(c.B)
	p[3] = unit8(c.A)
}

// unit8 converts a [0,1] value to a byte, rounding half to even.
func unit8(v float64) uint8 {
	return uint8(math.RoundToEven(min(max(v, 0), 1) * 255))
}

// compositeInto blends src over the 4-byte pixel dst.
func compositeInto(dst, src []uint8, mode blend.Mode) {
	switch {
	case src[3] == 0:
		return
	case src[3] == 255 && mode == blend.ModeNormal:
		copy(dst[:4], src[:4])
		return
	}
	storeColor(dst, blend.Composite(toColor(dst), toColor(src), mode))
}

// Blend composites overlay onto base using mode. Per channel the blend
// result is mixed with the overlay colour by the base alpha and then
// composited source-over. The images must be the same size.
//
// The blend identities (multiply with white, screen with black, darken
// and lighten of an image with itself, difference with itself giving
// black) hold exactly only for opaque images. With partial alpha the
// source-over step adds the backdrop back in, so for example
// difference of [200 100 50 128] with itself is [133 66 33 192].
func Blend(base, overlay *Image, mode BlendMode) error {
	if base == nil || overlay == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if !mode.valid() {
		return fmt.Errorf("%w: unknown blend mode %d", ErrInvalidArgument, mode)
	}
	if !base.SameSize(overlay) {
		return fmt.Errorf("%w: base %dx%d, overlay %dx%d", ErrSizeMismatch,
			base.width, base.height, overlay.width, overlay.height)
	}

	Logger().Debug("photon: blend", "mode", mode, "width", base.width, "height", base.height)

	bm := blendModes[mode]
	base.forRows(func(y int, row []uint8) {
		src := overlay.row(y)
		for i := 0; i < len(row); i += 4 {
			compositeInto(row[i:i+4], src[i:i+4], bm)
		}
	})
	return nil
}

// AlphaComposite places overlay over base with Porter-Duff source-over.
func AlphaComposite(base, overlay *Image) error {
	return Blend(base, overlay, BlendNormal)
}

// Watermark composites overlay onto base with its top-left corner at
// (x, y). The part of overlay outside base is clipped. A negative offset,
// or an offset beyond the base, leaves base unchanged.
func Watermark(base, overlay *Image, x, y int) error {
	if base == nil || overlay == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if x < 0 || y < 0 || x >= base.width || y >= base.height {
		return nil
	}

	w := min(overlay.width, base.width-x)
	h := min(overlay.height, base.height-y)
	parallel.Rows(base.workers, h, func(y0, y1 int) {
		for oy := y0; oy < y1; oy++ {
			dst := base.row(y + oy)[x*4 : (x+w)*4]
			src := overlay.row(oy)[:w*4]
			for i := 0; i < len(dst); i += 4 {
				compositeInto(dst[i:i+4], src[i:i+4], blend.ModeNormal)
			}
		}
	})
	return nil
}

// maxTolerance is the integer part of the RGB cube diagonal, sqrt(3·255²).
const maxTolerance = 441

func checkTolerance(tolerance float64) error {
	return inRange("tolerance", tolerance, 0, maxTolerance)
}

// near reports whether the pixel at p is within tolerance of target.
func near(p []uint8, target Rgb, tolSq float64) bool {
	dr := float64(p[0]) - float64(target.r)
	dg := float64(p[1]) - float64(target.g)
	db := float64(p[2]) - float64(target.b)
	return dr*dr+dg*dg+db*db <= tolSq
}

// ReplaceBackground recolours every pixel whose RGB lies within Euclidean
// distance tolerance of target. Alpha is kept. tolerance must lie in
// [0, 441].
func ReplaceBackground(img *Image, target, replacement Rgb, tolerance float64) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if err := checkTolerance(tolerance); err != nil {
		return err
	}
	tolSq := tolerance * tolerance
	img.forRows(func(_ int, row []uint8) {
		for i := 0; i < len(row); i += 4 {
			if near(row[i:i+4], target, tolSq) {
				row[i], row[i+1], row[i+2] = replacement.r, replacement.g, replacement.b
			}
		}
	})
	return nil
}

// ReplaceBackgroundWith is ReplaceBackground taking each replacement
// pixel, alpha included, from overlay at the same position.
func ReplaceBackgroundWith(img, overlay *Image, target Rgb, tolerance float64) error {
	if img == nil || overlay == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if err := checkTolerance(tolerance); err != nil {
		return err
	}
	if !img.SameSize(overlay) {
		return fmt.Errorf("%w: image %dx%d, overlay %dx%d", ErrSizeMismatch,
			img.width, img.height, overlay.width, overlay.height)
	}
	tolSq := tolerance * tolerance
	img.forRows(func(y int, row []uint8) {
		src := overlay.row(y)
		for i := 0; i < len(row); i += 4 {
			if near(row[i:i+4], target, tolSq) {
				copy(row[i:i+4], src[i:i+4])
			}
		}
	})
	return nil
}

// DrawMask composites a solid colour through an alpha mask with its
// top-left corner at (x, y). Coverage outside the image is clipped;
// negative offsets are allowed.
func DrawMask(img *Image, mask *image.Alpha, x, y int, c Rgb) error {
	if img == nil || mask == nil {
		return fmt.Errorf("%w: nil image or mask", ErrInvalidArgument)
	}
	b := mask.Bounds()
	src := []uint8{c.r, c.g, c.b, 0}
	for my := b.Min.Y; my < b.Max.Y; my++ {
		dy := y + my - b.Min.Y
		if dy < 0 || dy >= img.height {
			continue
		}
		for mx := b.Min.X; mx < b.Max.X; mx++ {
			dx := x + mx - b.Min.X
			if dx < 0 || dx >= img.width {
				continue
			}
			src[3] = mask.AlphaAt(mx, my).A
			o := img.offset(dx, dy)
			compositeInto(img.pix[o:o+4], src, blend.ModeNormal)
		}
	}
	return nil
}
