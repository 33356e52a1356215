package text

import (
	"fmt"
	"math"

	"github.com/gogpu/photon"
)

// Draw renders s onto img in colour c. Position (x, y) is the baseline
// origin. Parts of the text outside the image are clipped.
func Draw(img *photon.Image, s string, x, y int, face *Face, c photon.Rgb) error {
	if img == nil || face == nil {
		return fmt.Errorf("%w: nil image or face", photon.ErrInvalidArgument)
	}
	mask, err := Rasterize(s, face)
	if err != nil {
		return err
	}
	b := mask.Bounds()
	if b.Empty() {
		return nil
	}
	photon.Logger().Debug("text: draw",
		"runes", len([]rune(s)), "size", face.Size(), "mask", b.Size())
	return photon.DrawMask(img, mask, x+b.Min.X, y+b.Min.Y, c)
}

// DrawCentered renders s centred horizontally on img with its baseline at y.
func DrawCentered(img *photon.Image, s string, y int, face *Face, c photon.Rgb) error {
	if img == nil || face == nil {
		return fmt.Errorf("%w: nil image or face", photon.ErrInvalidArgument)
	}
	x := int(math.Round((float64(img.Width()) - Advance(s, face)) / 2))
	return Draw(img, s, x, y, face, c)
}
