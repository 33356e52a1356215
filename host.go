package photon

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
)

// FromStd converts any image.Image to an Image. *image.NRGBA sources
// with a packed stride are copied directly; everything else goes
// through draw.Draw, which un-premultiplies.
func FromStd(src image.Image, opts ...Option) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrInvalidArgument)
	}
	b := src.Bounds()
	if _, err := bufLen(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	img := newImage(b.Dx(), b.Dy(), opts)

	if n, ok := src.(*image.NRGBA); ok && n.Stride == 4*b.Dx() {
		copy(img.pix, n.Pix)
		return img, nil
	}

	dst := &image.NRGBA{Pix: img.pix, Stride: img.stride(), Rect: image.Rect(0, 0, b.Dx(), b.Dy())}
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return img, nil
}

// ToStd returns a copy of the image as *image.NRGBA.
func (img *Image) ToStd() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	copy(out.Pix, img.pix)
	return out
}

// view wraps the buffer as *image.NRGBA without copying.
func (img *Image) view() *image.NRGBA {
	return &image.NRGBA{Pix: img.pix, Stride: img.stride(), Rect: image.Rect(0, 0, img.width, img.height)}
}

// Fingerprint returns an xxHash64 digest of the dimensions and pixels.
// Two images with equal fingerprints are, in practice, identical.
func (img *Image) Fingerprint() uint64 {
	d := xxhash.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(img.width))
	binary.LittleEndian.PutUint64(dims[8:], uint64(img.height))
	_, _ = d.Write(dims[:])
	_, _ = d.Write(img.pix)
	return d.Sum64()
}
