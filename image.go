package photon

import (
	"fmt"
	"math"
)

// maxDim is the largest accepted width or height.
const maxDim = math.MaxInt32

// Image is an RGBA8 raster with straight alpha, stored row-major from the
// top-left corner. The buffer always holds exactly 4·width·height bytes
// and the dimensions never change; resizing produces a new Image.
type Image struct {
	width   int
	height  int
	pix     []uint8
	workers int
}

// bufLen validates dimensions and returns 4·width·height.
func bufLen(width, height int) (int, error) {
	if width < 1 || height < 1 || width > maxDim || height > maxDim {
		return 0, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidArgument, width, height)
	}
	if width > math.MaxInt/4/height {
		return 0, fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidArgument, width, height)
	}
	return 4 * width * height, nil
}

// New creates an image from raw RGBA bytes. The bytes are copied, so the
// caller may reuse pix afterwards.
func New(width, height int, pix []uint8, opts ...Option) (*Image, error) {
	n, err := bufLen(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != n {
		return nil, fmt.Errorf("%w: buffer length %d, want %d for %dx%d",
			ErrInvalidArgument, len(pix), n, width, height)
	}
	img := newImage(width, height, opts)
	copy(img.pix, pix)
	return img, nil
}

// Blank creates an opaque black image.
func Blank(width, height int, opts ...Option) (*Image, error) {
	if _, err := bufLen(width, height); err != nil {
		return nil, err
	}
	img := newImage(width, height, opts)
	for i := 3; i < len(img.pix); i += 4 {
		img.pix[i] = 255
	}
	return img, nil
}

// newImage allocates an image with validated dimensions.
func newImage(width, height int, opts []Option) *Image {
	o := applyOptions(opts)
	return &Image{
		width:   width,
		height:  height,
		pix:     make([]uint8, 4*width*height),
		workers: o.workers,
	}
}

// derive allocates an image of the given size that inherits img's options.
func (img *Image) derive(width, height int) *Image {
	return &Image{
		width:   width,
		height:  height,
		pix:     make([]uint8, 4*width*height),
		workers: img.workers,
	}
}

// Width returns the width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Workers returns the driver worker count configured for the image.
func (img *Image) Workers() int {
	return img.workers
}

// Bytes returns the underlying RGBA buffer. The slice aliases the image
// and must be treated as read-only.
func (img *Image) Bytes() []uint8 {
	return img.pix
}

// Pixel returns the pixel at (x, y).
func (img *Image) Pixel(x, y int) (Pixel, error) {
	if !img.inBounds(x, y) {
		return Pixel{}, img.boundsError(x, y)
	}
	i := img.offset(x, y)
	return Pixel{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2], A: img.pix[i+3]}, nil
}

// SetPixel sets the pixel at (x, y).
func (img *Image) SetPixel(x, y int, p Pixel) error {
	if !img.inBounds(x, y) {
		return img.boundsError(x, y)
	}
	i := img.offset(x, y)
	img.pix[i+0] = p.R
	img.pix[i+1] = p.G
	img.pix[i+2] = p.B
	img.pix[i+3] = p.A
	return nil
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	c := img.derive(img.width, img.height)
	copy(c.pix, img.pix)
	return c
}

// Fill sets every pixel to p.
func (img *Image) Fill(p Pixel) {
	for i := 0; i < len(img.pix); i += 4 {
		img.pix[i+0] = p.R
		img.pix[i+1] = p.G
		img.pix[i+2] = p.B
		img.pix[i+3] = p.A
	}
}

// SameSize reports whether both images have identical dimensions.
func (img *Image) SameSize(other *Image) bool {
	return img.width == other.width && img.height == other.height
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

func (img *Image) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, img.width, img.height)
}

func (img *Image) offset(x, y int) int {
	return (y*img.width + x) * 4
}

// stride returns the number of bytes per row.
func (img *Image) stride() int {
	return img.width * 4
}

func (img *Image) row(y int) []uint8 {
	s := img.stride()
	return img.pix[y*s : (y+1)*s]
}

// String describes the image by its dimensions.
func (img *Image) String() string {
	return fmt.Sprintf("photon.Image(%dx%d)", img.width, img.height)
}
