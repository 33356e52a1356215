package photon

import (
	"bytes"
	"testing"
)

// mustNew builds an image or fails the test.
func mustNew(t testing.TB, width, height int, pix []uint8, opts ...Option) *Image {
	t.Helper()
	img, err := New(width, height, pix, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d) = %v", width, height, err)
	}
	return img
}

// uniform builds a width×height image filled with p.
func uniform(t testing.TB, width, height int, p Pixel, opts ...Option) *Image {
	t.Helper()
	img, err := Blank(width, height, opts...)
	if err != nil {
		t.Fatalf("Blank(%d, %d) = %v", width, height, err)
	}
	img.Fill(p)
	return img
}

// gradient builds a deterministic test image with varying colour and alpha.
func gradient(t testing.TB, width, height int, opts ...Option) *Image {
	t.Helper()
	pix := make([]uint8, 4*width*height)
	for y := range height {
		for x := range width {
			i := (y*width + x) * 4
			pix[i+0] = uint8(x * 255 / max(width-1, 1))
			pix[i+1] = uint8(y * 255 / max(height-1, 1))
			pix[i+2] = uint8((x*7 + y*13) % 256)
			pix[i+3] = uint8(255 - (x+y)%64)
		}
	}
	return mustNew(t, width, height, pix, opts...)
}

// assertBytes fails when the image buffer differs from want.
func assertBytes(t *testing.T, img *Image, want []uint8) {
	t.Helper()
	if got := img.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("bytes = %v, want %v", got, want)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
