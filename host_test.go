package photon

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestFromStd_NRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(src.Pix, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	img, err := FromStd(src)
	if err != nil {
		t.Fatal(err)
	}
	assertBytes(t, img, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
}

func TestFromStd_SubImageAndRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	img, err := FromStd(sub)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", img.Width(), img.Height())
	}
	if p, _ := img.Pixel(0, 1); p != (Pixel{10, 20, 30, 255}) {
		t.Errorf("Pixel(0, 1) = %v", p)
	}
}

func TestFromStd_Errors(t *testing.T) {
	if _, err := FromStd(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromStd(nil) error = %v", err)
	}
	if _, err := FromStd(image.NewNRGBA(image.Rect(0, 0, 0, 3))); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromStd(empty) error = %v", err)
	}
}

func TestToStd(t *testing.T) {
	img := gradient(t, 3, 2)
	std := img.ToStd()
	back, err := FromStd(std)
	if err != nil {
		t.Fatal(err)
	}
	assertBytes(t, back, img.Bytes())

	std.Pix[0] = ^std.Pix[0]
	if img.Bytes()[0] == std.Pix[0] {
		t.Error("ToStd should copy the buffer")
	}
}

func TestFingerprint(t *testing.T) {
	a := gradient(t, 4, 4)
	b := a.Clone()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal images have different fingerprints")
	}
	_ = b.SetPixel(3, 3, Pixel{})
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different images share a fingerprint")
	}

	wide := mustNew(t, 2, 1, make([]uint8, 8))
	tall := mustNew(t, 1, 2, make([]uint8, 8))
	if wide.Fingerprint() == tall.Fingerprint() {
		t.Error("fingerprint ignores dimensions")
	}
}
