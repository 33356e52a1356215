package photon

import (
	"errors"
	"image"
	"testing"
)

// opaqueGradient is gradient with every alpha forced to 255.
func opaqueGradient(t *testing.T, w, h int) *Image {
	t.Helper()
	img := gradient(t, w, h)
	_ = Map(img, func(p Pixel) Pixel { p.A = 255; return p }, A)
	return img
}

func TestBlend_Identities(t *testing.T) {
	src := opaqueGradient(t, 12, 9)
	black := uniform(t, 12, 9, Pixel{0, 0, 0, 255})
	white := uniform(t, 12, 9, Pixel{255, 255, 255, 255})

	t.Run("screen with black", func(t *testing.T) {
		img := src.Clone()
		if err := Blend(img, black, BlendScreen); err != nil {
			t.Fatal(err)
		}
		assertBytes(t, img, src.Bytes())
	})
	t.Run("multiply with white", func(t *testing.T) {
		img := src.Clone()
		if err := Blend(img, white, BlendMultiply); err != nil {
			t.Fatal(err)
		}
		assertBytes(t, img, src.Bytes())
	})
	t.Run("difference with itself", func(t *testing.T) {
		img := src.Clone()
		if err := Blend(img, src, BlendDifference); err != nil {
			t.Fatal(err)
		}
		for i, v := range img.Bytes() {
			want := uint8(0)
			if i%4 == 3 {
				want = src.Bytes()[i]
			}
			if v != want {
				t.Fatalf("byte %d = %d, want %d", i, v, want)
			}
		}
	})
}

func TestBlend_DifferenceWithPartialAlpha(t *testing.T) {
	base := mustNew(t, 1, 1, []uint8{200, 100, 50, 128})
	overlay := base.Clone()
	if err := Blend(base, overlay, BlendDifference); err != nil {
		t.Fatal(err)
	}
	// Source-over brings the backdrop colour back, so the result is not black.
	assertBytes(t, base, []uint8{133, 66, 33, 192})
}

func TestBlend_Modes(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want Pixel
	}{
		{BlendNormal, Pixel{200, 50, 128, 255}},
		{BlendMultiply, Pixel{78, 20, 64, 255}},
		{BlendDarken, Pixel{100, 50, 128, 255}},
		{BlendLighten, Pixel{200, 100, 128, 255}},
		{BlendDifference, Pixel{100, 50, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			base := mustNew(t, 1, 1, []uint8{100, 100, 128, 255})
			over := mustNew(t, 1, 1, []uint8{200, 50, 128, 255})
			if err := Blend(base, over, tt.mode); err != nil {
				t.Fatal(err)
			}
			if p, _ := base.Pixel(0, 0); p != tt.want {
				t.Errorf("Blend(%v) = %v, want %v", tt.mode, p, tt.want)
			}
		})
	}
}

func TestBlend_Errors(t *testing.T) {
	base := gradient(t, 4, 4)
	before := append([]uint8(nil), base.Bytes()...)

	if err := Blend(base, gradient(t, 4, 5), BlendScreen); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Blend(4x4, 4x5) error = %v, want ErrSizeMismatch", err)
	}
	if err := Blend(base, gradient(t, 4, 4), BlendMode(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Blend(mode 42) error = %v, want ErrInvalidArgument", err)
	}
	assertBytes(t, base, before)
}

func TestParseBlendMode(t *testing.T) {
	for m := BlendNormal; m <= BlendHardLight; m++ {
		got, err := ParseBlendMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseBlendMode("glow"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseBlendMode(glow) error = %v, want ErrInvalidArgument", err)
	}
}

func TestAlphaComposite(t *testing.T) {
	base := uniform(t, 2, 1, Pixel{0, 0, 0, 255})
	over := mustNew(t, 2, 1, []uint8{255, 255, 255, 128, 9, 9, 9, 0})
	if err := AlphaComposite(base, over); err != nil {
		t.Fatal(err)
	}
	assertBytes(t, base, []uint8{128, 128, 128, 255, 0, 0, 0, 255})
}

func TestWatermark(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		changed []image.Point
	}{
		{"outside", 20, 20, nil},
		{"negative", -1, 0, nil},
		{"clipped", 2, 2, []image.Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}}},
		{"inside", 0, 1, []image.Point{{0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}, {0, 3}, {1, 3}, {2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := uniform(t, 4, 4, Pixel{0, 0, 0, 255})
			over := uniform(t, 3, 3, Pixel{255, 255, 255, 255})
			if err := Watermark(base, over, tt.x, tt.y); err != nil {
				t.Fatal(err)
			}
			white := map[image.Point]bool{}
			for _, p := range tt.changed {
				white[p] = true
			}
			for y := range 4 {
				for x := range 4 {
					p, _ := base.Pixel(x, y)
					want := Pixel{0, 0, 0, 255}
					if white[image.Pt(x, y)] {
						want = Pixel{255, 255, 255, 255}
					}
					if p != want {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, p, want)
					}
				}
			}
		})
	}
}

func TestWatermark_OutOfBoundsScenario(t *testing.T) {
	base := gradient(t, 10, 10)
	before := append([]uint8(nil), base.Bytes()...)
	if err := Watermark(base, uniform(t, 4, 4, Pixel{1, 2, 3, 255}), 20, 20); err != nil {
		t.Fatal(err)
	}
	assertBytes(t, base, before)
}

func TestReplaceBackground(t *testing.T) {
	img := mustNew(t, 3, 1, []uint8{0, 0, 0, 10, 3, 4, 0, 20, 200, 200, 200, 30})

	exact := img.Clone()
	if err := ReplaceBackground(exact, NewRgb(0, 0, 0), NewRgb(9, 9, 9), 0); err != nil {
		t.Fatal(err)
	}
	assertBytes(t, exact, []uint8{9, 9, 9, 10, 3, 4, 0, 20, 200, 200, 200, 30})

	loose := img.Clone()
	if err := ReplaceBackground(loose, NewRgb(0, 0, 0), NewRgb(9, 9, 9), 5); err != nil {
		t.Fatal(err)
	}
	assertBytes(t, loose, []uint8{9, 9, 9, 10, 9, 9, 9, 20, 200, 200, 200, 30})

	for _, tol := range []float64{-1, 441.5, 1000} {
		if err := ReplaceBackground(img, NewRgb(0, 0, 0), NewRgb(1, 1, 1), tol); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("tolerance %v: error = %v, want ErrInvalidArgument", tol, err)
		}
	}
}

func TestReplaceBackgroundWith(t *testing.T) {
	img := mustNew(t, 2, 1, []uint8{0, 255, 0, 255, 10, 10, 10, 255})
	over := mustNew(t, 2, 1, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	if err := ReplaceBackgroundWith(img, over, NewRgb(0, 255, 0), 0); err != nil {
		t.Fatal(err)
	}
	assertBytes(t, img, []uint8{1, 2, 3, 4, 10, 10, 10, 255})

	if err := ReplaceBackgroundWith(img, gradient(t, 3, 1), NewRgb(0, 0, 0), 1); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("size mismatch error = %v, want ErrSizeMismatch", err)
	}
}

func TestDrawMask(t *testing.T) {
	img := uniform(t, 3, 3, Pixel{0, 0, 0, 255})
	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	mask.Pix[0] = 255 // (0,0)
	mask.Pix[3] = 255 // (1,1)

	if err := DrawMask(img, mask, -1, -1, NewRgb(255, 0, 0)); err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 3 {
			p, _ := img.Pixel(x, y)
			want := Pixel{0, 0, 0, 255}
			if x == 0 && y == 0 {
				want = Pixel{255, 0, 0, 255}
			}
			if p != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, p, want)
			}
		}
	}
}

func TestBlend_IndependentOfWorkers(t *testing.T) {
	serial := gradient(t, 40, 40)
	par := gradient(t, 40, 40, WithWorkers(2))
	over := gradient(t, 40, 40)
	_ = FlipH(over)
	for _, img := range []*Image{serial, par} {
		if err := Blend(img, over, BlendSoftLight); err != nil {
			t.Fatal(err)
		}
	}
	assertBytes(t, par, serial.Bytes())
}
