package text

import (
	"errors"
	"testing"

	"github.com/gogpu/photon"
)

func TestRasterize_Empty(t *testing.T) {
	mask, err := Rasterize("", loadTestFace(t, 16))
	if err != nil {
		t.Fatal(err)
	}
	if !mask.Bounds().Empty() {
		t.Errorf("empty string mask bounds = %v, want empty", mask.Bounds())
	}
}

func TestRasterize_Coverage(t *testing.T) {
	face := loadTestFace(t, 32)
	mask, err := Rasterize("H", face)
	if err != nil {
		t.Fatal(err)
	}
	b := mask.Bounds()
	if b.Min.Y >= 0 || b.Max.Y <= 0 {
		t.Errorf("bounds %v should straddle the baseline", b)
	}

	var covered, above, below int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			covered++
			if y < 0 {
				above++
			} else {
				below++
			}
		}
	}
	if covered == 0 {
		t.Fatal("glyph H produced no coverage")
	}
	// H sits on the baseline with no descender.
	if below > above/10 {
		t.Errorf("coverage below baseline = %d, above = %d", below, above)
	}
}

func TestRasterize_SpaceIsBlank(t *testing.T) {
	mask, err := Rasterize("   ", loadTestFace(t, 20))
	if err != nil {
		t.Fatal(err)
	}
	if mask.Bounds().Dx() <= 0 {
		t.Errorf("space mask width = %d, want advance width", mask.Bounds().Dx())
	}
	for _, a := range mask.Pix {
		if a != 0 {
			t.Fatal("spaces should not cover any pixel")
		}
	}
}

func TestDraw(t *testing.T) {
	img, err := photon.Blank(64, 32)
	if err != nil {
		t.Fatal(err)
	}
	face := loadTestFace(t, 24)
	if err := Draw(img, "Hi", 4, 24, face, photon.NewRgb(255, 255, 255)); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	lit := 0
	pix := img.Bytes()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+1] || pix[i] != pix[i+2] {
			t.Fatalf("pixel %d is not grey: %v", i/4, pix[i:i+4])
		}
		if pix[i+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, pix[i+3])
		}
		if pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Draw did not change any pixel")
	}
}

func TestDraw_Clipped(t *testing.T) {
	img, err := photon.Blank(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	face := loadTestFace(t, 24)
	if err := Draw(img, "Wide text", -20, 4, face, photon.NewRgb(255, 0, 0)); err != nil {
		t.Fatalf("Draw() partly outside = %v", err)
	}
	if err := Draw(img, "x", 100, 100, face, photon.NewRgb(255, 0, 0)); err != nil {
		t.Fatalf("Draw() fully outside = %v", err)
	}
}

func TestDraw_Errors(t *testing.T) {
	face := loadTestFace(t, 12)
	if err := Draw(nil, "x", 0, 0, face, photon.Rgb{}); !errors.Is(err, photon.ErrInvalidArgument) {
		t.Errorf("Draw(nil image) error = %v", err)
	}
	img, _ := photon.Blank(4, 4)
	if err := Draw(img, "x", 0, 0, nil, photon.Rgb{}); !errors.Is(err, photon.ErrInvalidArgument) {
		t.Errorf("Draw(nil face) error = %v", err)
	}
}

func TestDrawCentered(t *testing.T) {
	img, _ := photon.Blank(100, 30)
	face := loadTestFace(t, 20)
	if err := DrawCentered(img, "ii", 22, face, photon.NewRgb(255, 255, 255)); err != nil {
		t.Fatal(err)
	}
	// Narrow text centred in a wide image leaves both edges black.
	for y := range 30 {
		for _, x := range []int{0, 99} {
			if p, _ := img.Pixel(x, y); p.R != 0 {
				t.Errorf("pixel (%d,%d) = %v, want black", x, y, p)
			}
		}
	}
}
