package photon

import (
	"errors"
	"math"
	"testing"
)

func TestThreshold_Scenario(t *testing.T) {
	img := mustNew(t, 1, 1, []uint8{100, 150, 200, 255})
	if err := MapRGB(img, Threshold(128)); err != nil {
		t.Fatal(err)
	}
	assertBytes(t, img, []uint8{255, 255, 255, 255})
}

func TestThreshold_Monotonic(t *testing.T) {
	img := gradient(t, 16, 16)
	b := img.Bytes()
	for i := 0; i < len(b); i += 4 {
		p := Pixel{b[i], b[i+1], b[i+2], b[i+3]}
		prevWhite := true
		for th := 0; th < 256; th += 5 {
			white := Threshold(uint8(th))(p).R == 255
			if white && !prevWhite {
				t.Fatalf("pixel %v turned white when raising threshold to %d", p, th)
			}
			prevWhite = white
		}
	}
}

func TestThreshold_BlackAndWhiteOnly(t *testing.T) {
	fn := Threshold(128)
	for _, p := range []Pixel{{0, 0, 0, 10}, {255, 255, 255, 20}, {127, 127, 127, 30}, {129, 129, 129, 40}} {
		got := fn(p)
		want := uint8(0)
		if p.R >= 128 {
			want = 255
		}
		if got.R != want || got.G != want || got.B != want || got.A != p.A {
			t.Errorf("Threshold(128)(%v) = %v", p, got)
		}
	}
}

func TestThreshold_GreyAtBoundary(t *testing.T) {
	for v := range 256 {
		level := uint8(v)
		grey := Pixel{level, level, level, 255}
		if got := Threshold(level)(grey); got.R != 255 {
			t.Errorf("Threshold(%d)(grey %d) = %v, want white", v, v, got)
		}
		if v < 255 {
			if got := Threshold(level + 1)(grey); got.R != 0 {
				t.Errorf("Threshold(%d)(grey %d) = %v, want black", v+1, v, got)
			}
		}
	}
}

func TestThreshold_AgreesWithGreyLuminance(t *testing.T) {
	grey := GreyLuminance()
	for _, p := range []Pixel{{200, 100, 50, 255}, {3, 250, 9, 255}, {90, 90, 91, 255}, {255, 0, 255, 255}} {
		luma := grey(p).R
		for th := range 256 {
			want := uint8(0)
			if luma >= uint8(th) {
				want = 255
			}
			if got := Threshold(uint8(th))(p); got.R != want {
				t.Fatalf("Threshold(%d)(%v) = %v, grey luma %d", th, p, got, luma)
			}
		}
	}
}

func TestHueRotate_FullTurn(t *testing.T) {
	img := gradient(t, 32, 32)
	orig := img.Clone()
	fn, err := HueRotate(360)
	if err != nil {
		t.Fatal(err)
	}
	if err := MapRGB(img, fn); err != nil {
		t.Fatal(err)
	}
	for i, v := range img.Bytes() {
		if d := absDiff(v, orig.Bytes()[i]); d > 2 {
			t.Fatalf("byte %d = %d, want %d ±2", i, v, orig.Bytes()[i])
		}
	}
}

func TestHueRotate_Additive(t *testing.T) {
	for _, space := range []Space{SpaceHSL, SpaceHSV} {
		t.Run(space.String(), func(t *testing.T) {
			split := gradient(t, 24, 24)
			whole := split.Clone()

			for _, deg := range []float64{40, 75} {
				fn, err := HueRotateIn(deg, space)
				if err != nil {
					t.Fatal(err)
				}
				if err := MapRGB(split, fn); err != nil {
					t.Fatal(err)
				}
			}
			fn, err := HueRotateIn(115, space)
			if err != nil {
				t.Fatal(err)
			}
			if err := MapRGB(whole, fn); err != nil {
				t.Fatal(err)
			}

			for i, v := range split.Bytes() {
				if d := absDiff(v, whole.Bytes()[i]); d > 2 {
					t.Fatalf("byte %d: rotate(40)·rotate(75) = %d, rotate(115) = %d", i, v, whole.Bytes()[i])
				}
			}
		})
	}
}

func TestHueRotate_Primaries(t *testing.T) {
	tests := []struct {
		degrees float64
		in      Pixel
		want    Pixel
	}{
		{120, Pixel{255, 0, 0, 9}, Pixel{0, 255, 0, 9}},
		{240, Pixel{255, 0, 0, 9}, Pixel{0, 0, 255, 9}},
		{-120, Pixel{255, 0, 0, 9}, Pixel{0, 0, 255, 9}},
		{90, Pixel{60, 60, 60, 9}, Pixel{60, 60, 60, 9}},
	}
	for _, tt := range tests {
		fn, err := HueRotate(tt.degrees)
		if err != nil {
			t.Fatal(err)
		}
		if got := fn(tt.in); got != tt.want {
			t.Errorf("HueRotate(%v)(%v) = %v, want %v", tt.degrees, tt.in, got, tt.want)
		}
	}
}

func TestGreyVariants(t *testing.T) {
	tests := []struct {
		name string
		fn   PixelFunc
		in   Pixel
		want Pixel
	}{
		{"average rounds down", GreyAverage(), Pixel{10, 20, 31, 5}, Pixel{20, 20, 20, 5}},
		{"average rounds up", GreyAverage(), Pixel{10, 20, 32, 5}, Pixel{21, 21, 21, 5}},
		{"luminance of grey", GreyLuminance(), Pixel{77, 77, 77, 5}, Pixel{77, 77, 77, 5}},
		{"desaturate red", Desaturate(), Pixel{255, 0, 0, 5}, Pixel{128, 128, 128, 5}},
		{"solarize", Solarize(), Pixel{100, 200, 128, 5}, Pixel{100, 55, 127, 5}},
		{"sepia white", Sepia(), Pixel{255, 255, 255, 5}, Pixel{255, 255, 239, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
			}
		})
	}
}

func TestSaturate(t *testing.T) {
	fn, err := Saturate(-1, SpaceHSL)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fn(Pixel{200, 100, 50, 1}), (Pixel{125, 125, 125, 1}); got != want {
		t.Errorf("Saturate(-1, HSL) = %v, want %v", got, want)
	}

	for _, space := range []Space{SpaceHSL, SpaceHSV, SpaceLCh} {
		fn, err := Saturate(0, space)
		if err != nil {
			t.Fatal(err)
		}
		p := Pixel{200, 100, 50, 1}
		got := fn(p)
		if absDiff(got.R, p.R) > 1 || absDiff(got.G, p.G) > 1 || absDiff(got.B, p.B) > 1 {
			t.Errorf("Saturate(0, %v)(%v) = %v", space, p, got)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	light, _ := Lighten(1, SpaceHSL)
	if got := light(Pixel{10, 90, 200, 3}); got != (Pixel{255, 255, 255, 3}) {
		t.Errorf("Lighten(1, HSL) = %v, want white", got)
	}
	dark, _ := Darken(1, SpaceHSV)
	if got := dark(Pixel{10, 90, 200, 3}); got != (Pixel{0, 0, 0, 3}) {
		t.Errorf("Darken(1, HSV) = %v, want black", got)
	}
	lch, _ := Lighten(0.1, SpaceLCh)
	in := Pixel{50, 60, 70, 3}
	if got := lch(in); got.R <= in.R || got.G <= in.G || got.B <= in.B {
		t.Errorf("Lighten(0.1, LCh)(%v) = %v, want brighter", in, got)
	}
}

func TestPointOps_InvalidArguments(t *testing.T) {
	checks := map[string]error{}
	_, checks["saturate 1.5"] = Saturate(1.5, SpaceHSL)
	_, checks["saturate NaN"] = Saturate(math.NaN(), SpaceHSL)
	_, checks["saturate bad space"] = Saturate(0.1, Space(9))
	_, checks["lighten -0.1"] = Lighten(-0.1, SpaceHSV)
	_, checks["darken 2"] = Darken(2, SpaceLCh)
	_, checks["hue inf"] = HueRotate(math.Inf(1))
	_, checks["hue bad space"] = HueRotateIn(10, Space(4))
	_, checks["channel add 256"] = ChannelAdd(Red, 256)
	_, checks["channel add bad channel"] = ChannelAdd(Channel(7), 1)
	_, checks["channel remove bad"] = ChannelRemove(Channel(5))
	_, checks["swap bad"] = ChannelSwap(Red, Channel(9))

	for name, err := range checks {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestChannelAdd_Saturates(t *testing.T) {
	up, _ := ChannelAdd(Red, 100)
	down, _ := ChannelAdd(Blue, -100)
	p := Pixel{200, 7, 50, 9}
	if got := up(p); got != (Pixel{255, 7, 50, 9}) {
		t.Errorf("ChannelAdd(Red, 100)(%v) = %v", p, got)
	}
	if got := down(p); got != (Pixel{200, 7, 0, 9}) {
		t.Errorf("ChannelAdd(Blue, -100)(%v) = %v", p, got)
	}
}

func TestChannelRemove(t *testing.T) {
	fn, _ := ChannelRemove(Green)
	if got := fn(Pixel{1, 2, 3, 4}); got != (Pixel{1, 0, 3, 4}) {
		t.Errorf("ChannelRemove(Green) = %v", got)
	}
}
