package blend

import (
	"math"
	"testing"
)

func approxColor(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestChannelFunc(t *testing.T) {
	tests := []struct {
		mode   Mode
		cb, cs float64
		want   float64
	}{
		{ModeNormal, 0.2, 0.7, 0.7},
		{ModeMultiply, 0.5, 0.5, 0.25},
		{ModeScreen, 0.5, 0.5, 0.75},
		{ModeOverlay, 0.25, 0.5, 0.25},
		{ModeOverlay, 0.75, 0.5, 0.75},
		{ModeDarken, 0.3, 0.6, 0.3},
		{ModeLighten, 0.3, 0.6, 0.6},
		{ModeColorDodge, 0, 0.9, 0},
		{ModeColorDodge, 0.5, 1, 1},
		{ModeColorDodge, 0.25, 0.5, 0.5},
		{ModeColorBurn, 1, 0, 1},
		{ModeColorBurn, 0.5, 0, 0},
		{ModeColorBurn, 0.75, 0.5, 0.5},
		{ModeHardLight, 0.5, 0.25, 0.25},
		{ModeSoftLight, 0.5, 0.5, 0.5},
		{ModeDifference, 0.2, 0.7, 0.5},
		{ModeExclusion, 0.5, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := channelFunc(tt.mode)(tt.cb, tt.cs); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("channelFunc(%v)(%v, %v) = %v, want %v", tt.mode, tt.cb, tt.cs, got, tt.want)
			}
		})
	}
}

func TestComposite_Identities(t *testing.T) {
	base := Color{R: 0.2, G: 0.6, B: 0.9, A: 1}
	black := Color{A: 1}
	white := Color{R: 1, G: 1, B: 1, A: 1}

	if got := Composite(base, black, ModeScreen); !approxColor(got, base, 1e-12) {
		t.Errorf("screen(base, black) = %+v, want %+v", got, base)
	}
	if got := Composite(base, white, ModeMultiply); !approxColor(got, base, 1e-12) {
		t.Errorf("multiply(base, white) = %+v, want %+v", got, base)
	}
	if got := Composite(base, base, ModeDifference); !approxColor(got, Color{A: 1}, 1e-12) {
		t.Errorf("difference(base, base) = %+v, want opaque black", got)
	}
}

func TestComposite_TransparentSource(t *testing.T) {
	base := Color{R: 0.3, G: 0.4, B: 0.5, A: 0.8}
	for m := ModeNormal; m <= ModeExclusion; m++ {
		if got := Composite(base, Color{R: 1, A: 0}, m); !approxColor(got, base, 1e-12) {
			t.Errorf("%v with transparent source = %+v, want %+v", m, got, base)
		}
	}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Color
		want     Color
	}{
		{"opaque source wins", Color{1, 0, 0, 1}, Color{0, 1, 0, 1}, Color{0, 1, 0, 1}},
		{"half over opaque", Color{0, 0, 0, 1}, Color{1, 1, 1, 0.5}, Color{0.5, 0.5, 0.5, 1}},
		{"both transparent", Color{}, Color{}, Color{}},
		{"onto transparent", Color{}, Color{0.2, 0.4, 0.6, 0.5}, Color{0.2, 0.4, 0.6, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceOver(tt.dst, tt.src); !approxColor(got, tt.want, 1e-12) {
				t.Errorf("SourceOver(%+v, %+v) = %+v, want %+v", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	if got := ModeColorDodge.String(); got != "dodge" {
		t.Errorf("ModeColorDodge.String() = %q, want %q", got, "dodge")
	}
	if got := Mode(99).String(); got != "unknown" {
		t.Errorf("Mode(99).String() = %q, want %q", got, "unknown")
	}
	if Mode(99).Valid() {
		t.Error("Mode(99).Valid() = true")
	}
}
