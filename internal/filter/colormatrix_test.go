package filter

import (
	"math"
	"testing"
)

func TestColorMatrix_Transform(t *testing.T) {
	tests := []struct {
		name           string
		m              ColorMatrix
		r, g, b, a     float64
		wr, wg, wb, wa float64
	}{
		{"identity", Identity(), 10, 20, 30, 40, 10, 20, 30, 40},
		{"brightness half", Brightness(0.5), 100, 200, 50, 255, 50, 100, 25, 255},
		{"contrast zero", Contrast(0), 10, 200, 90, 255, 128, 128, 128, 255},
		{"sepia white", Sepia(), 255, 255, 255, 255, 255 * 1.351, 255 * 1.203, 255 * 0.937, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.m.Transform(tt.r, tt.g, tt.b, tt.a)
			got := [4]float64{r, g, b, a}
			want := [4]float64{tt.wr, tt.wg, tt.wb, tt.wa}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Errorf("Transform = %v, want %v", got, want)
					break
				}
			}
		})
	}
}

func TestSaturationZeroIsGrey(t *testing.T) {
	m := Saturation(0)
	r, g, b, _ := m.Transform(200, 100, 50, 255)
	if math.Abs(r-g) > 1e-9 || math.Abs(g-b) > 1e-9 {
		t.Errorf("Saturation(0) = (%v,%v,%v), want equal components", r, g, b)
	}
}

func TestHueRotateZeroIsIdentity(t *testing.T) {
	m := HueRotate(0)
	id := Identity()
	for i := range m {
		if math.Abs(m[i]-id[i]) > 1e-9 {
			t.Errorf("HueRotate(0)[%d] = %v, want %v", i, m[i], id[i])
		}
	}
}

func TestColorMatrix_Then(t *testing.T) {
	// Contrast 2 then brightness 0.5: ((c-128)*2+128)*0.5 = c-64.
	m := Contrast(2).Then(Brightness(0.5))
	r, g, b, a := m.Transform(55, 155, 255, 200)
	want := [4]float64{-9, 91, 191, 200}
	got := [4]float64{r, g, b, a}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Contrast(2).Then(Brightness(0.5)) = %v, want %v", got, want)
			break
		}
	}
}

func TestColorMatrix_ThenIdentity(t *testing.T) {
	m := Sepia()
	if got := Identity().Then(m); got != m {
		t.Errorf("Identity().Then(Sepia()) = %v, want %v", got, m)
	}
	if got := m.Then(Identity()); got != m {
		t.Errorf("Sepia().Then(Identity()) = %v, want %v", got, m)
	}
}
