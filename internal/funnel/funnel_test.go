package funnel

import (
	"math"
	"testing"
)

func TestIn(t *testing.T) {
	cases := []struct {
		name      string
		sa, ct, p float64
		want      bool
	}{
		{"open ocean surface", 35.0, 15.0, 0, true},
		{"mid depth", 34.7, 4.0, 2000, true},
		{"abyssal", 34.8, 1.0, 6000, true},
		{"too deep", 34.8, 1.0, 8000.5, false},
		{"pressure cap inclusive", 34.8, 1.0, 8000, true},
		{"negative salinity", -0.1, 10.0, 0, false},
		{"hypersaline", 42.3, 20.0, 0, false},
		{"salinity cap inclusive", 42.2, 20.0, 0, true},
		{"below freezing bound", 35.0, -2.4, 0, false},
		{"near freezing ok", 35.0, -2.2, 0, true},
		{"fresh at depth", 2.0, 5.0, 3000, false},
		{"fresh at surface", 2.0, 5.0, 100, true},
		{"deep and fresh", 30.0, 5.0, 6000, false},
		{"warm at depth", 35.0, 15.0, 5000, false},
		{"warm deep cap", 34.9, 12.5, 6000, false},
		{"cool deep ok", 34.9, 11.5, 6000, true},
	}
	for _, c := range cases {
		if got := In(c.sa, c.ct, c.p); got != c.want {
			t.Errorf("%s: In(%g, %g, %g) = %v, want %v", c.name, c.sa, c.ct, c.p, got, c.want)
		}
	}
}

func TestInNaN(t *testing.T) {
	nan := math.NaN()
	if In(nan, 10, 0) || In(35, nan, 0) || In(35, 10, nan) {
		t.Error("NaN input reported inside the funnel")
	}
}

func TestMask(t *testing.T) {
	sa := []float64{35, -1, 34.8}
	ct := []float64{15, 10, 1}
	p := []float64{0, 0, 9000}
	got := Mask(sa, ct, p)
	want := []bool{true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Mask[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
