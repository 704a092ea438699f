package theta

import (
	"math"
	"testing"
)

// Reference point SA=35.7 g/kg, CT=20 degC. The documented value
// 20.02391895 comes from an approximate fit with an rms error of a few
// 1e-5 degC; the exact inversion lands inside that band.
func TestPTFromCTReference(t *testing.T) {
	pt := PTFromCT(35.7, 20.0)
	if math.Abs(pt-20.02391895) > 5e-5 {
		t.Errorf("PTFromCT(35.7, 20) = %.10f, want 20.02391895 within 5e-5", pt)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct{ sa, ct float64 }{
		{35.7, 20.0},
		{30.0, 10.0},
		{5.0, 2.0},
		{35.0, 25.0},
		{38.4, 13.0},
		{34.7, -1.8},
		{0.0, 15.0},
	}
	for _, c := range cases {
		pt := PTFromCT(c.sa, c.ct)
		back := CTFromPT(c.sa, pt)
		if math.Abs(back-c.ct) > 1e-11 {
			t.Errorf("round trip at (%g,%g): ct back %.13f, residual %.3e",
				c.sa, c.ct, back, back-c.ct)
		}
	}
}

// The two temperature variables agree to within a fraction of a degree
// across the oceanographic range.
func TestConversionStaysClose(t *testing.T) {
	for _, c := range []struct{ sa, ct float64 }{{35, 0}, {35, 10}, {35, 30}, {10, 5}} {
		pt := PTFromCT(c.sa, c.ct)
		if math.Abs(pt-c.ct) > 0.5 {
			t.Errorf("PTFromCT(%g,%g) = %g, implausibly far from ct", c.sa, c.ct, pt)
		}
	}
}

func TestCTFromPTMonotonicInPT(t *testing.T) {
	prev := CTFromPT(35, -2)
	for pt := -1.5; pt <= 35; pt += 0.5 {
		ct := CTFromPT(35, pt)
		if ct <= prev {
			t.Fatalf("CTFromPT not increasing at pt=%g: %g <= %g", pt, ct, prev)
		}
		prev = ct
	}
}

func TestSliceForms(t *testing.T) {
	sa := []float64{35.7, 30.0, 5.0}
	ct := []float64{20.0, 10.0, 2.0}
	pts := PTFromCTSlice(sa, ct)
	if len(pts) != len(ct) {
		t.Fatalf("len = %d, want %d", len(pts), len(ct))
	}
	for i := range ct {
		if pts[i] != PTFromCT(sa[i], ct[i]) {
			t.Errorf("element %d differs from scalar", i)
		}
	}
	back := CTFromPTSlice(sa, pts)
	for i := range ct {
		if math.Abs(back[i]-ct[i]) > 1e-11 {
			t.Errorf("slice round trip at %d: residual %.3e", i, back[i]-ct[i])
		}
	}
}

func TestNaNPropagates(t *testing.T) {
	if !math.IsNaN(PTFromCT(math.NaN(), 10)) {
		t.Error("NaN sa did not propagate through PTFromCT")
	}
	if !math.IsNaN(CTFromPT(35, math.NaN())) {
		t.Error("NaN pt did not propagate through CTFromPT")
	}
}
