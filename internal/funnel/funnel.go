// Package funnel reports whether a (SA, CT, p) point lies inside the
// oceanographic funnel, the region of state space the polynomial fits
// were constrained over. Outside the funnel the fits extrapolate and
// their errors are uncontrolled.
package funnel

import "math"

// In reports whether the point lies inside the fitted region. NaN
// inputs are outside.
func In(sa, ct, p float64) bool {
	if math.IsNaN(sa) || math.IsNaN(ct) || math.IsNaN(p) {
		return false
	}
	switch {
	case p > 8000:
		return false
	case sa < 0 || sa > 42.2:
		return false
	case ct < -0.3595467-0.0553734*sa:
		return false
	case p < 5500 && sa < 0.006028*(p-500):
		return false
	case p >= 5500 && sa < 30.14:
		return false
	case p < 5500 && ct > 33.0-0.003818181818182*p:
		return false
	case p >= 5500 && ct > 12.0:
		return false
	}
	return true
}

// Mask evaluates In elementwise over co-shaped slices.
func Mask(sa, ct, p []float64) []bool {
	out := make([]bool, len(sa))
	for i := range sa {
		out[i] = In(sa[i], ct[i], p[i])
	}
	return out
}
