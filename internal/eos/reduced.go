package eos

import "math"

// Reduced-variable scalings shared by all fits. The salinity offset
// applied before the square root differs between the density fits
// (32 g/kg) and the specific-volume fits (24 g/kg).
const (
	sScale = 35.0 / (40.0 * 35.16504) // 1/SAu [kg/g]
	tScale = 1.0 / 40.0               // 1/CTu [1/degC]
	pScale = 1.0e-4                   // 1/Zu  [1/dbar]

	deltaSDensity = 32.0
	deltaSVolume  = 24.0
)

// reduce maps (SA, CT, p) to the reduced coordinates of the fits. The
// absolute value tolerates small negative salinity perturbations near
// zero; salinity is not otherwise validated here.
func reduce(sa, ct, p, deltaS float64) (tt, ss, pp float64) {
	ss = math.Sqrt(math.Abs(sa+deltaS) * sScale)
	tt = ct * tScale
	pp = p * pScale
	return tt, ss, pp
}
