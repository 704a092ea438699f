// Package theta converts between Conservative Temperature and
// potential temperature referenced to 0 dbar, both in degrees Celsius
// on ITS-90, with Absolute Salinity in g/kg.
//
// CTFromPT evaluates the TEOS-10 potential-enthalpy polynomial
// directly. PTFromCT inverts it with a rational first guess followed
// by one and a half modified Newton steps, which carries the inverse
// to machine precision: CTFromPT(sa, PTFromCT(sa, ct)) returns ct to
// roundoff.
package theta

import "math"

const (
	cp0  = 3991.86795711963   // specific heat scale [J/(kg K)]
	sfac = 0.0248826675584615 // sa normalization, 0.0025*(35/35.16504)
	t0   = 273.15             // Celsius zero point [K]
)

// CTFromPT returns Conservative Temperature from potential temperature
// referenced to 0 dbar.
func CTFromPT(sa, pt float64) float64 {
	x2 := sfac * sa
	x := math.Sqrt(x2)
	y := pt * 0.025

	potEnthalpy := 61.01362420681071 + y*(168776.46138048015+
		y*(-2735.2785605119625+y*(2574.2164453821433+
			y*(-1536.6644434977543+y*(545.7340497931629+
				(-50.91091728474331-18.30489878927802*y)*y))))) +
		x2*(268.5520265845071+y*(-12019.028203559312+
			y*(3734.858026725145+y*(-2046.7671145057618+
				y*(465.28655623826234+(-0.6370820302376359-
					10.650848542359153*y)*y))))+
			x*(937.2099110620707+y*(588.1802812170108+
				y*(248.39476522971285+(-3.871557904936333-
					2.6268019854268356*y)*y))+
				x*(-1687.914374187449+x*(246.9598888781377+
					x*(123.59576582457964-48.5891069025409*x))+
					y*(936.3206544460336+
						y*(-942.7827304544439+y*(369.4389437509002+
							(-33.83664947895248-9.987880382780322*y)*y))))))

	return potEnthalpy / cp0
}

// gibbsPT0PT0 is the second derivative of the Gibbs function with
// respect to potential temperature at p = 0, used in the Newton step.
func gibbsPT0PT0(sa, pt0 float64) float64 {
	x2 := sfac * sa
	x := math.Sqrt(x2)
	y := pt0 * 0.025

	g03 := -24715.571866078 +
		y*(4420.4472249096725+
			y*(-1778.231237203896+
				y*(1160.5182516851419+
					y*(-569.531539542516+y*128.13429152494615))))
	g08 := x2*(1760.062705994408+x*(-86.1329351956084+
		x*(-137.1145018408982+y*(296.20061691375236+
			y*(-205.67709290374563+49.9394019139016*y)))+
		y*(-60.136422517125+y*10.50720794170734))+
		y*(-1351.605895580406+y*(1097.1125373015109+
			y*(-433.20648175062206+63.905091254154904*y))))

	return (g03 + g08) * 0.000625
}

// PTFromCT returns potential temperature referenced to 0 dbar from
// Conservative Temperature.
func PTFromCT(sa, ct float64) float64 {
	const (
		a0 = -1.446013646344788e-2
		a1 = -3.305308995852924e-3
		a2 = 1.062415929128982e-4
		a3 = 9.477566673794488e-1
		a4 = 2.166591947736613e-3
		a5 = 3.828842955039902e-3
		b0 = 1.0
		b1 = 6.506097115635800e-4
		b2 = 3.830289486850898e-3
		b3 = 1.247811760368034e-6
	)
	s1 := sa * 0.995306702338459

	a5ct := a5 * ct
	b3ct := b3 * ct
	ctFactor := a3 + a4*s1 + a5ct
	ptNum := a0 + s1*(a1+a2*s1) + ct*ctFactor
	ptRecDen := 1.0 / (b0 + b1*s1 + ct*(b2+b3ct))
	pt := ptNum * ptRecDen
	dptDct := (ctFactor + a5ct - (b2+b3ct+b3ct)*pt) * ptRecDen

	// One and a half modified Newton iterations against the exact
	// potential enthalpy.
	ctDiff := CTFromPT(sa, pt) - ct
	ptOld := pt
	pt = ptOld - ctDiff*dptDct
	ptm := 0.5 * (pt + ptOld)
	dptDct = -cp0 / ((ptm + t0) * gibbsPT0PT0(sa, ptm))
	pt = ptOld - ctDiff*dptDct
	ctDiff = CTFromPT(sa, pt) - ct
	ptOld = pt
	return ptOld - ctDiff*dptDct
}

// PTFromCTSlice converts elementwise. sa and ct must have equal
// length.
func PTFromCTSlice(sa, ct []float64) []float64 {
	out := make([]float64, len(ct))
	for i := range ct {
		out[i] = PTFromCT(sa[i], ct[i])
	}
	return out
}

// CTFromPTSlice converts elementwise over co-shaped slices.
func CTFromPTSlice(sa, pt []float64) []float64 {
	out := make([]float64, len(pt))
	for i := range pt {
		out[i] = CTFromPT(sa[i], pt[i])
	}
	return out
}
