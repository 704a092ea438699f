package eos

// tsPoly is a polynomial in the reduced temperature tt and reduced
// root-salinity ss for a single pressure order: tsPoly[j][i] multiplies
// tt^j * ss^i. Rows shorten as j grows; the fits are triangular in
// total degree.
type tsPoly [][]float64

func hornerS(c []float64, ss float64) float64 {
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = acc*ss + c[i]
	}
	return acc
}

// hornerTS evaluates one pressure-order coefficient: Horner in tt, with
// each tt coefficient itself Horner in ss. This nesting reproduces the
// published expressions; the golden-value tests pin it down, since
// floating-point addition is not associative and regrouping the sums
// moves the trailing bits.
func hornerTS(c tsPoly, tt, ss float64) float64 {
	acc := hornerS(c[len(c)-1], ss)
	for j := len(c) - 2; j >= 0; j-- {
		acc = acc*tt + hornerS(c[j], ss)
	}
	return acc
}

// hornerP folds the pressure orders of an anomaly or derivative table.
func hornerP(orders []tsPoly, tt, ss, pp float64) float64 {
	acc := hornerTS(orders[len(orders)-1], tt, ss)
	for k := len(orders) - 2; k >= 0; k-- {
		acc = acc*pp + hornerTS(orders[k], tt, ss)
	}
	return acc
}

// hornerRef evaluates a vertical reference profile. The polynomial has
// no constant term, so it is exactly zero at p = 0.
func hornerRef(c []float64, pp float64) float64 {
	acc := c[len(c)-1]
	for k := len(c) - 2; k >= 0; k-- {
		acc = acc*pp + c[k]
	}
	return acc * pp
}
