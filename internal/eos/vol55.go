package eos

// Coefficients of the 55-term specific-volume fit (polyTEOS10-55t).
// Unlike the density fits, the specific-volume fits were regressed
// with a salinity offset of 24 g/kg; the published check values only
// reproduce with that offset.

var vol55Ref = []float64{-4.4015007269e-05, 6.9232335784e-06, -7.5004675975e-07, 1.7009109288e-08, -1.6884162004e-08, 1.9613503930e-09}

var vol55Anom = []tsPoly{
	{ // pp^0
		{1.0772899069e-03, -3.1263658781e-04, 6.7615860683e-04, -8.6127884515e-04, 5.9010812596e-04, -2.1503943538e-04, 3.2678954455e-05},
		{-1.4949652640e-05, 3.1866349188e-05, -3.8070687610e-05, 2.9818473563e-05, -1.0011321965e-05, 1.0751931163e-06},
		{2.7546851539e-05, -3.6597334199e-05, 3.4489154625e-05, -1.7663254122e-05, 3.5965131935e-06},
		{-1.6506828994e-05, 2.4412359055e-05, -1.4606740723e-05, 2.3293406656e-06},
		{6.7896174634e-06, -8.7951832993e-06, 4.4249040774e-06},
		{-7.2535743349e-07, -3.4680559205e-07},
		{1.9041365570e-07},
	},
	{ // pp^1
		{-1.6889436589e-05, 2.1106556158e-05, -2.1322804368e-05, 1.7347655458e-05, -4.3209400767e-06},
		{1.5355844621e-05, 2.0914122241e-06, -5.7751479725e-06, 1.0767234341e-06},
		{-9.6659393016e-06, -7.0686982208e-07, 1.4488066593e-06},
		{3.1134283336e-06, 7.9562529879e-08},
		{-5.6590253863e-07},
	},
	{ // pp^2
		{1.0500241168e-06, 1.9600661704e-06, -2.1666693382e-06},
		{-3.8541359685e-06, 1.0157632247e-06},
		{1.7178343158e-06},
	},
	{ // pp^3
		{-4.1503454190e-07, 3.5627020989e-07},
		{-1.1293871415e-07},
	},
}

var vol55Alpha = []tsPoly{
	{ // pp^0
		{-3.7374131601e-07, 7.9665872970e-07, -9.5176719025e-07, 7.4546183908e-07, -2.5028304913e-07, 2.6879827908e-08},
		{1.3773425769e-06, -1.8298667100e-06, 1.7244577313e-06, -8.8316270612e-07, 1.7982565968e-07},
		{-1.2380121746e-06, 1.8309269291e-06, -1.0955055542e-06, 1.7470054992e-07},
		{6.7896174634e-07, -8.7951832993e-07, 4.4249040774e-07},
		{-9.0669679187e-08, -4.3350699006e-08},
		{2.8562048354e-08},
	},
	{ // pp^1
		{3.8389611552e-07, 5.2285305603e-08, -1.4437869931e-07, 2.6918085852e-08},
		{-4.8329696508e-07, -3.5343491104e-08, 7.2440332965e-08},
		{2.3350712502e-07, 5.9671897409e-09},
		{-5.6590253863e-08},
	},
	{ // pp^2
		{-9.6353399212e-08, 2.5394080617e-08},
		{8.5891715792e-08},
	},
	{ // pp^3
		{-2.8234678537e-09},
	},
}

var vol55Beta = []tsPoly{
	{ // pp^0
		{3.8896161405e-06, -1.6824629831e-05, 3.2146372768e-05, -2.9366928644e-05, 1.3376886957e-05, -2.4394186796e-06},
		{-3.9645988657e-07, 9.4730026353e-07, -1.1129447472e-06, 4.9821679257e-07, -6.6884182186e-08},
		{4.5531965020e-07, -8.5818216892e-07, 6.5926332049e-07, -1.7898168433e-07},
		{-3.0372230734e-07, 3.6345467351e-07, -8.6940314119e-08},
		{1.0942381108e-07, -1.1010341714e-07},
		{4.3147241272e-09},
	},
	{ // pp^1
		{-2.6259371009e-07, 5.3056825249e-07, -6.4748391553e-07, 2.1503303093e-07},
		{-2.6019957550e-08, 1.4370108710e-07, -4.0187626893e-08},
		{8.7944033950e-09, -3.6050174460e-08},
		{-9.8986399054e-10},
	},
	{ // pp^2
		{-2.4385837456e-08, 5.3912512852e-08},
		{-1.2637449319e-08},
	},
	{ // pp^3
		{-4.4324765969e-09},
	},
}

// SpecVol55 computes specific volume and its first derivatives using
// the 55-term fit. Alpha and beta are normalized by the specific
// volume itself, per the TEOS-10 convention for volume derivatives.
func SpecVol55(sa, ct, p float64) SpecVolResult {
	tt, ss, pp := reduce(sa, ct, p, deltaSVolume)
	v0 := hornerRef(vol55Ref, pp)
	delta := hornerP(vol55Anom, tt, ss, pp)
	v := v0 + delta
	return SpecVolResult{
		SpecVol:    v,
		Alpha:      hornerP(vol55Alpha, tt, ss, pp) / v,
		Beta:       hornerP(vol55Beta, tt, ss, pp) / ss / v,
		RefProfile: v0,
		Anomaly:    delta,
	}
}
