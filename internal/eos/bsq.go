package eos

// Coefficients of the 55-term Boussinesq in-situ density fit
// (polyTEOS10-bsq). The derivative tables give the thermal expansion
// and haline contraction directly; they were fitted alongside the main
// polynomial and are not recomputed here.

var bsqRef = []float64{4.6494977072e+01, -5.2099962525e+00, 2.2601900708e-01, 6.4326772569e-02, 1.5616995503e-02, -1.7243708991e-03}

var bsqAnom = []tsPoly{
	{ // pp^0
		{8.0189615746e+02, 8.6672408165e+02, -1.7864682637e+03, 2.0375295546e+03, -1.2849161071e+03, 4.3227585684e+02, -6.0579916612e+01},
		{2.6010145068e+01, -6.5281885265e+01, 8.1770425108e+01, -5.6888046321e+01, 1.7681814114e+01, -1.9193502195e+00},
		{-3.7074170417e+01, 6.1548258127e+01, -6.0362551501e+01, 2.9130021253e+01, -5.4723692739e+00},
		{2.1661789529e+01, -3.3449108469e+01, 1.9717078466e+01, -3.1742946532e+00},
		{-8.3627885467e+00, 1.1311538584e+01, -5.3563304045e+00},
		{5.4048723791e-01, 4.8169980163e-01},
		{-1.9083568888e-01},
	},
	{ // pp^1
		{1.9681925209e+01, -4.2549998214e+01, 5.0774768218e+01, -3.0938076334e+01, 6.6051753097e+00},
		{-1.3336301113e+01, -4.4870114575e+00, 5.0042598061e+00, -6.5399043664e-01},
		{6.7080479603e+00, 3.5063081279e+00, -1.8795372996e+00},
		{-2.4649669534e+00, -5.5077101279e-01},
		{5.5927935970e-01},
	},
	{ // pp^2
		{2.0660924175e+00, -4.9527603989e+00, 2.5019633244e+00},
		{2.0564311499e+00, -2.1311365518e-01},
		{-1.2419983026e+00},
	},
	{ // pp^3
		{-2.3342758797e-02, -1.8507636718e-02},
		{3.7969820455e-01},
	},
}

var bsqAlpha = []tsPoly{
	{ // pp^0
		{-6.5025362670e-01, 1.6320471316e+00, -2.0442606277e+00, 1.4222011580e+00, -4.4204535284e-01, 4.7983755487e-02},
		{1.8537085209e+00, -3.0774129064e+00, 3.0181275751e+00, -1.4565010626e+00, 2.7361846370e-01},
		{-1.6246342147e+00, 2.5086831352e+00, -1.4787808849e+00, 2.3807209899e-01},
		{8.3627885467e-01, -1.1311538584e+00, 5.3563304045e-01},
		{-6.7560904739e-02, -6.0212475204e-02},
		{2.8625353333e-02},
	},
	{ // pp^1
		{3.3340752782e-01, 1.1217528644e-01, -1.2510649515e-01, 1.6349760916e-02},
		{-3.3540239802e-01, -1.7531540640e-01, 9.3976864981e-02},
		{1.8487252150e-01, 4.1307825959e-02},
		{-5.5927935970e-02},
	},
	{ // pp^2
		{-5.1410778748e-02, 5.3278413794e-03},
		{6.2099915132e-02},
	},
	{ // pp^3
		{-9.4924551138e-03},
	},
}

var bsqBeta = []tsPoly{
	{ // pp^0
		{1.0783203594e+01, -4.4452095908e+01, 7.6048755820e+01, -6.3944280668e+01, 2.6890441098e+01, -4.5221697773e+00},
		{-8.1219372432e-01, 2.0346663041e+00, -2.1232895170e+00, 8.7994140485e-01, -1.1939638360e-01},
		{7.6574242289e-01, -1.5019813020e+00, 1.0872489522e+00, -2.7233429080e-01},
		{-4.1615152308e-01, 4.9061350869e-01, -1.1847737788e-01},
		{1.4073062708e-01, -1.3327978879e-01},
		{5.9929880134e-03},
	},
	{ // pp^1
		{-5.2937873009e-01, 1.2634116779e+00, -1.1547328025e+00, 3.2870876279e-01},
		{-5.5824407214e-02, 1.2451933313e-01, -2.4409539932e-02},
		{4.3623149752e-02, -4.6767901790e-02},
		{-6.8523260060e-03},
	},
	{ // pp^2
		{-6.1618945251e-02, 6.2255521644e-02},
		{-2.6514181169e-03},
	},
	{ // pp^3
		{-2.3025968587e-04},
	},
}

// Density computes in-situ density and its first derivatives from
// Absolute Salinity [g/kg], Conservative Temperature [deg C] and sea
// pressure [dbar] using the 55-term Boussinesq fit.
//
// The haline contraction divides by the reduced root-salinity. At the
// singular point SA = -32 g/kg exactly (unreachable for physical
// inputs) the quotient follows IEEE semantics and yields Inf or NaN;
// no guard is applied.
func Density(sa, ct, p float64) DensityResult {
	tt, ss, pp := reduce(sa, ct, p, deltaSDensity)
	r0 := hornerRef(bsqRef, pp)
	r := hornerP(bsqAnom, tt, ss, pp)
	return DensityResult{
		Rho:        r0 + r,
		Alpha:      hornerP(bsqAlpha, tt, ss, pp),
		Beta:       hornerP(bsqBeta, tt, ss, pp) / ss,
		RefProfile: r0,
		Anomaly:    r,
	}
}
