package eos

// Coefficients of the stiffened density fit (polyTEOS10-stif). The
// reference ratio r1 is dimensionless and multiplies the stiffened
// density; it also scales both derivative tables.

var stifRef = []float64{4.5238001132e-02, -5.0691457704e-03, 2.1990865986e-04, 6.2587720090e-05, 1.5194795322e-05, -1.6777531159e-06}

var stifAnom = []tsPoly{
	{ // pp^0
		{8.0185969881e+02, 8.6694399997e+02, -1.7869886805e+03, 2.0381548497e+03, -1.2853207957e+03, 4.3240996619e+02, -6.0597695001e+01},
		{2.6018938392e+01, -6.5349779146e+01, 8.1938301569e+01, -5.7075042739e+01, 1.7778970855e+01, -1.9385269480e+00},
		{-3.7047586837e+01, 6.1469677558e+01, -6.0273564480e+01, 2.9086147388e+01, -5.4641145446e+00},
		{2.1645370860e+01, -3.3415215649e+01, 1.9694119706e+01, -3.1710494147e+00},
		{-8.3587258634e+00, 1.1301873278e+01, -5.3494903247e+00},
		{5.4258499460e-01, 4.7964098705e-01},
		{-1.9098981559e-01},
	},
	{ // pp^1
		{2.1989266031e+01, -4.2043785414e+01, 4.8565183521e+01, -3.0473875108e+01, 6.5025796369e+00},
		{-1.3731593003e+01, -4.3667263842e+00, 5.2899298884e+00, -7.1323826203e-01},
		{7.4843325711e+00, 3.1442996192e+00, -1.8141771987e+00},
		{-2.6010182316e+00, -4.9866739215e-01},
		{5.5882364387e-01},
	},
	{ // pp^2
		{1.1144125393e+00, -4.5413502768e+00, 2.7242121539e+00},
		{2.8508446713e+00, -4.4471361300e-01},
		{-1.5059302816e+00},
	},
	{ // pp^3
		{1.9817079368e-01, -1.7905369937e-01},
		{2.5254165600e-01},
	},
}

var stifAlpha = []tsPoly{
	{ // pp^0
		{-6.5047345980e-01, 1.6337444787e+00, -2.0484575392e+00, 1.4268760685e+00, -4.4447427136e-01, 4.8463173700e-02},
		{1.8523793418e+00, -3.0734838779e+00, 3.0136782240e+00, -1.4543073694e+00, 2.7320572723e-01},
		{-1.6234028145e+00, 2.5061411737e+00, -1.4770589780e+00, 2.3782870611e-01},
		{8.3587258634e-01, -1.1301873278e+00, 5.3494903247e-01},
		{-6.7823124325e-02, -5.9955123381e-02},
		{2.8648472338e-02},
	},
	{ // pp^1
		{3.4328982507e-01, 1.0916815960e-01, -1.3224824721e-01, 1.7830956551e-02},
		{-3.7421662855e-01, -1.5721498096e-01, 9.0708859933e-02},
		{1.9507636737e-01, 3.7400054411e-02},
		{-5.5882364387e-02},
	},
	{ // pp^2
		{-7.1271116782e-02, 1.1117840325e-02},
		{7.5296514078e-02},
	},
	{ // pp^3
		{-6.3135413999e-03},
	},
}

var stifBeta = []tsPoly{
	{ // pp^0
		{1.0785939671e+01, -4.4465045269e+01, 7.6072094337e+01, -6.3964420131e+01, 2.6898783594e+01, -4.5234968986e+00},
		{-8.1303841476e-01, 2.0388435182e+00, -2.1302689715e+00, 8.8477644261e-01, -1.2058930400e-01},
		{7.6476477580e-01, -1.4997670675e+00, 1.0856114040e+00, -2.7192349143e-01},
		{-4.1572985119e-01, 4.9004223351e-01, -1.1835625260e-01},
		{1.4061037779e-01, -1.3310958936e-01},
		{5.9673736141e-03},
	},
	{ // pp^1
		{-5.2308076768e-01, 1.2084313165e+00, -1.1374069553e+00, 3.2360305476e-01},
		{-5.4327900468e-02, 1.3162756682e-01, -2.6620905846e-02},
		{3.9119281064e-02, -4.5141568126e-02},
		{-6.2040874705e-03},
	},
	{ // pp^2
		{-5.6500454603e-02, 6.7785665385e-02},
		{-5.5328304955e-03},
	},
	{ // pp^3
		{-2.2276668383e-03},
	},
}

// Stiffened computes in-situ density as r1(p) * rhodot(SA, CT, p),
// the stiffened form of the 55-term fit.
func Stiffened(sa, ct, p float64) StiffenedResult {
	tt, ss, pp := reduce(sa, ct, p, deltaSDensity)
	r1 := hornerRef(stifRef, pp) + 1.0
	rdot := hornerP(stifAnom, tt, ss, pp)
	return StiffenedResult{
		Rho:      r1 * rdot,
		Alpha:    r1 * hornerP(stifAlpha, tt, ss, pp),
		Beta:     hornerP(stifBeta, tt, ss, pp) * r1 / ss,
		RefRatio: r1,
		RhoDot:   rdot,
	}
}
