package eos

// Coefficients of the 75-term specific-volume fit (polyTEOS10-75t),
// the expression recommended for forward ocean models. The anomaly
// carries pressure orders up to pp^5.

var vol75Ref = []float64{-4.4015007269e-05, 6.9232335784e-06, -7.5004675975e-07, 1.7009109288e-08, -1.6884162004e-08, 1.9613503930e-09}

var vol75Anom = []tsPoly{
	{ // pp^0
		{1.0769995862e-03, -3.1038981976e-04, 6.6928067038e-04, -8.5047933937e-04, 5.8086069943e-04, -2.1092370507e-04, 3.1932457305e-05},
		{-1.5649734675e-05, 3.5009599764e-05, -4.3592678561e-05, 3.4532461828e-05, -1.1959409788e-05, 1.3864594581e-06},
		{2.7762106484e-05, -3.7435842344e-05, 3.5907822760e-05, -1.8698584187e-05, 3.8595339244e-06},
		{-1.6521159259e-05, 2.4141479483e-05, -1.4353633048e-05, 2.2863324556e-06},
		{6.9111322702e-06, -8.7595873154e-06, 4.3703680598e-06},
		{-8.0539615540e-07, -3.3052758900e-07},
		{2.0543094268e-07},
	},
	{ // pp^1
		{-1.6784136540e-05, 2.4262468747e-05, -3.4792460974e-05, 3.7470777305e-05, -1.7322218612e-05, 3.0927427253e-06},
		{1.8505765429e-05, -9.5677088156e-06, 1.1100834765e-05, -9.8447117844e-06, 2.5909225260e-06},
		{-1.1716606853e-05, -2.3678308361e-07, 2.9283346295e-06, -4.8826139200e-07},
		{7.9279656173e-06, -3.4558773655e-06, 3.1655306078e-07},
		{-3.4102187482e-06, 1.2956717783e-06},
		{5.0736766814e-07},
	},
	{ // pp^2
		{3.0623833435e-06, -5.8484432984e-07, -4.8122251597e-06, 4.9263106998e-06, -1.7811974727e-06},
		{-1.1736386731e-06, -5.5699154557e-06, 5.4620748834e-06, -1.3544185627e-06},
		{2.1305028740e-06, 3.9137387080e-07, -6.5731104067e-07},
		{-4.6132540037e-07, 7.7618888092e-09},
		{-6.3352916514e-08},
	},
	{ // pp^3
		{-3.8088938393e-07, 3.6310188515e-07, 1.6746303780e-08},
		{-3.6527006553e-07, -2.7295696237e-07},
		{2.8695905159e-07},
	},
	{ // pp^4
		{8.8302421514e-08, -1.1147125423e-07},
		{3.1454099902e-07},
	},
	{ // pp^5
		{4.2369007180e-09},
	},
}

var vol75Alpha = []tsPoly{
	{ // pp^0
		{-3.9124336688e-07, 8.7523999410e-07, -1.0898169640e-06, 8.6331154570e-07, -2.9898524469e-07, 3.4661486454e-08},
		{1.3881053242e-06, -1.8717921172e-06, 1.7953911380e-06, -9.3492920933e-07, 1.9297669622e-07},
		{-1.2390869444e-06, 1.8106109612e-06, -1.0765224786e-06, 1.7147493417e-07},
		{6.9111322702e-07, -8.7595873154e-07, 4.3703680598e-07},
		{-1.0067451943e-07, -4.1315948624e-08},
		{3.0814641402e-08},
	},
	{ // pp^1
		{4.6264413572e-07, -2.3919272039e-07, 2.7752086911e-07, -2.4611779461e-07, 6.4773063150e-08},
		{-5.8583034263e-07, -1.1839154180e-08, 1.4641673148e-07, -2.4413069600e-08},
		{5.9459742130e-07, -2.5919080242e-07, 2.3741479559e-08},
		{-3.4102187482e-07, 1.2956717783e-07},
		{6.3420958518e-08},
	},
	{ // pp^2
		{-2.9340966828e-08, -1.3924788639e-07, 1.3655187208e-07, -3.3860464067e-08},
		{1.0652514370e-07, 1.9568693540e-08, -3.2865552033e-08},
		{-3.4599405028e-08, 5.8214166069e-10},
		{-6.3352916514e-09},
	},
	{ // pp^3
		{-9.1317516382e-09, -6.8239240593e-09},
		{1.4347952579e-08},
	},
	{ // pp^4
		{7.8635249756e-09},
	},
}

var vol75Beta = []tsPoly{
	{ // pp^0
		{3.8616633493e-06, -1.6653488424e-05, 3.1743292000e-05, -2.8906727363e-05, 1.3120861084e-05, -2.3836941584e-06},
		{-4.3556611614e-07, 1.0847021286e-06, -1.2888896515e-06, 5.9516403589e-07, -8.6247024451e-08},
		{4.6575180991e-07, -8.9348241648e-07, 6.9790598120e-07, -1.9207099914e-07},
		{-3.0035220418e-07, 3.5715667939e-07, -8.5335075632e-08},
		{1.0898094956e-07, -1.0874641554e-07},
		{4.1122040579e-09},
	},
	{ // pp^1
		{-3.0185747199e-07, 8.6572923996e-07, -1.3985593422e-06, 8.6204601419e-07, -1.9238922270e-07},
		{1.1903505888e-07, -2.7621838107e-07, 3.6744403581e-07, -1.2893812777e-07},
		{2.9458973764e-09, -7.2864777086e-08, 1.8223868848e-08},
		{4.2995723805e-08, -7.8766845761e-09},
		{-1.6119885062e-08},
	},
	{ // pp^2
		{7.2762435164e-09, 1.1974099887e-07, -1.8386962715e-07, 8.8641889138e-08},
		{6.9297177307e-08, -1.3591099350e-07, 5.0552320246e-08},
		{-4.8692129590e-09, 1.6355652107e-08},
		{-9.6568249433e-11},
	},
	{ // pp^3
		{-4.5174717490e-09, -4.1669270980e-10},
		{3.3959486762e-09},
	},
	{ // pp^4
		{1.3868510806e-09},
	},
}

// SpecVol75 computes specific volume and its first derivatives using
// the 75-term fit.
func SpecVol75(sa, ct, p float64) SpecVolResult {
	tt, ss, pp := reduce(sa, ct, p, deltaSVolume)
	v0 := hornerRef(vol75Ref, pp)
	delta := hornerP(vol75Anom, tt, ss, pp)
	v := v0 + delta
	return SpecVolResult{
		SpecVol:    v,
		Alpha:      hornerP(vol75Alpha, tt, ss, pp) / v,
		Beta:       hornerP(vol75Beta, tt, ss, pp) / ss / v,
		RefProfile: v0,
		Anomaly:    delta,
	}
}
