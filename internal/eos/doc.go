// Package eos evaluates the TEOS-10 polynomial equations of state for
// seawater (Roquet et al. 2014).
//
// Four fitted formulations are provided:
//
//   - [Density]: in-situ density, 55-term Boussinesq fit
//   - [Stiffened]: stiffened density (reference ratio times stiffened density)
//   - [SpecVol55], [SpecVol75]: specific volume, 55- and 75-term fits
//
// Inputs are Absolute Salinity [g/kg], Conservative Temperature
// [deg C, ITS-90] and sea pressure [dbar]. Each variant owns an
// immutable coefficient table, populated at package initialization and
// never mutated, so evaluation is a pure function of its inputs and is
// safe to call from any number of goroutines.
//
// The fits were regressed over the "oceanographic funnel" of McDougall
// et al. (2011). The evaluator performs no range checking of its own;
// use package funnel to test applicability before trusting the output.
package eos
