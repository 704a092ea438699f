package eos

import (
	"fmt"
	"sort"
)

// Variant names accepted by Lookup.
const (
	VariantBsq   = "bsq"
	VariantStif  = "stif"
	VariantVol55 = "vol55"
	VariantVol75 = "vol75"
)

// Evaluator is the variant-independent handle used by the CLI and the
// slice forms. Labels name the five outputs in order (value, alpha,
// beta, ref, anomaly) for reporting.
type Evaluator struct {
	name   string
	labels [5]string
	eval   func(sa, ct, p float64) Result
}

func (e *Evaluator) Name() string { return e.name }

func (e *Evaluator) Labels() [5]string { return e.labels }
func (e *Evaluator) Eval(sa, ct, p float64) Result {
	return e.eval(sa, ct, p)
}

var variants = map[string]*Evaluator{
	VariantBsq: {
		name:   VariantBsq,
		labels: [5]string{"rho", "a", "b", "r0", "r"},
		eval: func(sa, ct, p float64) Result {
			d := Density(sa, ct, p)
			return Result{d.Rho, d.Alpha, d.Beta, d.RefProfile, d.Anomaly}
		},
	},
	VariantStif: {
		name:   VariantStif,
		labels: [5]string{"rho", "a", "b", "r1", "rdot"},
		eval: func(sa, ct, p float64) Result {
			d := Stiffened(sa, ct, p)
			return Result{d.Rho, d.Alpha, d.Beta, d.RefRatio, d.RhoDot}
		},
	},
	VariantVol55: {
		name:   VariantVol55,
		labels: [5]string{"specvol", "alpha", "beta", "v0", "delta"},
		eval: func(sa, ct, p float64) Result {
			v := SpecVol55(sa, ct, p)
			return Result{v.SpecVol, v.Alpha, v.Beta, v.RefProfile, v.Anomaly}
		},
	},
	VariantVol75: {
		name:   VariantVol75,
		labels: [5]string{"specvol", "alpha", "beta", "v0", "delta"},
		eval: func(sa, ct, p float64) Result {
			v := SpecVol75(sa, ct, p)
			return Result{v.SpecVol, v.Alpha, v.Beta, v.RefProfile, v.Anomaly}
		},
	},
}

// Lookup returns the evaluator for a variant name.
func Lookup(name string) (*Evaluator, error) {
	e, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownVariant, name, Names())
	}
	return e, nil
}

// Names lists the registered variant names, sorted.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
