package eos

import (
	"errors"
	"sort"
	"testing"
)

func TestLookupKnownVariants(t *testing.T) {
	for _, name := range []string{VariantBsq, VariantStif, VariantVol55, VariantVol75} {
		e, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if e.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, e.Name())
		}
		for i, label := range e.Labels() {
			if label == "" {
				t.Errorf("%s: empty label at %d", name, i)
			}
		}
	}
}

func TestLookupUnknownVariant(t *testing.T) {
	_, err := Lookup("mks80")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("got %v, want ErrUnknownVariant", err)
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	want := []string{VariantBsq, VariantStif, VariantVol55, VariantVol75}
	sort.Strings(want)
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

// The registry view must agree with the typed entry points.
func TestRegistryMatchesTyped(t *testing.T) {
	sa, ct, p := 34.7, 4.0, 3000.0

	e, _ := Lookup(VariantBsq)
	r := e.Eval(sa, ct, p)
	d := Density(sa, ct, p)
	if r.Value != d.Rho || r.Alpha != d.Alpha || r.Beta != d.Beta || r.Ref != d.RefProfile || r.Anomaly != d.Anomaly {
		t.Errorf("bsq registry result %+v != typed %+v", r, d)
	}

	e, _ = Lookup(VariantVol75)
	rv := e.Eval(sa, ct, p)
	v := SpecVol75(sa, ct, p)
	if rv.Value != v.SpecVol || rv.Ref != v.RefProfile {
		t.Errorf("vol75 registry result %+v != typed %+v", rv, v)
	}
}
