package eos

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func randomInputs(n int, seed int64) (sa, ct, p []float64) {
	rng := rand.New(rand.NewSource(seed))
	sa = make([]float64, n)
	ct = make([]float64, n)
	p = make([]float64, n)
	for i := 0; i < n; i++ {
		sa[i] = 42.2 * rng.Float64()
		ct[i] = -2 + 37*rng.Float64()
		p[i] = 8000 * rng.Float64()
	}
	return sa, ct, p
}

func TestEvalArrayMatchesScalar(t *testing.T) {
	sa, ct, p := randomInputs(257, 1)
	for _, name := range Names() {
		e, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		f, err := e.EvalArray(sa, ct, p)
		if err != nil {
			t.Fatalf("%s: EvalArray: %v", name, err)
		}
		if f.Len() != len(sa) {
			t.Fatalf("%s: Len = %d, want %d", name, f.Len(), len(sa))
		}
		for i := range sa {
			r := e.Eval(sa[i], ct[i], p[i])
			if f.Value[i] != r.Value || f.Alpha[i] != r.Alpha || f.Beta[i] != r.Beta ||
				f.Ref[i] != r.Ref || f.Anomaly[i] != r.Anomaly {
				t.Fatalf("%s: element %d differs from scalar", name, i)
			}
		}
	}
}

func TestEvalArrayShapeMismatch(t *testing.T) {
	e, _ := Lookup(VariantBsq)
	_, err := e.EvalArray(make([]float64, 3), make([]float64, 2), make([]float64, 3))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short ct: got %v, want ErrShapeMismatch", err)
	}
	_, err = e.EvalParallel(context.Background(), make([]float64, 3), make([]float64, 3), make([]float64, 4), 2)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("long p: got %v, want ErrShapeMismatch", err)
	}
}

func TestEvalParallelMatchesSerial(t *testing.T) {
	sa, ct, p := randomInputs(10_000, 2)
	e, _ := Lookup(VariantVol75)

	serial, err := e.EvalArray(sa, ct, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{1, 3, 8, 0} {
		par, err := e.EvalParallel(context.Background(), sa, ct, p, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for i := range sa {
			if par.Value[i] != serial.Value[i] || par.Alpha[i] != serial.Alpha[i] {
				t.Fatalf("workers=%d: element %d differs", workers, i)
			}
		}
	}
}

// Each element is a pure function of its own inputs, so reordering the
// inputs reorders the outputs and nothing else.
func TestEvalArrayPermutationEquivariant(t *testing.T) {
	sa, ct, p := randomInputs(64, 3)
	e, _ := Lookup(VariantStif)

	base, err := e.EvalArray(sa, ct, p)
	if err != nil {
		t.Fatal(err)
	}

	perm := rand.New(rand.NewSource(4)).Perm(len(sa))
	psa := make([]float64, len(sa))
	pct := make([]float64, len(sa))
	pp := make([]float64, len(sa))
	for i, j := range perm {
		psa[i], pct[i], pp[i] = sa[j], ct[j], p[j]
	}
	permuted, err := e.EvalArray(psa, pct, pp)
	if err != nil {
		t.Fatal(err)
	}
	for i, j := range perm {
		if permuted.Value[i] != base.Value[j] || permuted.Beta[i] != base.Beta[j] {
			t.Fatalf("element %d (from %d) differs under permutation", i, j)
		}
	}
}

func TestEvalParallelCancelled(t *testing.T) {
	sa, ct, p := randomInputs(100_000, 5)
	e, _ := Lookup(VariantBsq)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.EvalParallel(ctx, sa, ct, p, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestEvalArrayEmpty(t *testing.T) {
	e, _ := Lookup(VariantVol55)
	f, err := e.EvalArray(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 0 {
		t.Errorf("Len = %d, want 0", f.Len())
	}
}
