package eos

import (
	"context"
	"runtime"
	"sync"
)

// EvalArray evaluates the variant elementwise over co-shaped slices.
// The outputs are freshly allocated with the same length; elements are
// independent of each other.
func (e *Evaluator) EvalArray(sa, ct, p []float64) (*Field, error) {
	if len(ct) != len(sa) || len(p) != len(sa) {
		return nil, ErrShapeMismatch
	}
	f := newField(len(sa))
	for i := range sa {
		f.set(i, e.eval(sa[i], ct[i], p[i]))
	}
	return f, nil
}

// EvalParallel is EvalArray split across workers goroutines (NumCPU
// when workers < 1). There are no cross-element dependencies, so the
// chunks need no coordination beyond the final join. Cancelling the
// context abandons the evaluation and returns the context's error.
func (e *Evaluator) EvalParallel(ctx context.Context, sa, ct, p []float64, workers int) (*Field, error) {
	if len(ct) != len(sa) || len(p) != len(sa) {
		return nil, ErrShapeMismatch
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	n := len(sa)
	f := newField(n)
	chunk := (n + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if i%1024 == 0 && ctx.Err() != nil {
					return
				}
				f.set(i, e.eval(sa[i], ct[i], p[i]))
			}
		}(lo, hi)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f, nil
}
