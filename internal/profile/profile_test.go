package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/okeanid/seapoly/internal/eos"
)

func TestGrid(t *testing.T) {
	p, err := Grid(4000, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 9 {
		t.Fatalf("len = %d, want 9", len(p))
	}
	if p[0] != 0 {
		t.Errorf("first level = %g, want 0", p[0])
	}
	if p[8] != 4000 {
		t.Errorf("last level = %g, want 4000", p[8])
	}
	if p[4] != 2000 {
		t.Errorf("midpoint = %g, want 2000", p[4])
	}
}

func TestGridBadInputs(t *testing.T) {
	for _, c := range []struct {
		pmax  float64
		steps int
	}{{0, 10}, {-100, 10}, {1000, 0}, {1000, -1}} {
		if _, err := Grid(c.pmax, c.steps); !errors.Is(err, ErrBadGrid) {
			t.Errorf("Grid(%g, %d): got %v, want ErrBadGrid", c.pmax, c.steps, err)
		}
	}
}

func TestColumn(t *testing.T) {
	e, err := eos.Lookup(eos.VariantBsq)
	if err != nil {
		t.Fatal(err)
	}
	grid, _ := Grid(2000, 20)
	prof, err := Column(context.Background(), e, 35.0, 10.0, grid)
	if err != nil {
		t.Fatal(err)
	}
	if prof.Len() != 21 {
		t.Fatalf("Len = %d, want 21", prof.Len())
	}
	if prof.Variant != eos.VariantBsq {
		t.Errorf("Variant = %q", prof.Variant)
	}

	// Surface value matches the scalar evaluation and densities
	// increase with depth at fixed SA and CT.
	want := eos.Density(35.0, 10.0, 0).Rho
	if prof.Value[0] != want {
		t.Errorf("surface rho = %g, want %g", prof.Value[0], want)
	}
	for i := 1; i < prof.Len(); i++ {
		if prof.Value[i] <= prof.Value[i-1] {
			t.Fatalf("rho not increasing at level %d: %g <= %g", i, prof.Value[i], prof.Value[i-1])
		}
	}
	for i, ok := range prof.InFunnel {
		if !ok {
			t.Errorf("level %d (p=%g) unexpectedly out of the fitted region", i, prof.Pressure[i])
		}
	}
}

func TestWriteCSV(t *testing.T) {
	e, _ := eos.Lookup(eos.VariantVol75)
	grid, _ := Grid(1000, 2)
	prof, err := Column(context.Background(), e, 35.0, 10.0, grid)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := prof.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "pressure,specvol,alpha,beta,v0,delta,in_funnel" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.00,") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	e, _ := eos.Lookup(eos.VariantStif)
	grid, _ := Grid(500, 5)
	prof, err := Column(context.Background(), e, 38.4, 13.0, grid)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := prof.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var back Profile
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if back.Variant != prof.Variant || back.Len() != prof.Len() {
		t.Fatalf("round trip lost shape: %+v", back)
	}
	for i := range prof.Value {
		if back.Value[i] != prof.Value[i] {
			t.Errorf("value %d: %g != %g", i, back.Value[i], prof.Value[i])
		}
	}
}
