// Package profile evaluates a variant down a water column and exports
// the result.
package profile

import (
	"context"
	"errors"

	"github.com/okeanid/seapoly/internal/eos"
	"github.com/okeanid/seapoly/internal/funnel"
)

var ErrBadGrid = errors.New("profile: pressure grid needs pmax > 0 and steps >= 1")

// Profile holds one water column: uniform SA and CT, outputs at each
// pressure level. Labels names the five output series for the variant
// that produced them.
type Profile struct {
	Variant  string    `json:"variant"`
	SA       float64   `json:"sa"`
	CT       float64   `json:"ct"`
	Labels   [5]string `json:"labels"`
	Pressure []float64 `json:"pressure"`
	Value    []float64 `json:"value"`
	Alpha    []float64 `json:"alpha"`
	Beta     []float64 `json:"beta"`
	Ref      []float64 `json:"ref"`
	Anomaly  []float64 `json:"anomaly"`
	InFunnel []bool    `json:"in_funnel"`
}

// Grid returns steps+1 pressure levels from 0 to pmax inclusive.
func Grid(pmax float64, steps int) ([]float64, error) {
	if pmax <= 0 || steps < 1 {
		return nil, ErrBadGrid
	}
	p := make([]float64, steps+1)
	dp := pmax / float64(steps)
	for i := range p {
		p[i] = float64(i) * dp
	}
	p[steps] = pmax
	return p, nil
}

// Column evaluates the variant at constant SA and CT over the pressure
// grid, splitting the work across cores.
func Column(ctx context.Context, e *eos.Evaluator, sa, ct float64, pressure []float64) (*Profile, error) {
	saCol := make([]float64, len(pressure))
	ctCol := make([]float64, len(pressure))
	for i := range pressure {
		saCol[i] = sa
		ctCol[i] = ct
	}

	f, err := e.EvalParallel(ctx, saCol, ctCol, pressure, 0)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Variant:  e.Name(),
		SA:       sa,
		CT:       ct,
		Labels:   e.Labels(),
		Pressure: pressure,
		Value:    f.Value,
		Alpha:    f.Alpha,
		Beta:     f.Beta,
		Ref:      f.Ref,
		Anomaly:  f.Anomaly,
		InFunnel: funnel.Mask(saCol, ctCol, pressure),
	}, nil
}

// Len returns the number of pressure levels.
func (p *Profile) Len() int { return len(p.Pressure) }
