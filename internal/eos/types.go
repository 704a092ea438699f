package eos

// DensityResult holds the outputs of the Boussinesq density fit.
// Rho = RefProfile + Anomaly within floating-point rounding; the
// reference profile depends on pressure only.
type DensityResult struct {
	Rho        float64 // in-situ density [kg/m^3]
	Alpha      float64 // thermal expansion, -d(rho)/dCT [kg/m^3/K]
	Beta       float64 // haline contraction, +d(rho)/dSA [kg/m^3/(g/kg)]
	RefProfile float64 // vertical reference density r0(p) [kg/m^3]
	Anomaly    float64 // density anomaly r [kg/m^3]
}

// StiffenedResult holds the outputs of the stiffened density fit,
// where Rho = RefRatio * RhoDot.
type StiffenedResult struct {
	Rho      float64 // in-situ density [kg/m^3]
	Alpha    float64 // thermal expansion [kg/m^3/K]
	Beta     float64 // haline contraction [kg/m^3/(g/kg)]
	RefRatio float64 // vertical reference ratio r1(p), dimensionless
	RhoDot   float64 // stiffened density [kg/m^3]
}

// SpecVolResult holds the outputs of the specific-volume fits, with
// SpecVol = RefProfile + Anomaly.
type SpecVolResult struct {
	SpecVol    float64 // specific volume [m^3/kg]
	Alpha      float64 // thermal expansion, +(1/v) dv/dCT [1/K]
	Beta       float64 // haline contraction, -(1/v) dv/dSA [1/(g/kg)]
	RefProfile float64 // vertical reference specific volume v0(p) [m^3/kg]
	Anomaly    float64 // specific volume anomaly delta [m^3/kg]
}

// Result is the variant-independent view of one evaluation, used by the
// registry and the slice forms. Value is rho or specvol depending on
// the variant; see Evaluator.Labels for the naming.
type Result struct {
	Value   float64
	Alpha   float64
	Beta    float64
	Ref     float64
	Anomaly float64
}

// Field holds elementwise outputs co-shaped with the inputs.
type Field struct {
	Value   []float64
	Alpha   []float64
	Beta    []float64
	Ref     []float64
	Anomaly []float64
}

func newField(n int) *Field {
	return &Field{
		Value:   make([]float64, n),
		Alpha:   make([]float64, n),
		Beta:    make([]float64, n),
		Ref:     make([]float64, n),
		Anomaly: make([]float64, n),
	}
}

// Len returns the common length of the field's slices.
func (f *Field) Len() int { return len(f.Value) }

func (f *Field) set(i int, r Result) {
	f.Value[i] = r.Value
	f.Alpha[i] = r.Alpha
	f.Beta[i] = r.Beta
	f.Ref[i] = r.Ref
	f.Anomaly[i] = r.Anomaly
}
