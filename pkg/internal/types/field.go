package types

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FieldKind tags the dimensionality of an exported field.
type FieldKind int

const (
	Profile1D FieldKind = iota + 1
	Map2D
)

func (k FieldKind) String() string {
	switch k {
	case Profile1D:
		return "profile1d"
	case Map2D:
		return "map2d"
	default:
		return "unknown"
	}
}

// Field is a real or complex array exported by the engine. A 1D profile is
// stored as an n x 1 matrix. For 2D maps rows index x and columns index y.
type Field struct {
	Kind FieldKind
	Re   *mat.Dense
	Im   *mat.Dense // nil for real fields
}

// NewMap wraps a real 2D array.
func NewMap(re *mat.Dense) Field {
	return Field{Kind: Map2D, Re: re}
}

// NewProfile wraps a real 1D array.
func NewProfile(values []float64) Field {
	return Field{Kind: Profile1D, Re: mat.NewDense(len(values), 1, values)}
}

// IsComplex reports whether the field carries an imaginary part.
func (f Field) IsComplex() bool {
	return f.Im != nil
}

// Dims returns the shape of the real part.
func (f Field) Dims() (int, int) {
	if f.Re == nil {
		return 0, 0
	}
	return f.Re.Dims()
}

// AsMap returns the field as a 2D map, rejecting profiles with a typed error.
func (f Field) AsMap() (Field, error) {
	r, c := f.Dims()
	if f.Kind != Map2D || f.Re == nil {
		return Field{}, &ShapeError{Op: "field.AsMap", GotRows: r, GotCols: c, Unexpected: true}
	}
	if f.Im != nil {
		ir, ic := f.Im.Dims()
		if ir != r || ic != c {
			return Field{}, &ShapeError{Op: "field.AsMap", WantRows: r, WantCols: c, GotRows: ir, GotCols: ic}
		}
	}
	return f, nil
}

// Abs returns the element-wise magnitude |field|.
func (f Field) Abs() *mat.Dense {
	r, c := f.Dims()
	out := mat.NewDense(r, c, nil)
	if f.Im == nil {
		out.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) }, f.Re)
		return out
	}
	out.Apply(func(i, j int, v float64) float64 { return math.Hypot(v, f.Im.At(i, j)) }, f.Re)
	return out
}

// FieldFrame is one snapshot of a field captured at a simulated time.
type FieldFrame struct {
	Time  float64
	Field Field
}
