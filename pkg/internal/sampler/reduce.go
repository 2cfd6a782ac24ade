package sampler

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ColumnOffsets returns the column indices center+o for o in
// [-(width-1), width-1] that fall inside [0, n).
func ColumnOffsets(center, width, n int) []int {
	cols := make([]int, 0, 2*width-1)
	for o := -(width - 1); o <= width-1; o++ {
		j := center + o
		if j < 0 || j >= n {
			continue
		}
		cols = append(cols, j)
	}
	return cols
}

// MeanColumns averages the selected columns of m, giving one value per row.
func MeanColumns(m mat.Matrix, cols []int) []float64 {
	r, _ := m.Dims()
	out := make([]float64, r)
	if len(cols) == 0 {
		return out
	}
	col := make([]float64, r)
	for _, j := range cols {
		mat.Col(col, j, m)
		floats.Add(out, col)
	}
	floats.Scale(1/float64(len(cols)), out)
	return out
}

// Linspace returns n evenly spaced points over [lo, hi]. A single point is lo.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := floats.Span(make([]float64, n), lo, hi)
	out[n-1] = hi
	return out
}

// ZeroBorder sets the outer width rows and columns of m to zero. Widths at or
// beyond half a dimension clear the whole matrix. Applying it twice is the
// same as applying it once.
func ZeroBorder(m *mat.Dense, width int) {
	if m == nil || width <= 0 {
		return
	}
	r, c := m.Dims()
	for i := 0; i < width && i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, 0)
			m.Set(r-1-i, j, 0)
		}
	}
	for j := 0; j < width && j < c; j++ {
		for i := 0; i < r; i++ {
			m.Set(i, j, 0)
			m.Set(i, c-1-j, 0)
		}
	}
}

// foldMax updates acc element-wise with max(acc, v).
func foldMax(acc, v *mat.Dense) {
	acc.Apply(func(i, j int, a float64) float64 {
		return math.Max(a, v.At(i, j))
	}, acc)
}
