package types

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LineProfileSeries is the time series of line-averaged field values.
// XCoords is computed once and shared by every line in the series.
type LineProfileSeries struct {
	Times   []float64
	Lines   [][]float64
	Imag    [][]float64 // parallel to Lines, only for complex fields
	XCoords []float64
	Width   int
}

// Len returns the number of samples.
func (s *LineProfileSeries) Len() int {
	return len(s.Lines)
}

// Validate checks that every line matches the coordinate axis.
func (s *LineProfileSeries) Validate() error {
	if len(s.Times) != len(s.Lines) {
		return fmt.Errorf("line profile: %d times for %d lines: %w", len(s.Times), len(s.Lines), ErrShapeMismatch)
	}
	for i, line := range s.Lines {
		if len(line) != len(s.XCoords) {
			return &ShapeError{Op: fmt.Sprintf("line profile sample %d", i), WantRows: len(s.XCoords), WantCols: 1, GotRows: len(line), GotCols: 1}
		}
	}
	return nil
}

// Matrix packs the lines into a T x N matrix (one row per sample).
func (s *LineProfileSeries) Matrix() *mat.Dense {
	if len(s.Lines) == 0 {
		return nil
	}
	n := len(s.Lines[0])
	data := make([]float64, 0, len(s.Lines)*n)
	for _, line := range s.Lines {
		data = append(data, line...)
	}
	return mat.NewDense(len(s.Lines), n, data)
}

// MaxFieldMap is the pointwise running maximum of |field| over the sampled window.
type MaxFieldMap struct {
	Data        *mat.Dense
	Samples     int
	Skipped     int
	SkipTime    float64
	BorderWidth int
}

// GainMap is the clipped field enhancement derived from two max-field maps.
type GainMap struct {
	Linear    *mat.Dense // clipped linear gain
	DB        *mat.Dense // clipped gain in dB
	Raw       *mat.Dense // unclipped linear gain, NaN where undefined
	P1, P99   float64    // linear percentile bounds
	DBLow     float64    // dB bounds derived from P1 and P99
	DBHigh    float64
	Undefined int // elements with a zero denominator
}
