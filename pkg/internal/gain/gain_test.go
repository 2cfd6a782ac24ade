package gain

import (
	"errors"
	"math"
	"testing"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

func filled(r, c int, v float64) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(r, c, data)
}

func ramp(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(i + 1)
	}
	return mat.NewDense(r, c, data)
}

func TestGainOfIdenticalMaps(t *testing.T) {
	x := ramp(6, 7)
	g, err := NewEstimator().ComputeGain(x, x)
	if err != nil {
		t.Fatalf("ComputeGain: %v", err)
	}
	r, c := g.Linear.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(g.Linear.At(i, j)-1) > 1e-12 {
				t.Fatalf("expected gain 1 at (%d,%d), got %v", i, j, g.Linear.At(i, j))
			}
			if math.Abs(g.DB.At(i, j)) > 1e-9 {
				t.Fatalf("expected ~0 dB at (%d,%d), got %v", i, j, g.DB.At(i, j))
			}
		}
	}
}

func TestGainFourOverTwo(t *testing.T) {
	g, err := NewEstimator().ComputeGain(filled(3, 3, 4.0), filled(3, 3, 2.0))
	if err != nil {
		t.Fatalf("ComputeGain: %v", err)
	}
	if got := g.Linear.At(1, 1); got != 2.0 {
		t.Fatalf("expected gain 2.0, got %v", got)
	}
	if got := g.DB.At(1, 1); math.Abs(got-6.0206) > 1e-4 {
		t.Fatalf("expected ~6.0206 dB, got %v", got)
	}
	if g.P1 != 2.0 || g.P99 != 2.0 {
		t.Fatalf("constant map should give degenerate bounds, got %v %v", g.P1, g.P99)
	}
}

func TestGainClipsToPercentiles(t *testing.T) {
	with := ramp(10, 10)
	without := filled(10, 10, 1)
	g, err := NewEstimator().ComputeGain(with, without)
	if err != nil {
		t.Fatalf("ComputeGain: %v", err)
	}
	// values 1..100: h = 99*p/100
	if math.Abs(g.P1-1.99) > 1e-12 || math.Abs(g.P99-99.01) > 1e-12 {
		t.Fatalf("unexpected bounds p1=%v p99=%v", g.P1, g.P99)
	}

	r, c := g.Linear.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			raw := g.Raw.At(i, j)
			v := g.Linear.At(i, j)
			if v < g.P1 || v > g.P99 {
				t.Fatalf("clipped value %v outside [%v, %v]", v, g.P1, g.P99)
			}
			if raw >= g.P1 && raw <= g.P99 && v != raw {
				t.Fatalf("in-bound value changed: %v -> %v", raw, v)
			}
			db := g.DB.At(i, j)
			if db < g.DBLow-1e-12 || db > g.DBHigh+1e-12 {
				t.Fatalf("dB value %v outside [%v, %v]", db, g.DBLow, g.DBHigh)
			}
		}
	}
	if g.Linear.At(0, 0) != g.P1 || g.Linear.At(9, 9) != g.P99 {
		t.Fatal("extremes should be clipped to the bounds")
	}
}

func TestGainZeroDenominator(t *testing.T) {
	with := filled(2, 2, 3)
	without := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	g, err := NewEstimator().ComputeGain(with, without)
	if err != nil {
		t.Fatalf("ComputeGain: %v", err)
	}
	if g.Undefined != 1 {
		t.Fatalf("expected one undefined element, got %d", g.Undefined)
	}
	if !math.IsNaN(g.Linear.At(0, 1)) || !math.IsNaN(g.DB.At(0, 1)) {
		t.Fatal("undefined element should stay NaN")
	}
	if g.Linear.At(1, 1) != 3 {
		t.Fatalf("unexpected defined gain %v", g.Linear.At(1, 1))
	}
}

func TestGainAllUndefined(t *testing.T) {
	_, err := NewEstimator().ComputeGain(filled(2, 2, 1), filled(2, 2, 0))
	if !errors.Is(err, types.ErrNoFiniteGain) {
		t.Fatalf("expected ErrNoFiniteGain, got %v", err)
	}
}

func TestGainShapeMismatch(t *testing.T) {
	_, err := NewEstimator().ComputeGain(filled(2, 3, 1), filled(3, 2, 1))
	if !errors.Is(err, types.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := NewEstimator().ComputeGain(nil, filled(1, 1, 1)); !errors.Is(err, types.ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got %v", err)
	}
}

func TestPercentileMatchesLinearInterpolation(t *testing.T) {
	cases := []struct {
		values []float64
		p      float64
		want   float64
	}{
		{[]float64{1, 2, 3, 4}, 50, 2.5},
		{[]float64{4, 1, 3, 2}, 0, 1},
		{[]float64{4, 1, 3, 2}, 100, 4},
		{[]float64{10}, 99, 10},
		{[]float64{1, math.NaN(), 3}, 50, 2},
		{[]float64{0, 10}, 1, 0.1},
	}
	for _, tc := range cases {
		got, err := Percentile(tc.values, tc.p)
		if err != nil {
			t.Fatalf("Percentile(%v, %v): %v", tc.values, tc.p, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Percentile(%v, %v) = %v, want %v", tc.values, tc.p, got, tc.want)
		}
	}
}

func TestPercentileErrors(t *testing.T) {
	if _, err := Percentile(nil, 50); !errors.Is(err, types.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := Percentile([]float64{1}, 101); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestClipKeepsNaN(t *testing.T) {
	m := mat.NewDense(1, 4, []float64{-1, 0.5, 2, math.NaN()})
	out := Clip(m, 0, 1)
	if out.At(0, 0) != 0 || out.At(0, 1) != 0.5 || out.At(0, 2) != 1 || !math.IsNaN(out.At(0, 3)) {
		t.Fatalf("unexpected clip result %v", mat.Formatted(out))
	}
	if m.At(0, 0) != -1 {
		t.Fatal("input was modified")
	}
}

func TestCustomPercentiles(t *testing.T) {
	e := NewEstimator(WithPercentiles(0, 100))
	g, err := e.ComputeGain(ramp(2, 5), filled(2, 5, 1))
	if err != nil {
		t.Fatalf("ComputeGain: %v", err)
	}
	if g.P1 != 1 || g.P99 != 10 {
		t.Fatalf("expected full range bounds, got %v %v", g.P1, g.P99)
	}

	if _, err := NewEstimator(WithPercentiles(60, 40)).ComputeGain(ramp(2, 2), filled(2, 2, 1)); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
