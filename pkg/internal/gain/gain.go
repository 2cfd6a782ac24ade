// Package gain derives the field-enhancement map from two running-maximum
// maps and clips it to robust percentile bounds.
package gain

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// Epsilon keeps the dB transform finite for zero gain.
	Epsilon = 1e-12

	DefaultLowPercentile  = 1.0
	DefaultHighPercentile = 99.0
)

// Estimator computes gain maps.
type Estimator struct {
	componentMetadata types.ComponentMetadata
	lowPercentile     float64
	highPercentile    float64

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewEstimator constructs an Estimator with the 1st/99th percentile bounds.
func NewEstimator(options ...types.Option[*Estimator]) *Estimator {
	e := &Estimator{
		componentMetadata: types.ComponentMetadata{ID: uuid.NewString(), Type: "GAIN_ESTIMATOR"},
		lowPercentile:     DefaultLowPercentile,
		highPercentile:    DefaultHighPercentile,
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithPercentiles overrides the clipping percentiles.
func WithPercentiles(low, high float64) types.Option[*Estimator] {
	return func(e *Estimator) {
		e.lowPercentile = low
		e.highPercentile = high
	}
}

// WithLogger attaches loggers.
func WithLogger(loggers ...types.Logger) types.Option[*Estimator] {
	return func(e *Estimator) {
		e.ConnectLogger(loggers...)
	}
}

// ConnectLogger attaches loggers.
func (e *Estimator) ConnectLogger(loggers ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			e.loggers = append(e.loggers, l)
		}
	}
}

// GetComponentMetadata returns the estimator metadata.
func (e *Estimator) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

// ComputeGain returns with/without element-wise, its dB form and both clipped
// to the estimator's percentile bounds. Elements with a zero denominator are
// NaN in every output and excluded from the percentiles.
func (e *Estimator) ComputeGain(with, without *mat.Dense) (*types.GainMap, error) {
	if with == nil || without == nil {
		return nil, &types.ShapeError{Op: "gain", Unexpected: true}
	}
	if e.lowPercentile > e.highPercentile {
		return nil, &types.ConfigError{Field: "percentiles", Reason: fmt.Sprintf("low %g above high %g", e.lowPercentile, e.highPercentile)}
	}
	wr, wc := with.Dims()
	nr, nc := without.Dims()
	if wr != nr || wc != nc {
		return nil, &types.ShapeError{Op: "gain", WantRows: wr, WantCols: wc, GotRows: nr, GotCols: nc}
	}

	raw := mat.NewDense(wr, wc, nil)
	undefined := 0
	finite := make([]float64, 0, wr*wc)
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			den := without.At(i, j)
			if den == 0 {
				raw.Set(i, j, math.NaN())
				undefined++
				continue
			}
			g := with.At(i, j) / den
			raw.Set(i, j, g)
			if !math.IsNaN(g) && !math.IsInf(g, 0) {
				finite = append(finite, g)
			}
		}
	}
	if len(finite) == 0 {
		e.NotifyLoggers(types.WarnLevel, "Gain map has no defined elements",
			"component", e.componentMetadata,
			"event", "ComputeGain",
			"result", "FAILURE",
			"undefined", undefined,
		)
		return nil, fmt.Errorf("gain %dx%d: %w", wr, wc, types.ErrNoFiniteGain)
	}

	p1, err := Percentile(finite, e.lowPercentile)
	if err != nil {
		return nil, err
	}
	p99, err := Percentile(finite, e.highPercentile)
	if err != nil {
		return nil, err
	}

	dbLow, dbHigh := ToDB(p1), ToDB(p99)
	db := mat.NewDense(wr, wc, nil)
	db.Apply(func(_, _ int, g float64) float64 { return ToDB(g) }, raw)

	out := &types.GainMap{
		Raw:       raw,
		Linear:    Clip(raw, p1, p99),
		DB:        Clip(db, dbLow, dbHigh),
		P1:        p1,
		P99:       p99,
		DBLow:     dbLow,
		DBHigh:    dbHigh,
		Undefined: undefined,
	}

	if undefined > 0 {
		e.NotifyLoggers(types.WarnLevel, "Gain undefined where the reference field is zero",
			"component", e.componentMetadata,
			"event", "ComputeGain",
			"result", "PARTIAL",
			"undefined", undefined,
			"total", wr*wc,
		)
	}
	clipped := definedValues(out.Linear)
	e.NotifyLoggers(types.InfoLevel, "Gain computed",
		"component", e.componentMetadata,
		"event", "ComputeGain",
		"result", "SUCCESS",
		"p_low", p1,
		"p_high", p99,
		"db_low", dbLow,
		"db_high", dbHigh,
		"mean_gain", stat.Mean(clipped, nil),
		"max_gain", floats.Max(clipped),
	)
	return out, nil
}

// ToDB maps a linear field ratio to decibels.
func ToDB(g float64) float64 {
	return 20 * math.Log10(g+Epsilon)
}

// Clip returns a copy of m with every element clamped into [lo, hi]. NaN
// elements stay NaN.
func Clip(m *mat.Dense, lo, hi float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		return math.Max(lo, math.Min(hi, v))
	}, m)
	return out
}

func definedValues(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); !math.IsNaN(v) {
				out = append(out, v)
			}
		}
	}
	return out
}
