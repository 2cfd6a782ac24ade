// Package engine is a reference 2D TE finite-difference time-domain solver
// behind the types.Engine boundary.
//
// The grid is a Yee lattice carrying Ex, Ey and Hz in units where c = 1. An
// absorbing layer with a cubic conductivity grading lines the cell edges, the
// two bars of the configured material are rasterised into the permittivity
// and conductivity maps, and a continuous sine source drives the configured
// component.
package engine

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

const (
	defaultCourant = 0.5
	gradingOrder   = 3
)

// Engine is a single-threaded FDTD solver. It is safe for concurrent reads of
// Time but Advance and ReadField must not overlap.
type Engine struct {
	componentMetadata types.ComponentMetadata
	cfg               types.SimulationConfig

	nx, ny  int
	dx, dt  float64
	courant float64
	step    int

	ex, ey, hz []float64
	eps        []float64
	caE, cbE   []float64 // electric update coefficients
	daH, dbH   []float64 // magnetic update coefficients
	source     []int
	amplitude  float64

	loggers     []types.Logger
	loggersLock sync.Mutex
	mu          sync.Mutex
}

// New builds an engine for cfg. The configuration is validated first.
func New(cfg types.SimulationConfig, options ...types.Option[*Engine]) (*Engine, error) {
	if err := params.Validate(cfg); err != nil {
		return nil, err
	}
	bar, ok := LookupMaterial(cfg.Material)
	if !ok {
		return nil, &types.ConfigError{Field: "material", Reason: fmt.Sprintf("unknown material %q", cfg.Material)}
	}

	e := &Engine{
		componentMetadata: types.ComponentMetadata{ID: uuid.NewString(), Type: "FDTD_ENGINE"},
		cfg:               cfg,
		courant:           defaultCourant,
		amplitude:         1.0,
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.courant <= 0 || e.courant > 1/math.Sqrt2 {
		return nil, &types.ConfigError{Field: "courant", Reason: fmt.Sprintf("%g is outside the 2D stability limit", e.courant)}
	}

	e.dx = 1.0 / float64(cfg.Resolution)
	e.dt = e.courant * e.dx
	e.nx = int(math.Round(cfg.Cell.X * float64(cfg.Resolution)))
	e.ny = int(math.Round(cfg.Cell.Y * float64(cfg.Resolution)))
	if e.nx < 2 || e.ny < 2 {
		return nil, &types.ConfigError{Field: "cell", Reason: fmt.Sprintf("grid %dx%d is too small", e.nx, e.ny)}
	}

	e.buildStructure(bar)
	if err := e.placeSource(); err != nil {
		return nil, err
	}
	e.allocateFields()

	e.NotifyLoggers(types.DebugLevel, "Engine built",
		"component", e.componentMetadata,
		"event", "New",
		"result", "SUCCESS",
		"grid_x", e.nx,
		"grid_y", e.ny,
		"dt", e.dt,
		"antennas", params.HasAntennas(cfg),
	)
	return e, nil
}

// Factory adapts New to types.EngineFactory.
func Factory(options ...types.Option[*Engine]) types.EngineFactory {
	return func(cfg types.SimulationConfig) (types.Engine, error) {
		return New(cfg, options...)
	}
}

// WithCourant sets the Courant number dt/dx.
func WithCourant(c float64) types.Option[*Engine] {
	return func(e *Engine) {
		e.courant = c
	}
}

// WithSourceAmplitude scales the source term.
func WithSourceAmplitude(a float64) types.Option[*Engine] {
	return func(e *Engine) {
		e.amplitude = a
	}
}

// WithLogger attaches loggers to the engine.
func WithLogger(loggers ...types.Logger) types.Option[*Engine] {
	return func(e *Engine) {
		e.ConnectLogger(loggers...)
	}
}

// GridSize returns the number of cells along x and y.
func (e *Engine) GridSize() (int, int) {
	return e.nx, e.ny
}

// TimeStep returns dt.
func (e *Engine) TimeStep() float64 {
	return e.dt
}

// GetComponentMetadata returns the engine metadata.
func (e *Engine) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

// ConnectLogger attaches loggers.
func (e *Engine) ConnectLogger(loggers ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			e.loggers = append(e.loggers, l)
		}
	}
}

// NotifyLoggers fans a message out to attached loggers.
func (e *Engine) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	e.loggersLock.Lock()
	loggers := append([]types.Logger(nil), e.loggers...)
	e.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		}
	}
}

func (e *Engine) index(i, j int) int {
	return i*e.ny + j
}
