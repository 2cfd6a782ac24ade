package types

import "context"

// StepFunc is invoked synchronously by the engine at every sampling interval.
// A non-nil error aborts the advance and is returned from it.
type StepFunc func(t float64) error

// Engine is the boundary to the FDTD solver. Implementations own all physics;
// callers only reset, advance and read arrays.
type Engine interface {
	// Reset returns fields and time to t=0 keeping the structure.
	Reset() error
	// Time reports the current simulated time.
	Time() float64
	// Advance steps the fields until the given simulated time, calling fn
	// every interval of simulated time. It blocks until done.
	Advance(ctx context.Context, until, interval float64, fn StepFunc) error
	// ReadField exports a component over a region at the current time.
	ReadField(component FieldComponent, region Region) (Field, error)
}

// EngineFactory builds an engine for a configuration.
type EngineFactory func(cfg SimulationConfig) (Engine, error)
