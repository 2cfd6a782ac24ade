package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

func (e *Engine) allocateFields() {
	n := e.nx * e.ny
	e.ex = make([]float64, n)
	e.ey = make([]float64, n)
	e.hz = make([]float64, n)
}

// Reset zeroes every field and rewinds time to 0. The structure is kept.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k := range e.ex {
		e.ex[k], e.ey[k], e.hz[k] = 0, 0, 0
	}
	e.step = 0
	return nil
}

// Time reports the current simulated time.
func (e *Engine) Time() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return float64(e.step) * e.dt
}

// Advance steps the fields until the simulated time reaches until, calling fn
// after every interval of simulated time measured from the current time. The
// last callback lands on until when until is a multiple of interval. A nil fn
// only advances. The interval may not be shorter than the time step, so
// every callback sees a distinct time.
func (e *Engine) Advance(ctx context.Context, until, interval float64, fn types.StepFunc) error {
	if interval <= 0 {
		return &types.ConfigError{Field: "interval", Reason: fmt.Sprintf("must be positive, got %g", interval)}
	}
	if interval < e.dt*(1-1e-9) {
		return &types.ConfigError{Field: "interval", Reason: fmt.Sprintf("%g is shorter than the time step %g", interval, e.dt)}
	}
	start := e.Time()
	if until < start {
		return &types.ConfigError{Field: "until", Reason: fmt.Sprintf("%g is before the current time %g", until, start)}
	}

	finalStep := int(math.Round(until / e.dt))
	for k := 1; ; k++ {
		target := start + float64(k)*interval
		if target > until+e.dt/2 {
			break
		}
		if err := e.stepTo(ctx, int(math.Round(target/e.dt))); err != nil {
			return err
		}
		if fn != nil {
			if err := fn(e.Time()); err != nil {
				return err
			}
		}
	}
	return e.stepTo(ctx, finalStep)
}

func (e *Engine) stepTo(ctx context.Context, target int) error {
	for {
		e.mu.Lock()
		done := e.step >= target
		e.mu.Unlock()
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.stepOnce()
	}
}

// stepOnce performs one leapfrog update: H at half step, then E, then the
// source term at the new time.
func (e *Engine) stepOnce() {
	e.mu.Lock()
	defer e.mu.Unlock()

	nx, ny := e.nx, e.ny
	for i := 0; i < nx-1; i++ {
		for j := 0; j < ny-1; j++ {
			k := i*ny + j
			curl := (e.ey[k+ny] - e.ey[k]) - (e.ex[k+1] - e.ex[k])
			e.hz[k] = e.daH[k]*e.hz[k] - e.dbH[k]*curl
		}
	}

	for i := 0; i < nx; i++ {
		for j := 1; j < ny; j++ {
			k := i*ny + j
			e.ex[k] = e.caE[k]*e.ex[k] + e.cbE[k]*(e.hz[k]-e.hz[k-1])
		}
	}
	for i := 1; i < nx; i++ {
		for j := 0; j < ny; j++ {
			k := i*ny + j
			e.ey[k] = e.caE[k]*e.ey[k] - e.cbE[k]*(e.hz[k]-e.hz[k-ny])
		}
	}

	e.step++
	t := float64(e.step) * e.dt
	drive := e.amplitude * math.Sin(2*math.Pi*e.cfg.Freq*t) * e.dt
	var target []float64
	switch e.cfg.Component {
	case types.ComponentEx:
		target = e.ex
	case types.ComponentHz:
		target = e.hz
	default:
		target = e.ey
	}
	for _, k := range e.source {
		target[k] += drive / e.eps[k]
	}
}
