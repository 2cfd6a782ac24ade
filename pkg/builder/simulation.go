package builder

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/engine"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/gain"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sampler"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// FDTDEngine is the bundled 2D reference engine.
type FDTDEngine = engine.Engine

// GainEstimator turns two max-field maps into a clipped gain map.
type GainEstimator = gain.Estimator

// NewEngine builds the reference engine for one configuration.
func NewEngine(cfg SimulationConfig, options ...types.Option[*engine.Engine]) (*engine.Engine, error) {
	return engine.New(cfg, options...)
}

// NewEngineFactory returns a factory that builds reference engines.
func NewEngineFactory(options ...types.Option[*engine.Engine]) types.EngineFactory {
	return engine.Factory(options...)
}

// EngineWithLogger attaches loggers to the engine.
func EngineWithLogger(l ...types.Logger) types.Option[*engine.Engine] {
	return engine.WithLogger(l...)
}

// EngineWithCourant overrides the Courant number.
func EngineWithCourant(c float64) types.Option[*engine.Engine] {
	return engine.WithCourant(c)
}

// EngineWithSourceAmplitude scales the source.
func EngineWithSourceAmplitude(a float64) types.Option[*engine.Engine] {
	return engine.WithSourceAmplitude(a)
}

// NewFieldSampler creates a sampler.
func NewFieldSampler(options ...types.Option[types.FieldSampler]) types.FieldSampler {
	return sampler.NewFieldSampler(options...)
}

// FieldSamplerWithLogger attaches loggers to the sampler.
func FieldSamplerWithLogger(l ...types.Logger) types.Option[types.FieldSampler] {
	return sampler.WithLogger(l...)
}

// FieldSamplerWithSensor attaches sensors to the sampler.
func FieldSamplerWithSensor(s ...types.Sensor) types.Option[types.FieldSampler] {
	return sampler.WithSensor(s...)
}

// FieldSamplerWithComponentMetadata adds component metadata overrides.
func FieldSamplerWithComponentMetadata(name string, id string) types.Option[types.FieldSampler] {
	return sampler.WithComponentMetadata(name, id)
}

// NewGainEstimator creates a gain estimator clipping at the 1st and 99th
// percentiles unless overridden.
func NewGainEstimator(options ...types.Option[*gain.Estimator]) *gain.Estimator {
	return gain.NewEstimator(options...)
}

// GainEstimatorWithLogger attaches loggers to the estimator.
func GainEstimatorWithLogger(l ...types.Logger) types.Option[*gain.Estimator] {
	return gain.WithLogger(l...)
}

// GainEstimatorWithPercentiles overrides the clipping percentiles.
func GainEstimatorWithPercentiles(low, high float64) types.Option[*gain.Estimator] {
	return gain.WithPercentiles(low, high)
}
