package sampler

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// WithLogger attaches loggers to the sampler.
func WithLogger(loggers ...types.Logger) types.Option[types.FieldSampler] {
	return func(s types.FieldSampler) {
		s.ConnectLogger(loggers...)
	}
}

// WithSensor attaches sensors to the sampler.
func WithSensor(sensors ...types.Sensor) types.Option[types.FieldSampler] {
	return func(s types.FieldSampler) {
		s.ConnectSensor(sensors...)
	}
}

// WithComponentMetadata sets the sampler name and id.
func WithComponentMetadata(name string, id string) types.Option[types.FieldSampler] {
	return func(s types.FieldSampler) {
		s.SetComponentMetadata(name, id)
	}
}
