package tasks

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/gain"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// WithLogger attaches loggers to the runner and the components it creates.
func WithLogger(loggers ...types.Logger) types.Option[*Runner] {
	return func(r *Runner) {
		r.ConnectLogger(loggers...)
	}
}

// WithSensor attaches sensors to the runner and the components it creates.
func WithSensor(sensors ...types.Sensor) types.Option[*Runner] {
	return func(r *Runner) {
		r.ConnectSensor(sensors...)
	}
}

// WithMeter times every task and reports after Run.
func WithMeter(m types.Meter) types.Option[*Runner] {
	return func(r *Runner) {
		r.meter = m
	}
}

// WithSampler replaces the default field sampler.
func WithSampler(s types.FieldSampler) types.Option[*Runner] {
	return func(r *Runner) {
		r.sampler = s
	}
}

// WithEstimator replaces the default gain estimator.
func WithEstimator(e *gain.Estimator) types.Option[*Runner] {
	return func(r *Runner) {
		r.estimator = e
	}
}

// WithSinkFactory replaces sink.New.
func WithSinkFactory(f SinkFactory) types.Option[*Runner] {
	return func(r *Runner) {
		if f != nil {
			r.newSink = f
		}
	}
}

// WithUploader uploads every file a successful task writes.
func WithUploader(u Uploader) types.Option[*Runner] {
	return func(r *Runner) {
		r.uploader = u
	}
}

// WithResetFunc replaces params.Reset for the enhancement task.
func WithResetFunc(f func(params.Config) params.Config) types.Option[*Runner] {
	return func(r *Runner) {
		if f != nil {
			r.reset = f
		}
	}
}

// WithLineProfileName sets the suffix of the line-profile bundle.
func WithLineProfileName(name string) types.Option[*Runner] {
	return func(r *Runner) {
		if name != "" {
			r.lineProfileName = name
		}
	}
}

// WithComponentMetadata sets the runner name and id.
func WithComponentMetadata(name string, id string) types.Option[*Runner] {
	return func(r *Runner) {
		r.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: r.componentMetadata.Type}
	}
}
