// Package sensor provides options for configuring Sensor components.
//
// Sensors are attached to samplers and sinks. Options add loggers and meters
// or register callbacks for individual events such as OnSample or OnError.
package sensor

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// WithLogger creates an option to add loggers to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithMeter creates an option to attach meters to a Sensor.
//
// Every callback fired on the sensor increments the matching counter on each
// attached meter.
func WithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectMeter(meter...)
	}
}

// WithOnStartFunc registers callbacks for the OnStart event.
func WithOnStartFunc(callback ...func(c types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStart(callback...)
	}
}

// WithOnSampleFunc registers callbacks for the OnSample event. The float
// argument is the simulation time of the sample.
func WithOnSampleFunc(callback ...func(c types.ComponentMetadata, t float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSample(callback...)
	}
}

// WithOnSkipFunc registers callbacks for the OnSkip event.
func WithOnSkipFunc(callback ...func(c types.ComponentMetadata, t float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSkip(callback...)
	}
}

// WithOnCompleteFunc registers callbacks for the OnComplete event.
func WithOnCompleteFunc(callback ...func(c types.ComponentMetadata, samples int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnComplete(callback...)
	}
}

// WithOnNoDataFunc registers callbacks for the OnNoData event.
func WithOnNoDataFunc(callback ...func(c types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnNoData(callback...)
	}
}

// WithOnErrorFunc registers callbacks for the OnError event.
func WithOnErrorFunc(callback ...func(c types.ComponentMetadata, err error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnError(callback...)
	}
}

// WithOnArtifactWrittenFunc registers callbacks for the OnArtifactWritten event.
func WithOnArtifactWrittenFunc(callback ...func(c types.ComponentMetadata, path string, bytes int64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnArtifactWritten(callback...)
	}
}

// WithOnUploadFunc registers callbacks for the OnUpload event.
func WithOnUploadFunc(callback ...func(c types.ComponentMetadata, key string, bytes int64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnUpload(callback...)
	}
}

// WithComponentMetadata sets the sensor name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.SetComponentMetadata(name, id)
	}
}
