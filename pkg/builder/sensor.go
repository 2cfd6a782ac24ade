package builder

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sensor"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

type Sensor = types.Sensor

// NewSensor creates a sensor; attached meters count every event.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithMeter feeds sensor events into meters.
func SensorWithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return sensor.WithMeter(meter...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SensorWithOnStartFunc registers a callback for the OnStart event.
func SensorWithOnStartFunc(callback ...func(c ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnStartFunc(callback...)
}

// SensorWithOnSampleFunc registers a callback for every collected sample.
func SensorWithOnSampleFunc(callback ...func(c ComponentMetadata, t float64)) types.Option[types.Sensor] {
	return sensor.WithOnSampleFunc(callback...)
}

// SensorWithOnSkipFunc registers a callback for samples inside the skip window.
func SensorWithOnSkipFunc(callback ...func(c ComponentMetadata, t float64)) types.Option[types.Sensor] {
	return sensor.WithOnSkipFunc(callback...)
}

// SensorWithOnCompleteFunc registers a callback for the OnComplete event.
func SensorWithOnCompleteFunc(callback ...func(c ComponentMetadata, samples int)) types.Option[types.Sensor] {
	return sensor.WithOnCompleteFunc(callback...)
}

// SensorWithOnNoDataFunc registers a callback for windows without samples.
func SensorWithOnNoDataFunc(callback ...func(c ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnNoDataFunc(callback...)
}

// SensorWithOnErrorFunc registers a callback for the OnError event.
func SensorWithOnErrorFunc(callback ...func(c ComponentMetadata, err error)) types.Option[types.Sensor] {
	return sensor.WithOnErrorFunc(callback...)
}

// SensorWithOnArtifactWrittenFunc registers a callback for every written file.
func SensorWithOnArtifactWrittenFunc(callback ...func(c ComponentMetadata, path string, bytes int64)) types.Option[types.Sensor] {
	return sensor.WithOnArtifactWrittenFunc(callback...)
}

// SensorWithOnUploadFunc registers a callback for every uploaded object.
func SensorWithOnUploadFunc(callback ...func(c ComponentMetadata, key string, bytes int64)) types.Option[types.Sensor] {
	return sensor.WithOnUploadFunc(callback...)
}
