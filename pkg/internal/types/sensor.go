package types

// Sensor exposes callback hooks for pipeline telemetry.
type Sensor interface {
	RegisterOnStart(...func(c ComponentMetadata))
	RegisterOnSample(...func(c ComponentMetadata, t float64))
	RegisterOnSkip(...func(c ComponentMetadata, t float64))
	RegisterOnComplete(...func(c ComponentMetadata, samples int))
	RegisterOnNoData(...func(c ComponentMetadata))
	RegisterOnError(...func(c ComponentMetadata, err error))
	RegisterOnArtifactWritten(...func(c ComponentMetadata, path string, bytes int64))
	RegisterOnUpload(...func(c ComponentMetadata, key string, bytes int64))

	InvokeOnStart(c ComponentMetadata)
	InvokeOnSample(c ComponentMetadata, t float64)
	InvokeOnSkip(c ComponentMetadata, t float64)
	InvokeOnComplete(c ComponentMetadata, samples int)
	InvokeOnNoData(c ComponentMetadata)
	InvokeOnError(c ComponentMetadata, err error)
	InvokeOnArtifactWritten(c ComponentMetadata, path string, bytes int64)
	InvokeOnUpload(c ComponentMetadata, key string, bytes int64)

	ConnectLogger(...Logger)
	ConnectMeter(...Meter)
	GetMeters() []Meter
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
