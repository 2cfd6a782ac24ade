package types

import "context"

// FieldSampler drives an engine through a sampling window and reduces the
// exported fields to a line-profile series or a running-maximum map.
type FieldSampler interface {
	CollectLineProfile(ctx context.Context, handle Engine, cfg SimulationConfig, width int, until float64) (*LineProfileSeries, error)
	CollectRunningMax(ctx context.Context, handle Engine, cfg SimulationConfig, skipFraction float64) (*MaxFieldMap, error)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
