package meter

import (
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// WithInitialMetricCount sets an initial count for a specific metric.
func WithInitialMetricCount(metricName string, count uint64) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetMetricCount(metricName, count)
	}
}

// WithComponentMetadata sets the component metadata for the Meter.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}

// WithLogger adds loggers to the Meter.
func WithLogger(loggers ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(loggers...)
	}
}

// WithCPUSampleWindow sets the averaging window used by SampleResources.
func WithCPUSampleWindow(d time.Duration) types.Option[types.Meter] {
	return func(m types.Meter) {
		if mm, ok := m.(*Meter); ok {
			mm.SetCPUSampleWindow(d)
		}
	}
}
