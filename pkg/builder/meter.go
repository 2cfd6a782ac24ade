package builder

import (
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/meter"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

type Meter = types.Meter

// MetricName is a type alias for metric names used in the Meter.
type MetricName string

type MetricInfo = types.MetricInfo

// Here we re-export the constants from the types package
const (
	MetricSamplesCollected     MetricName = MetricName(types.MetricSamplesCollected)
	MetricSamplesSkipped       MetricName = MetricName(types.MetricSamplesSkipped)
	MetricSeriesCompleted      MetricName = MetricName(types.MetricSeriesCompleted)
	MetricNoDataCount          MetricName = MetricName(types.MetricNoDataCount)
	MetricErrorCount           MetricName = MetricName(types.MetricErrorCount)
	MetricArtifactsWritten     MetricName = MetricName(types.MetricArtifactsWritten)
	MetricArtifactBytes        MetricName = MetricName(types.MetricArtifactBytes)
	MetricUploadsCount         MetricName = MetricName(types.MetricUploadsCount)
	MetricUploadBytes          MetricName = MetricName(types.MetricUploadBytes)
	MetricComponentStartCount  MetricName = MetricName(types.MetricComponentStartCount)
	MetricCurrentCpuPercentage MetricName = MetricName(types.MetricCurrentCpuPercentage)
	MetricCurrentRamPercentage MetricName = MetricName(types.MetricCurrentRamPercentage)
	MetricCurrentGoRoutines    MetricName = MetricName(types.MetricCurrentGoRoutines)
)

// NewMeter creates a meter.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(options...)
}

// MeterWithLogger attaches loggers used by ReportData.
func MeterWithLogger(l ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(l...)
}

// MeterWithInitialMetricCount seeds a counter.
func MeterWithInitialMetricCount(name MetricName, count uint64) types.Option[types.Meter] {
	return meter.WithInitialMetricCount(string(name), count)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithCPUSampleWindow sets how long SampleResources measures CPU load.
func MeterWithCPUSampleWindow(d time.Duration) types.Option[types.Meter] {
	return meter.WithCPUSampleWindow(d)
}
