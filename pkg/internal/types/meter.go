package types

import "time"

const (
	MetricSamplesCollected     = "samples_collected_count"
	MetricSamplesSkipped       = "samples_skipped_count"
	MetricSeriesCompleted      = "series_completed_count"
	MetricNoDataCount          = "no_data_count"
	MetricErrorCount           = "error_count"
	MetricArtifactsWritten     = "artifacts_written_count"
	MetricArtifactBytes        = "artifact_bytes_total"
	MetricUploadsCount         = "uploads_count"
	MetricUploadBytes          = "upload_bytes_total"
	MetricComponentStartCount  = "component_start_count"
	MetricCurrentCpuPercentage = "current_cpu_percentage"
	MetricCurrentRamPercentage = "current_ram_percentage"
	MetricCurrentGoRoutines    = "current_go_routines_active"
)

// MetricInfo carries the state of a single metric.
type MetricInfo struct {
	Name           string
	DisplayAs      string
	Count          *uint64
	Percentage     float64
	PeakPercentage float64
	Timestamp      int64
}

// Meter aggregates counters fed by sensors and samples process resources.
type Meter interface {
	IncrementCount(metricName string)
	AddCount(metricName string, n uint64)
	GetMetricCount(metricName string) uint64
	SetMetricCount(metricName string, count uint64)
	SetMetricPercentage(name string, percentage float64)
	GetMetricPercentage(metricName string) float64
	GetMetricPeakPercentage(metricName string) float64
	GetMetricDisplayName(metricName string) string
	GetMetricNames() []string
	StartTimer(metricName string)
	StopTimer(metricName string) time.Duration
	SampleResources() error
	ReportData()
	ResetMetrics()
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
