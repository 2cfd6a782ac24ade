package meter

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Meter aggregates sensor counters and process resource samples for a run.
type Meter struct {
	componentMetadata types.ComponentMetadata
	counts            map[string]*uint64
	metrics           map[string]*types.MetricInfo
	metricNames       []string
	startTimes        map[string]time.Time
	durations         map[string]time.Duration
	startTime         time.Time
	mu                sync.Mutex

	loggers   []types.Logger
	loggersMu sync.Mutex

	cpuSampleWindow time.Duration
}

// NewMeter constructs a Meter with the standard metric set registered.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   uuid.NewString(),
			Type: "METER",
		},
		counts:          make(map[string]*uint64),
		metrics:         make(map[string]*types.MetricInfo),
		startTimes:      make(map[string]time.Time),
		durations:       make(map[string]time.Duration),
		startTime:       time.Now(),
		cpuSampleWindow: 200 * time.Millisecond,
	}

	m.initializeMetrics()

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

var metricDisplayNames = map[string]string{
	types.MetricComponentStartCount:  "Components Started",
	types.MetricSamplesCollected:     "Samples Collected",
	types.MetricSamplesSkipped:       "Samples Skipped",
	types.MetricSeriesCompleted:      "Series Completed",
	types.MetricNoDataCount:          "Empty Collections",
	types.MetricErrorCount:           "Errors",
	types.MetricArtifactsWritten:     "Artifacts Written",
	types.MetricArtifactBytes:        "Artifact Bytes",
	types.MetricUploadsCount:         "Uploads",
	types.MetricUploadBytes:          "Upload Bytes",
	types.MetricCurrentCpuPercentage: "CPU",
	types.MetricCurrentRamPercentage: "RAM",
	types.MetricCurrentGoRoutines:    "Go Routines",
}

var defaultMetricNames = []string{
	types.MetricComponentStartCount,
	types.MetricSamplesCollected,
	types.MetricSamplesSkipped,
	types.MetricSeriesCompleted,
	types.MetricNoDataCount,
	types.MetricErrorCount,
	types.MetricArtifactsWritten,
	types.MetricArtifactBytes,
	types.MetricUploadsCount,
	types.MetricUploadBytes,
	types.MetricCurrentCpuPercentage,
	types.MetricCurrentRamPercentage,
	types.MetricCurrentGoRoutines,
}

func (m *Meter) initializeMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range defaultMetricNames {
		m.registerMetricLocked(name, metricDisplayNames[name])
	}
}

func (m *Meter) registerMetricLocked(name string, display string) *types.MetricInfo {
	if name == "" {
		return nil
	}
	if info, ok := m.metrics[name]; ok {
		if display != "" {
			info.DisplayAs = display
		}
		return info
	}
	counter, ok := m.counts[name]
	if !ok {
		counter = new(uint64)
		m.counts[name] = counter
	}
	info := &types.MetricInfo{Name: name, DisplayAs: display, Count: counter}
	m.metrics[name] = info
	m.metricNames = append(m.metricNames, name)
	return info
}

func (m *Meter) ensureCounter(name string) *uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	info := m.registerMetricLocked(name, "")
	if info == nil {
		return nil
	}
	return info.Count
}
