package meter

import (
	"sync/atomic"
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// IncrementCount increments a metric count.
func (m *Meter) IncrementCount(metricName string) {
	m.AddCount(metricName, 1)
}

// AddCount adds n to a metric count, registering the metric if needed.
func (m *Meter) AddCount(metricName string, n uint64) {
	counter := m.ensureCounter(metricName)
	if counter == nil {
		return
	}
	atomic.AddUint64(counter, n)
}

// SetMetricCount sets the count for a metric.
func (m *Meter) SetMetricCount(metricName string, count uint64) {
	counter := m.ensureCounter(metricName)
	if counter == nil {
		return
	}
	atomic.StoreUint64(counter, count)
}

// SetMetricPercentage records a percentage value and tracks its peak.
func (m *Meter) SetMetricPercentage(name string, percentage float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	info := m.registerMetricLocked(name, "")
	if info == nil {
		return
	}
	info.Percentage = percentage
	if percentage > info.PeakPercentage {
		info.PeakPercentage = percentage
	}
	info.Timestamp = time.Now().UnixNano()
}

// StartTimer marks the start of a timed section.
func (m *Meter) StartTimer(metricName string) {
	m.mu.Lock()
	m.startTimes[metricName] = time.Now()
	m.mu.Unlock()
}

// StopTimer ends a timed section and returns the elapsed duration. Stopping a
// timer that was never started returns zero.
func (m *Meter) StopTimer(metricName string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	start, ok := m.startTimes[metricName]
	if !ok {
		return 0
	}
	delete(m.startTimes, metricName)
	elapsed := time.Since(start)
	m.durations[metricName] += elapsed
	return elapsed
}

// ResetMetrics clears counters, percentages and timers.
func (m *Meter) ResetMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, counter := range m.counts {
		atomic.StoreUint64(counter, 0)
	}
	for _, info := range m.metrics {
		info.Percentage = 0
		info.PeakPercentage = 0
		info.Timestamp = 0
	}
	m.startTimes = make(map[string]time.Time)
	m.durations = make(map[string]time.Duration)
	m.startTime = time.Now()
}

// SetComponentMetadata sets the meter name and id.
func (m *Meter) SetComponentMetadata(name string, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
}

// SetCPUSampleWindow sets how long SampleResources averages CPU usage over.
func (m *Meter) SetCPUSampleWindow(d time.Duration) {
	m.mu.Lock()
	m.cpuSampleWindow = d
	m.mu.Unlock()
}
