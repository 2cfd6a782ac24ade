package meter

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// GetComponentMetadata returns the meter metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.componentMetadata
}

// GetMetricCount returns the current count for a metric.
func (m *Meter) GetMetricCount(metricName string) uint64 {
	m.mu.Lock()
	counter, exists := m.counts[metricName]
	m.mu.Unlock()
	if !exists || counter == nil {
		return 0
	}
	return atomic.LoadUint64(counter)
}

// metricInfo returns a copy of the metric state, or false if unknown.
func (m *Meter) metricInfo(metricName string) (types.MetricInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.metrics[metricName]
	if !ok || info == nil {
		return types.MetricInfo{}, false
	}
	return *info, true
}

// GetMetricDisplayName returns the display label, falling back to the name.
func (m *Meter) GetMetricDisplayName(metricName string) string {
	if info, ok := m.metricInfo(metricName); ok && info.DisplayAs != "" {
		return info.DisplayAs
	}
	return metricName
}

// GetMetricNames returns metric names in registration order.
func (m *Meter) GetMetricNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.metricNames...)
}

// GetMetricPercentage returns the last recorded percentage.
func (m *Meter) GetMetricPercentage(metricName string) float64 {
	info, _ := m.metricInfo(metricName)
	return info.Percentage
}

// GetMetricPeakPercentage returns the highest percentage seen since reset.
func (m *Meter) GetMetricPeakPercentage(metricName string) float64 {
	info, _ := m.metricInfo(metricName)
	return info.PeakPercentage
}

// GetTimerDuration returns the accumulated duration of a stopped timer.
func (m *Meter) GetTimerDuration(metricName string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.durations[metricName]
}

// IsTimerRunning reports whether a metric timer is active.
func (m *Meter) IsTimerRunning(metricName string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, running := m.startTimes[metricName]
	return running
}

func (m *Meter) snapshotDurations() map[string]time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]time.Duration, len(m.durations))
	for k, v := range m.durations {
		out[k] = v
	}
	return out
}

func sortedKeys(in map[string]time.Duration) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
