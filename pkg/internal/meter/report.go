package meter

import (
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// ReportData logs one summary record with every non-zero counter, the resource
// percentages and the accumulated timers.
func (m *Meter) ReportData() {
	kv := []interface{}{
		"component", m.GetComponentMetadata(),
		"event", "ReportData",
		"result", "SUCCESS",
		"elapsed", time.Since(m.startedAt()).String(),
	}

	for _, name := range m.GetMetricNames() {
		switch name {
		case types.MetricCurrentCpuPercentage, types.MetricCurrentRamPercentage:
			kv = append(kv,
				name, m.GetMetricPercentage(name),
				name+"_peak", m.GetMetricPeakPercentage(name),
			)
		default:
			if count := m.GetMetricCount(name); count > 0 {
				kv = append(kv, name, count)
			}
		}
	}

	durations := m.snapshotDurations()
	for _, name := range sortedKeys(durations) {
		kv = append(kv, name+"_duration", durations[name].String())
	}

	m.NotifyLoggers(types.InfoLevel, "Run metrics", kv...)
}

func (m *Meter) startedAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}
