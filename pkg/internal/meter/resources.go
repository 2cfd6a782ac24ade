package meter

import (
	"runtime"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// SampleResources records current CPU, RAM and goroutine usage. The CPU figure
// is averaged over the configured sample window, so the call blocks that long.
func (m *Meter) SampleResources() error {
	m.mu.Lock()
	window := m.cpuSampleWindow
	m.mu.Unlock()

	cpuPercentages, err := cpu.Percent(window, false)
	if err != nil {
		return err
	}
	if len(cpuPercentages) > 0 {
		m.SetMetricPercentage(types.MetricCurrentCpuPercentage, cpuPercentages[0])
	}

	memStats, err := mem.VirtualMemory()
	if err != nil {
		return err
	}
	m.SetMetricPercentage(types.MetricCurrentRamPercentage, memStats.UsedPercent)

	m.SetMetricCount(types.MetricCurrentGoRoutines, uint64(runtime.NumGoroutine()))
	return nil
}
