package sensor

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

func (s *Sensor) snapshotMeters() []types.Meter {
	s.metersLock.Lock()
	meters := append([]types.Meter(nil), s.meters...)
	s.metersLock.Unlock()
	return meters
}

func (s *Sensor) incrementMeterCounters(metric string) {
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(metric)
	}
}

func (s *Sensor) addMeterCounters(metric string, n uint64) {
	for _, m := range s.snapshotMeters() {
		m.AddCount(metric, n)
	}
}

// decorateCallbacks appends the meter-feeding callbacks after user options so
// every registered meter sees the same event stream as the loggers.
func (s *Sensor) decorateCallbacks(options ...types.Option[types.Sensor]) []types.Option[types.Sensor] {
	return append(
		options,
		WithOnStartFunc(func(c types.ComponentMetadata) {
			s.incrementMeterCounters(types.MetricComponentStartCount)
		}),
		WithOnSampleFunc(func(c types.ComponentMetadata, t float64) {
			s.incrementMeterCounters(types.MetricSamplesCollected)
		}),
		WithOnSkipFunc(func(c types.ComponentMetadata, t float64) {
			s.incrementMeterCounters(types.MetricSamplesSkipped)
		}),
		WithOnCompleteFunc(func(c types.ComponentMetadata, samples int) {
			s.incrementMeterCounters(types.MetricSeriesCompleted)
		}),
		WithOnNoDataFunc(func(c types.ComponentMetadata) {
			s.incrementMeterCounters(types.MetricNoDataCount)
		}),
		WithOnErrorFunc(func(c types.ComponentMetadata, err error) {
			s.incrementMeterCounters(types.MetricErrorCount)
		}),
		WithOnArtifactWrittenFunc(func(c types.ComponentMetadata, path string, bytes int64) {
			s.incrementMeterCounters(types.MetricArtifactsWritten)
			if bytes > 0 {
				s.addMeterCounters(types.MetricArtifactBytes, uint64(bytes))
			}
		}),
		WithOnUploadFunc(func(c types.ComponentMetadata, key string, bytes int64) {
			s.incrementMeterCounters(types.MetricUploadsCount)
			if bytes > 0 {
				s.addMeterCounters(types.MetricUploadBytes, uint64(bytes))
			}
		}),
	)
}
