package sensor_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/meter"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sensor"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

func TestSensorCallbacks(t *testing.T) {
	var startCount, sampleCount, skipCount, completeCount, errorCount int64
	var lastSamples int64

	s := sensor.NewSensor(
		sensor.WithOnStartFunc(func(c types.ComponentMetadata) { atomic.AddInt64(&startCount, 1) }),
		sensor.WithOnSampleFunc(func(c types.ComponentMetadata, tm float64) { atomic.AddInt64(&sampleCount, 1) }),
		sensor.WithOnSkipFunc(func(c types.ComponentMetadata, tm float64) { atomic.AddInt64(&skipCount, 1) }),
		sensor.WithOnCompleteFunc(func(c types.ComponentMetadata, samples int) {
			atomic.AddInt64(&completeCount, 1)
			atomic.StoreInt64(&lastSamples, int64(samples))
		}),
		sensor.WithOnErrorFunc(func(c types.ComponentMetadata, err error) { atomic.AddInt64(&errorCount, 1) }),
	)

	c := types.ComponentMetadata{ID: "sampler", Type: "FIELD_SAMPLER"}
	s.InvokeOnStart(c)
	for i := 0; i < 5; i++ {
		s.InvokeOnSkip(c, float64(i))
	}
	for i := 0; i < 10; i++ {
		s.InvokeOnSample(c, float64(i))
	}
	s.InvokeOnComplete(c, 10)
	s.InvokeOnError(c, errors.New("boom"))

	if atomic.LoadInt64(&startCount) != 1 {
		t.Errorf("expected start to be called once, got %d", startCount)
	}
	if atomic.LoadInt64(&sampleCount) != 10 {
		t.Errorf("expected 10 samples, got %d", sampleCount)
	}
	if atomic.LoadInt64(&skipCount) != 5 {
		t.Errorf("expected 5 skips, got %d", skipCount)
	}
	if atomic.LoadInt64(&completeCount) != 1 || atomic.LoadInt64(&lastSamples) != 10 {
		t.Errorf("unexpected completion: count=%d samples=%d", completeCount, lastSamples)
	}
	if atomic.LoadInt64(&errorCount) != 1 {
		t.Errorf("expected error to be called once, got %d", errorCount)
	}
}

func TestSensorFeedsMeter(t *testing.T) {
	m := meter.NewMeter()
	s := sensor.NewSensor(sensor.WithMeter(m))

	c := types.ComponentMetadata{ID: "sink", Type: "NPZ_SINK"}
	s.InvokeOnStart(c)
	s.InvokeOnSample(c, 0.1)
	s.InvokeOnSample(c, 0.2)
	s.InvokeOnSkip(c, 0.0)
	s.InvokeOnNoData(c)
	s.InvokeOnArtifactWritten(c, "/tmp/a.npz", 100)
	s.InvokeOnArtifactWritten(c, "/tmp/b.npz", 50)
	s.InvokeOnUpload(c, "runs/a.npz", 100)

	cases := map[string]uint64{
		types.MetricComponentStartCount: 1,
		types.MetricSamplesCollected:    2,
		types.MetricSamplesSkipped:      1,
		types.MetricNoDataCount:         1,
		types.MetricArtifactsWritten:    2,
		types.MetricArtifactBytes:       150,
		types.MetricUploadsCount:        1,
		types.MetricUploadBytes:         100,
		types.MetricErrorCount:          0,
	}
	for name, want := range cases {
		if got := m.GetMetricCount(name); got != want {
			t.Errorf("%s: expected %d, got %d", name, want, got)
		}
	}
}

func TestSensorMetadata(t *testing.T) {
	s := sensor.NewSensor(sensor.WithComponentMetadata("probe", "id-1"))
	md := s.GetComponentMetadata()
	if md.Name != "probe" || md.ID != "id-1" || md.Type != "SENSOR" {
		t.Fatalf("unexpected metadata %+v", md)
	}
}

func TestConnectIgnoresNil(t *testing.T) {
	s := sensor.NewSensor()
	s.ConnectMeter(nil)
	s.ConnectLogger(nil)
	if len(s.GetMeters()) != 0 {
		t.Fatalf("expected no meters, got %d", len(s.GetMeters()))
	}
	s.InvokeOnSample(types.ComponentMetadata{}, 0)
	s.NotifyLoggers(types.InfoLevel, "no loggers attached")
}
