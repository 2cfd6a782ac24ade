package builder

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	in := bytes.Repeat([]byte("gain"), 64)
	packed, err := Compress(in, "brotli")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	out, err := Decompress(packed, "brotli")
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("round trip mismatch")
	}
}

func TestAnalyzeLineProfile(t *testing.T) {
	s := &LineProfileSeries{XCoords: []float64{0}}
	for i := 0; i < 64; i++ {
		tm := float64(i) * 0.25
		s.Times = append(s.Times, tm)
		s.Lines = append(s.Lines, []float64{math.Cos(2 * math.Pi * 0.5 * tm)})
	}
	ps, err := AnalyzeLineProfile(s, 0.25)
	if err != nil {
		t.Fatalf("AnalyzeLineProfile: %v", err)
	}
	if math.Abs(ps.Dominant-0.5) > 1e-9 {
		t.Fatalf("expected 0.5, got %v", ps.Dominant)
	}
	if _, err := AnalyzeLineProfile(&LineProfileSeries{}, 0.25); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestNewLoggerFromConfigFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	l, err := NewLoggerFromConfig(LogConfig{Level: "debug", File: path}, "run-1", "split_bar")
	if err != nil {
		t.Fatalf("NewLoggerFromConfig: %v", err)
	}
	l.Info("hello", "event", "Test")
	_ = l.Flush()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{`"run_id":"run-1"`, `"sim_name":"split_bar"`, `"msg":"hello"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Fatalf("log line missing %s: %s", want, data)
		}
	}
}

func TestTaskRunnerFacade(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Output.PathToSave = dir
	cfg.Simulation.Resolution = 10
	cfg.Simulation.SimTime = 1
	cfg.Simulation.RunTime = 1
	cfg.Simulation.SamplingInterval = 0.1

	m := NewMeter()
	r := NewTaskRunner(NewEngineFactory(),
		TaskRunnerWithSensor(NewSensor(SensorWithMeter(m))),
		TaskRunnerWithLineProfileName("probe"),
	)
	names, err := ParseTaskNames("line_profile")
	if err != nil {
		t.Fatalf("ParseTaskNames: %v", err)
	}
	results, _ := r.Run(context.Background(), cfg, names...)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("unexpected results %+v", results)
	}
	if _, err := os.Stat(filepath.Join(dir, "data_E_line_probe.npz")); err != nil {
		t.Fatalf("expected bundle: %v", err)
	}
	if m.GetMetricCount(string(MetricSamplesCollected)) != 10 {
		t.Fatalf("expected 10 samples, got %d", m.GetMetricCount(string(MetricSamplesCollected)))
	}
}
