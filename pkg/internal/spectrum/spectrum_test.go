package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

func sineSeries(n int, interval, freq float64, points int) *types.LineProfileSeries {
	s := &types.LineProfileSeries{XCoords: make([]float64, points)}
	for i := 0; i < n; i++ {
		t := float64(i+1) * interval
		line := make([]float64, points)
		for j := range line {
			line[j] = 0.5 + math.Sin(2*math.Pi*freq*t)
		}
		s.Times = append(s.Times, t)
		s.Lines = append(s.Lines, line)
	}
	return s
}

func TestAnalyzeFindsDriveFrequency(t *testing.T) {
	s, err := Analyze(sineSeries(100, 0.1, 1.0, 5), 0.1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if s.Probe != 2 {
		t.Fatalf("expected centre probe 2, got %d", s.Probe)
	}
	if len(s.Power) != 50 || len(s.Freqs) != 50 {
		t.Fatalf("unexpected spectrum length %d", len(s.Power))
	}
	if math.Abs(s.Dominant-1.0) > 1e-9 {
		t.Fatalf("expected dominant frequency 1.0, got %v", s.Dominant)
	}
	if s.Power[0] > 1e-12 {
		t.Fatalf("mean should be removed, DC power %v", s.Power[0])
	}
	if s.SNR <= 0 {
		t.Fatalf("expected a clean tone, SNR %v", s.SNR)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(&types.LineProfileSeries{}, 0.1); !errors.Is(err, types.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := Analyze(sineSeries(4, 0.1, 1, 3), 0); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestTraceUsesImaginaryPart(t *testing.T) {
	s := &types.LineProfileSeries{
		Times:   []float64{0.1},
		Lines:   [][]float64{{1, 2}},
		Imag:    [][]float64{{3, 4}},
		XCoords: []float64{0, 1},
	}
	tr, err := Trace(s, 1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if tr[0] != complex(2, 4) {
		t.Fatalf("unexpected sample %v", tr[0])
	}
	if _, err := Trace(s, 2); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSingleSample(t *testing.T) {
	s, err := Analyze(sineSeries(1, 0.1, 1, 1), 0.1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(s.Power) != 1 || s.Dominant != 0 {
		t.Fatalf("unexpected single-sample spectrum %+v", s)
	}
}
