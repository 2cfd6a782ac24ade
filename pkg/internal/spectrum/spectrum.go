// Package spectrum estimates the frequency content of a sampled line profile.
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spectrum is the one-sided power spectrum of one probe trace.
type Spectrum struct {
	Probe      int       // x index of the trace
	Power      []float64 // |X_k|^2 for k < n/2
	Freqs      []float64 // k / (n * interval)
	Dominant   float64   // frequency of the strongest non-DC bin
	TotalPower float64
	SNR        float64 // dominant bin against the rest, in dB
}

// Trace extracts the time trace at x index probe. Complex series yield
// complex samples.
func Trace(series *types.LineProfileSeries, probe int) ([]complex128, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("spectrum: %w", types.ErrNoData)
	}
	if probe < 0 || probe >= len(series.XCoords) {
		return nil, &types.ConfigError{Field: "probe", Reason: fmt.Sprintf("index %d outside [0, %d)", probe, len(series.XCoords))}
	}
	out := make([]complex128, series.Len())
	for i, line := range series.Lines {
		im := 0.0
		if i < len(series.Imag) {
			im = series.Imag[i][probe]
		}
		out[i] = complex(line[probe], im)
	}
	return out, nil
}

// Analyze runs an FFT over the trace at the centre of the x axis. The mean is
// removed first so the DC bin does not mask the drive frequency.
func Analyze(series *types.LineProfileSeries, interval float64) (*Spectrum, error) {
	if interval <= 0 {
		return nil, &types.ConfigError{Field: "interval", Reason: fmt.Sprintf("must be positive, got %g", interval)}
	}
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("spectrum: %w", types.ErrNoData)
	}
	probe := len(series.XCoords) / 2
	wave, err := Trace(series, probe)
	if err != nil {
		return nil, err
	}
	return analyzeTrace(wave, interval, probe), nil
}

func analyzeTrace(wave []complex128, interval float64, probe int) *Spectrum {
	n := len(wave)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range wave {
		re[i], im[i] = real(v), imag(v)
	}
	meanRe, meanIm := stat.Mean(re, nil), stat.Mean(im, nil)
	centred := make([]complex128, n)
	for i := range wave {
		centred[i] = complex(re[i]-meanRe, im[i]-meanIm)
	}

	coeffs := fft.FFT(centred)
	half := n / 2
	if half == 0 {
		half = 1
	}
	s := &Spectrum{
		Probe: probe,
		Power: make([]float64, half),
		Freqs: make([]float64, half),
	}
	for k := 0; k < half; k++ {
		a := cmplx.Abs(coeffs[k])
		s.Power[k] = a * a
		s.Freqs[k] = float64(k) / (float64(n) * interval)
	}
	s.TotalPower = floats.Sum(s.Power)

	if half > 1 {
		k := floats.MaxIdx(s.Power[1:]) + 1
		s.Dominant = s.Freqs[k]
		signal := s.Power[k]
		noise := s.TotalPower - signal
		switch {
		case noise > 0:
			s.SNR = 10 * math.Log10(signal/noise)
		case signal > 0:
			s.SNR = math.Inf(1)
		}
	}
	return s
}
