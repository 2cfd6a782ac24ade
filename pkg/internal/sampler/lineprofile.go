package sampler

import (
	"context"
	"fmt"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// CollectLineProfile records, at every sampling interval up to until, the mean
// of the field over the 2*width-1 columns nearest the cell's y center. The x
// axis is fixed by the first sample; a later sample with a different row
// length aborts the series.
func (s *FieldSampler) CollectLineProfile(ctx context.Context, handle types.Engine, cfg types.SimulationConfig, width int, until float64) (*types.LineProfileSeries, error) {
	c := s.GetComponentMetadata()

	if err := checkWindow(cfg, until); err != nil {
		return nil, err
	}
	if width < 1 {
		return nil, &types.ConfigError{Field: "width", Reason: fmt.Sprintf("must be at least 1, got %d", width)}
	}

	s.notifyStart(c)
	s.NotifyLoggers(types.InfoLevel, "Collecting line profile",
		"component", c,
		"event", "CollectLineProfile",
		"result", "PENDING",
		"width", width,
		"until", until,
		"interval", cfg.SamplingInterval,
		"field", string(cfg.Component),
	)

	if err := handle.Reset(); err != nil {
		return nil, s.fail(c, "CollectLineProfile", fmt.Errorf("reset engine: %w", err))
	}

	series := &types.LineProfileSeries{Width: width}
	step := func(t float64) error {
		raw, err := handle.ReadField(cfg.Component, cfg.FullCell())
		if err != nil {
			return fmt.Errorf("read %s at t=%g: %w", cfg.Component, t, err)
		}
		field, err := raw.AsMap()
		if err != nil {
			return err
		}

		nx, ny := field.Dims()
		cols := ColumnOffsets(ny/2, width, ny)
		line := MeanColumns(field.Re, cols)

		if series.XCoords == nil {
			series.XCoords = Linspace(-cfg.Cell.X/2, cfg.Cell.X/2, nx)
		} else if len(line) != len(series.XCoords) {
			return &types.ShapeError{
				Op:       fmt.Sprintf("line profile at t=%g", t),
				WantRows: len(series.XCoords), WantCols: 1,
				GotRows: len(line), GotCols: 1,
			}
		}

		series.Times = append(series.Times, t)
		series.Lines = append(series.Lines, line)
		if field.IsComplex() {
			series.Imag = append(series.Imag, MeanColumns(field.Im, cols))
		}
		s.notifySample(c, t)
		return nil
	}

	if err := handle.Advance(ctx, until, cfg.SamplingInterval, step); err != nil {
		return nil, s.fail(c, "CollectLineProfile", err)
	}

	if series.Len() == 0 {
		s.NotifyLoggers(types.WarnLevel, "Line profile window produced no samples",
			"component", c,
			"event", "CollectLineProfile",
			"result", "EMPTY",
			"until", until,
			"interval", cfg.SamplingInterval,
		)
	}

	s.notifyComplete(c, series.Len())
	s.NotifyLoggers(types.InfoLevel, "Line profile collected",
		"component", c,
		"event", "CollectLineProfile",
		"result", "SUCCESS",
		"samples", series.Len(),
		"points", len(series.XCoords),
	)
	return series, nil
}

func checkWindow(cfg types.SimulationConfig, until float64) error {
	if until <= 0 {
		return &types.ConfigError{Field: "until", Reason: fmt.Sprintf("must be positive, got %g", until)}
	}
	if cfg.SamplingInterval <= 0 {
		return &types.ConfigError{Field: "sampling_interval", Reason: fmt.Sprintf("must be positive, got %g", cfg.SamplingInterval)}
	}
	return nil
}

func (s *FieldSampler) fail(c types.ComponentMetadata, event string, err error) error {
	s.notifyError(c, err)
	s.NotifyLoggers(types.ErrorLevel, "Sampling failed",
		"component", c,
		"event", event,
		"result", "FAILURE",
		"error", err,
	)
	return err
}
