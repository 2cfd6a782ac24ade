package sampler

import (
	"context"
	"errors"
	"fmt"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// CollectRunningMax keeps the element-wise maximum of |field| over samples
// taken at or after RunTime*skipFraction, then zeroes cfg.BorderWidth cells
// along every edge. A window that yields no qualifying sample returns
// types.ErrNoData.
func (s *FieldSampler) CollectRunningMax(ctx context.Context, handle types.Engine, cfg types.SimulationConfig, skipFraction float64) (*types.MaxFieldMap, error) {
	c := s.GetComponentMetadata()
	until := cfg.RunTime

	if err := checkWindow(cfg, until); err != nil {
		return nil, err
	}
	if skipFraction < 0 || skipFraction > 1 {
		return nil, &types.ConfigError{Field: "skip_fraction", Reason: fmt.Sprintf("must be in [0, 1], got %g", skipFraction)}
	}
	if cfg.BorderWidth < 0 {
		return nil, &types.ConfigError{Field: "border_width", Reason: "must not be negative"}
	}

	skipTime := until * skipFraction
	s.notifyStart(c)
	if skipTime >= until {
		return nil, s.noData(c, skipTime, until)
	}

	s.NotifyLoggers(types.InfoLevel, "Collecting running maximum",
		"component", c,
		"event", "CollectRunningMax",
		"result", "PENDING",
		"until", until,
		"skip_time", skipTime,
		"interval", cfg.SamplingInterval,
		"field", string(cfg.Component),
	)

	if err := handle.Reset(); err != nil {
		return nil, s.fail(c, "CollectRunningMax", fmt.Errorf("reset engine: %w", err))
	}

	out := &types.MaxFieldMap{SkipTime: skipTime, BorderWidth: cfg.BorderWidth}
	step := func(t float64) error {
		if t < skipTime {
			out.Skipped++
			s.notifySkip(c, t)
			return nil
		}
		raw, err := handle.ReadField(cfg.Component, cfg.FullCell())
		if err != nil {
			return fmt.Errorf("read %s at t=%g: %w", cfg.Component, t, err)
		}
		field, err := raw.AsMap()
		if err != nil {
			return err
		}

		abs := field.Abs()
		if out.Data == nil {
			r, cols := abs.Dims()
			out.Data = mat.NewDense(r, cols, nil)
		} else if wr, wc := out.Data.Dims(); !sameDims(out.Data, abs) {
			gr, gc := abs.Dims()
			return &types.ShapeError{
				Op:       fmt.Sprintf("running max at t=%g", t),
				WantRows: wr, WantCols: wc,
				GotRows: gr, GotCols: gc,
			}
		}
		foldMax(out.Data, abs)
		out.Samples++
		s.notifySample(c, t)
		return nil
	}

	if err := handle.Advance(ctx, until, cfg.SamplingInterval, step); err != nil {
		return nil, s.fail(c, "CollectRunningMax", err)
	}

	if out.Samples == 0 {
		return nil, s.noData(c, skipTime, until)
	}

	ZeroBorder(out.Data, cfg.BorderWidth)

	s.notifyComplete(c, out.Samples)
	s.NotifyLoggers(types.InfoLevel, "Running maximum collected",
		"component", c,
		"event", "CollectRunningMax",
		"result", "SUCCESS",
		"samples", out.Samples,
		"skipped", out.Skipped,
		"border_width", cfg.BorderWidth,
		"max", mat.Max(out.Data),
	)
	return out, nil
}

func (s *FieldSampler) noData(c types.ComponentMetadata, skipTime, until float64) error {
	err := fmt.Errorf("running max: skip time %g, window end %g: %w", skipTime, until, types.ErrNoData)
	s.notifyNoData(c)
	s.NotifyLoggers(types.WarnLevel, "No field data collected",
		"component", c,
		"event", "CollectRunningMax",
		"result", "EMPTY",
		"error", err,
	)
	return err
}

func sameDims(a, b *mat.Dense) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// IsNoData reports whether err marks an empty collection.
func IsNoData(err error) bool {
	return errors.Is(err, types.ErrNoData)
}
