package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/spectrum"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// BundleLinePrefix prefixes line-profile bundle names.
const BundleLinePrefix = "data_E_line_"

type profileRun struct {
	name string
	sim  types.SimulationConfig
}

func (r *Runner) lineProfile(ctx context.Context, cfg params.Config) (params.Config, []string, error) {
	if err := params.ValidateConfig(cfg); err != nil {
		return cfg, nil, err
	}
	s, err := r.sinkFor(cfg)
	if err != nil {
		return cfg, nil, err
	}

	runs := []profileRun{{r.lineProfileName, cfg.Simulation}}
	if cfg.LineProfileEmpty {
		runs = append(runs, profileRun{r.lineProfileName + "_empty", params.WithoutAntennas(cfg.Simulation)})
	}

	bundles := make([]types.Bundle, 0, len(runs))
	for _, run := range runs {
		b, err := r.lineBundle(ctx, run.name, run.sim)
		if err != nil {
			return cfg, nil, err
		}
		bundles = append(bundles, b)
	}
	paths, err := r.writeAll(ctx, s, nil, bundles...)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, paths, nil
}

func (r *Runner) lineBundle(ctx context.Context, name string, sim types.SimulationConfig) (types.Bundle, error) {
	eng, err := r.engine(sim)
	if err != nil {
		return types.Bundle{}, err
	}
	series, err := r.sampler.CollectLineProfile(ctx, eng, sim, sim.LineWidth, sim.RunTime)
	if err != nil {
		return types.Bundle{}, fmt.Errorf("line profile %s: %w", name, err)
	}

	b := types.Bundle{Name: BundleLinePrefix + name}
	if m := series.Matrix(); m != nil {
		b.AddMatrix("collected_data", m)
	} else {
		b.AddVector("collected_data", nil)
	}
	b.AddVector("time_steps", series.Times)
	b.AddVector("x_coords", series.XCoords)

	ps, err := spectrum.Analyze(series, sim.SamplingInterval)
	switch {
	case err == nil:
		b.AddVector("spectrum_power", ps.Power)
		b.AddVector("spectrum_freqs", ps.Freqs)
		r.NotifyLoggers(types.InfoLevel, "Line profile spectrum",
			"component", r.componentMetadata,
			"event", "Spectrum",
			"result", "SUCCESS",
			"bundle", b.Name,
			"dominant_freq", ps.Dominant,
			"source_freq", sim.Freq,
			"snr_db", ps.SNR,
		)
	case errors.Is(err, types.ErrNoData):
		r.NotifyLoggers(types.WarnLevel, "Line profile has no samples, spectrum skipped",
			"component", r.componentMetadata,
			"event", "Spectrum",
			"result", "EMPTY",
			"bundle", b.Name,
		)
	default:
		return types.Bundle{}, fmt.Errorf("spectrum %s: %w", name, err)
	}
	return b, nil
}
