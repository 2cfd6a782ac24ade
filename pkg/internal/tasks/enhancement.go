package tasks

import (
	"context"
	"fmt"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// BundleEnhancement holds both max-field maps and the clipped gain.
const BundleEnhancement = "data_enhancement"

// enhancement starts from reset defaults and returns that configuration.
func (r *Runner) enhancement(ctx context.Context, prev params.Config) (params.Config, []string, error) {
	cfg := r.reset(prev)
	if err := params.ValidateConfig(cfg); err != nil {
		return prev, nil, err
	}
	sim := cfg.Simulation

	with, err := r.runningMax(ctx, sim)
	if err != nil {
		return prev, nil, fmt.Errorf("with antennas: %w", err)
	}
	without, err := r.runningMax(ctx, params.WithoutAntennas(sim))
	if err != nil {
		return prev, nil, fmt.Errorf("without antennas: %w", err)
	}

	g, err := r.estimator.ComputeGain(with.Data, without.Data)
	if err != nil {
		return prev, nil, err
	}

	b := types.Bundle{Name: BundleEnhancement}
	b.AddMatrix("E_max_with", with.Data)
	b.AddMatrix("E_max_without", without.Data)
	b.AddMatrix("gain_clipped", g.Linear)
	b.AddMatrix("gain_db_clipped", g.DB)
	b.AddVector("gain_bounds", []float64{g.P1, g.P99})

	s, err := r.sinkFor(cfg)
	if err != nil {
		return prev, nil, err
	}
	paths, err := r.writeAll(ctx, s, nil, b)
	if err != nil {
		return prev, nil, err
	}
	return cfg, paths, nil
}

func (r *Runner) runningMax(ctx context.Context, sim types.SimulationConfig) (*types.MaxFieldMap, error) {
	eng, err := r.engine(sim)
	if err != nil {
		return nil, err
	}
	return r.sampler.CollectRunningMax(ctx, eng, sim, sim.SkipFraction)
}
