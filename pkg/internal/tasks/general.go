package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sink"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// BundleGeneral holds the final fields and the permittivity map.
const BundleGeneral = "data_general"

func (r *Runner) general(ctx context.Context, cfg params.Config) (params.Config, []string, error) {
	if err := params.ValidateConfig(cfg); err != nil {
		return cfg, nil, err
	}
	sim := cfg.Simulation

	empty, err := r.finalFrame(ctx, params.WithoutAntennas(sim), sim.Component)
	if err != nil {
		return cfg, nil, fmt.Errorf("empty cell run: %w", err)
	}

	eng, err := r.engine(sim)
	if err != nil {
		return cfg, nil, err
	}
	if err := eng.Advance(ctx, sim.SimTime, sim.SamplingInterval, nil); err != nil {
		return cfg, nil, fmt.Errorf("structure run: %w", err)
	}
	field, err := readMap(eng, sim.Component, sim)
	if err != nil {
		return cfg, nil, fmt.Errorf("structure run: %w", err)
	}
	eps, err := readMap(eng, types.ComponentEps, sim)
	if err != nil {
		return cfg, nil, fmt.Errorf("structure run: %w", err)
	}

	b := types.Bundle{Name: BundleGeneral}
	b.AddMatrix(string(sim.Component), field)
	b.AddMatrix(string(sim.Component)+"_empty", empty)
	b.AddMatrix("eps", eps)

	s, err := r.sinkFor(cfg)
	if err != nil {
		return cfg, nil, err
	}
	paramsPath := filepath.Join(cfg.Output.PathToSave, sink.ParamsFileName)
	if err := sink.WriteParams(paramsPath, cfg); err != nil {
		return cfg, nil, err
	}
	r.artifactWritten(paramsPath)

	paths, err := r.writeAll(ctx, s, []string{paramsPath}, b)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, paths, nil
}

// finalFrame runs a fresh engine to SimTime and exports the component.
func (r *Runner) finalFrame(ctx context.Context, sim types.SimulationConfig, component types.FieldComponent) (*mat.Dense, error) {
	eng, err := r.engine(sim)
	if err != nil {
		return nil, err
	}
	if err := eng.Advance(ctx, sim.SimTime, sim.SamplingInterval, nil); err != nil {
		return nil, err
	}
	return readMap(eng, component, sim)
}

func readMap(eng types.Engine, component types.FieldComponent, sim types.SimulationConfig) (*mat.Dense, error) {
	raw, err := eng.ReadField(component, sim.FullCell())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", component, err)
	}
	f, err := raw.AsMap()
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(f.Re), nil
}

func (r *Runner) artifactWritten(path string) {
	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}
	for _, s := range r.snapshotSensors() {
		s.InvokeOnArtifactWritten(r.componentMetadata, path, size)
	}
}
