package params

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Materials lists the material names the engine understands.
var Materials = []string{"Au", "Cr", "W", "SiO2", "Vacuum"}

// OutputFormats lists the accepted result formats.
var OutputFormats = []string{"npz", "parquet", "both"}

// Validate checks the simulation invariants. It never touches an engine.
func Validate(sim types.SimulationConfig) error {
	switch {
	case sim.Resolution <= 0:
		return &types.ConfigError{Field: "resolution", Reason: fmt.Sprintf("must be positive, got %d", sim.Resolution)}
	case sim.Cell.X <= 0 || sim.Cell.Y <= 0:
		return &types.ConfigError{Field: "cell", Reason: fmt.Sprintf("x and y must be positive, got %v", sim.Cell)}
	case sim.PML < 0:
		return &types.ConfigError{Field: "pml", Reason: "must not be negative"}
	case 2*sim.PML >= sim.Cell.X || 2*sim.PML >= sim.Cell.Y:
		return &types.ConfigError{Field: "pml", Reason: fmt.Sprintf("%g leaves no interior in cell %gx%g", sim.PML, sim.Cell.X, sim.Cell.Y)}
	case sim.RunTime <= 0:
		return &types.ConfigError{Field: "run_time", Reason: "must be positive"}
	case sim.SamplingInterval <= 0 || sim.SamplingInterval > sim.RunTime:
		return &types.ConfigError{Field: "sampling_interval", Reason: fmt.Sprintf("must be in (0, %g], got %g", sim.RunTime, sim.SamplingInterval)}
	case sim.SkipFraction < 0 || sim.SkipFraction >= 1:
		return &types.ConfigError{Field: "skip_fraction", Reason: fmt.Sprintf("must be in [0, 1), got %g", sim.SkipFraction)}
	case sim.SimTime <= 0:
		return &types.ConfigError{Field: "sim_time", Reason: "must be positive"}
	case sim.LineWidth < 1:
		return &types.ConfigError{Field: "line_width", Reason: "must be at least 1"}
	case sim.BorderWidth < 0:
		return &types.ConfigError{Field: "border_width", Reason: "must not be negative"}
	case sim.Freq <= 0:
		return &types.ConfigError{Field: "freq", Reason: "must be positive"}
	}

	if !slices.Contains(Materials, sim.Material) {
		return &types.ConfigError{Field: "material", Reason: fmt.Sprintf("unknown material %q", sim.Material)}
	}
	switch sim.Component {
	case types.ComponentEx, types.ComponentEy, types.ComponentHz:
	default:
		return &types.ConfigError{Field: "component", Reason: fmt.Sprintf("unsupported source component %q", sim.Component)}
	}
	return nil
}

// ValidateConfig checks the simulation and output sections.
func ValidateConfig(cfg Config) error {
	if err := Validate(cfg.Simulation); err != nil {
		return err
	}
	if cfg.Output.SimName == "" {
		return &types.ConfigError{Field: "sim_name", Reason: "must not be empty"}
	}
	if !slices.Contains(OutputFormats, strings.ToLower(cfg.Output.Format)) {
		return &types.ConfigError{Field: "format", Reason: fmt.Sprintf("unknown output format %q", cfg.Output.Format)}
	}
	return nil
}
