// Package params holds the run configuration: simulation geometry, source and
// timing, plus output, upload and logging settings.
//
// Configuration is a plain value. Tasks receive a Config and return the one
// they ran with, so any mutation between tasks is visible at the call site.
package params

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// OutOfPlaneZ is the bar z-center used for runs without antennas. The 2D
// engine omits blocks whose center lies outside the simulation plane.
const OutOfPlaneZ = -10.0

// LogConfig selects the logger level and sinks.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
}

// Config is the full run configuration.
type Config struct {
	Simulation types.SimulationConfig `yaml:"simulation"`
	Output     types.OutputConfig     `yaml:"output"`
	Upload     types.UploadConfig     `yaml:"upload"`
	Log        LogConfig              `yaml:"log"`

	// LineProfileEmpty also samples the line profile without antennas.
	LineProfileEmpty bool `yaml:"line_profile_empty"`
}

// DefaultSimulation returns the split-bar defaults with derived fields filled.
func DefaultSimulation() types.SimulationConfig {
	sim := types.SimulationConfig{
		Material: "Au",
		XWidth:   0.7,
		YLength:  0.19,
		ZHeight:  0.0,
		GapSize:  0.05,
		Pad:      2.0,

		Lambda0:    1.0,
		Component:  types.ComponentEy,
		SourcePos:  types.Vector3{X: 0, Y: 0, Z: 3.0},
		SourceSize: types.Vector3{},

		PML:              1.0,
		Resolution:       50,
		SimTime:          10.0,
		RunTime:          10.0,
		SamplingInterval: 0.1,
		SkipFraction:     0.15,
		LineWidth:        5,
		BorderWidth:      20,
	}
	return Derive(sim)
}

// Default returns the default run configuration.
func Default() Config {
	return Config{
		Simulation: DefaultSimulation(),
		Output: types.OutputConfig{
			SimName:            "split_bar",
			PathToSave:         "results",
			Format:             "npz",
			ParquetCompression: "snappy",
		},
		Upload: types.UploadConfig{
			Compression: "none",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Reset restores simulation defaults while carrying output, upload and log
// settings over from prev.
func Reset(prev Config) Config {
	next := Default()
	next.Output = prev.Output
	next.Upload = prev.Upload
	next.Log = prev.Log
	next.LineProfileEmpty = prev.LineProfileEmpty
	return next
}

// Derive fills the cell, bar centers and source band from the geometry and
// wavelength. Fields already set are kept.
func Derive(sim types.SimulationConfig) types.SimulationConfig {
	if sim.Cell == (types.Vector3{}) {
		sim.Cell = types.Vector3{
			X: sim.XWidth + 2*sim.Pad,
			Y: 2*sim.YLength + sim.GapSize + 2*sim.Pad,
			Z: 0,
		}
	}
	if sim.Centers == [2]types.Vector3{} {
		offset := sim.YLength/2.0 + sim.GapSize/2.0
		sim.Centers = [2]types.Vector3{
			{X: 0, Y: offset, Z: 0},
			{X: 0, Y: -offset, Z: 0},
		}
	}
	if sim.Freq == 0 && sim.Lambda0 > 0 {
		sim.Freq = 1.0 / sim.Lambda0
	}
	if sim.FreqWidth == 0 {
		sim.FreqWidth = sim.Freq * 0.5
	}
	return sim
}

// WithoutAntennas returns a copy of sim with both bars moved out of the
// simulation plane.
func WithoutAntennas(sim types.SimulationConfig) types.SimulationConfig {
	for i := range sim.Centers {
		sim.Centers[i].Z = OutOfPlaneZ
	}
	return sim
}

// HasAntennas reports whether any bar lies in the simulation plane.
func HasAntennas(sim types.SimulationConfig) bool {
	for _, c := range sim.Centers {
		if c.Z == 0 {
			return true
		}
	}
	return false
}
