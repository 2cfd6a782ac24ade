package types

// Vector3 is a point or extent in engine units (micrometres, c = 1).
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// FieldComponent names a scalar slice the engine can export.
type FieldComponent string

const (
	ComponentEx  FieldComponent = "Ex"
	ComponentEy  FieldComponent = "Ey"
	ComponentHz  FieldComponent = "Hz"
	ComponentEps FieldComponent = "Eps" // relative permittivity of the structure
)

// Region is an axis-aligned box given by its center and size.
type Region struct {
	Center Vector3
	Size   Vector3
}

// SimulationConfig is the per-run snapshot of geometry, material, source and timing.
type SimulationConfig struct {
	// Geometry
	Material string     `yaml:"material"`
	XWidth   float64    `yaml:"x_width"`
	YLength  float64    `yaml:"y_length"`
	ZHeight  float64    `yaml:"z_height"`
	GapSize  float64    `yaml:"gap_size"`
	Pad      float64    `yaml:"pad"`
	Cell     Vector3    `yaml:"cell"`
	Centers  [2]Vector3 `yaml:"centers"` // upper bar, lower bar

	// Source
	Lambda0    float64        `yaml:"lambda0"`
	Freq       float64        `yaml:"freq"`
	FreqWidth  float64        `yaml:"freq_width"`
	Component  FieldComponent `yaml:"component"`
	SourcePos  Vector3        `yaml:"source_pos"`
	SourceSize Vector3        `yaml:"source_size"`

	// Simulation
	PML              float64 `yaml:"pml"`
	Resolution       int     `yaml:"resolution"`
	SimTime          float64 `yaml:"sim_time"`
	RunTime          float64 `yaml:"run_time"` // sampling window end ("until")
	SamplingInterval float64 `yaml:"sampling_interval"`
	SkipFraction     float64 `yaml:"skip_fraction"`
	LineWidth        int     `yaml:"line_width"`
	BorderWidth      int     `yaml:"border_width"`
}

// FullCell returns the region covering the whole simulation cell.
func (c SimulationConfig) FullCell() Region {
	return Region{Size: c.Cell}
}

// SkipTime is the simulated time before which samples are discarded.
func (c SimulationConfig) SkipTime() float64 {
	return c.RunTime * c.SkipFraction
}
