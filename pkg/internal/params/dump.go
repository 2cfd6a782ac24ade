package params

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// maxListItems caps how many elements of a list value are printed.
const maxListItems = 5

// Pair is one key=value line of the parameter dump.
type Pair struct {
	Key   string
	Value string
}

// Pairs flattens cfg into ordered key/value pairs.
func Pairs(cfg Config) []Pair {
	sim := cfg.Simulation
	return []Pair{
		{"sim_name", cfg.Output.SimName},
		{"material", sim.Material},
		{"x_width", formatFloat(sim.XWidth)},
		{"y_length", formatFloat(sim.YLength)},
		{"z_height", formatFloat(sim.ZHeight)},
		{"gap_size", formatFloat(sim.GapSize)},
		{"pad", formatFloat(sim.Pad)},
		{"xyz_cell", formatList(vec(sim.Cell))},
		{"center", formatVectors(sim.Centers[:])},
		{"lambda0", formatFloat(sim.Lambda0)},
		{"freq", formatFloat(sim.Freq)},
		{"freq_width", formatFloat(sim.FreqWidth)},
		{"component", string(sim.Component)},
		{"xyz_src", formatList(vec(sim.SourcePos))},
		{"src_size", formatList(vec(sim.SourceSize))},
		{"pml", formatFloat(sim.PML)},
		{"resolution", strconv.Itoa(sim.Resolution)},
		{"sim_time", formatFloat(sim.SimTime)},
		{"run_time", formatFloat(sim.RunTime)},
		{"sampling_interval", formatFloat(sim.SamplingInterval)},
		{"skip_fraction", formatFloat(sim.SkipFraction)},
		{"line_width", strconv.Itoa(sim.LineWidth)},
		{"border_width", strconv.Itoa(sim.BorderWidth)},
		{"path_to_save", cfg.Output.PathToSave},
		{"format", cfg.Output.Format},
	}
}

// Dump writes the parameter dump, one key=value per line.
func Dump(w io.Writer, cfg Config) error {
	bw := bufio.NewWriter(w)
	for _, p := range Pairs(cfg) {
		if _, err := fmt.Fprintf(bw, "%s=%s\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func vec(v types.Vector3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatList(values []float64) string {
	if len(values) > maxListItems {
		values = values[:maxListItems]
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatVectors(vs []types.Vector3) string {
	if len(vs) > maxListItems {
		vs = vs[:maxListItems]
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatList(vec(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
