package params

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestDefaultDerivedGeometry(t *testing.T) {
	sim := DefaultSimulation()

	if !approx(sim.Cell.X, 4.7) || !approx(sim.Cell.Y, 4.43) || sim.Cell.Z != 0 {
		t.Fatalf("unexpected cell %+v", sim.Cell)
	}
	if !approx(sim.Centers[0].Y, 0.12) || !approx(sim.Centers[1].Y, -0.12) {
		t.Fatalf("unexpected centers %+v", sim.Centers)
	}
	if sim.Freq != 1.0 || sim.FreqWidth != 0.5 {
		t.Fatalf("unexpected source band freq=%g width=%g", sim.Freq, sim.FreqWidth)
	}
	if err := Validate(sim); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if !HasAntennas(sim) {
		t.Fatal("defaults should include antennas")
	}
}

func TestWithoutAntennasLeavesInputUntouched(t *testing.T) {
	sim := DefaultSimulation()
	empty := WithoutAntennas(sim)

	if HasAntennas(empty) {
		t.Fatal("expected both bars out of plane")
	}
	if empty.Centers[0].Z != OutOfPlaneZ || empty.Centers[1].Z != OutOfPlaneZ {
		t.Fatalf("unexpected centers %+v", empty.Centers)
	}
	if !HasAntennas(sim) {
		t.Fatal("input config was mutated")
	}
}

func TestResetCarriesOutputSettings(t *testing.T) {
	cfg := Default()
	cfg.Output.SimName = "run42"
	cfg.Output.PathToSave = "/tmp/out"
	cfg.Upload.Bucket = "bucket"
	cfg.Log.Level = "debug"
	cfg.Simulation = WithoutAntennas(cfg.Simulation)
	cfg.Simulation.Resolution = 10

	next := Reset(cfg)
	if next.Output.SimName != "run42" || next.Output.PathToSave != "/tmp/out" {
		t.Fatalf("output not carried: %+v", next.Output)
	}
	if next.Upload.Bucket != "bucket" || next.Log.Level != "debug" {
		t.Fatal("upload or log settings not carried")
	}
	if next.Simulation.Resolution != 50 || !HasAntennas(next.Simulation) {
		t.Fatalf("simulation not restored: %+v", next.Simulation)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name  string
		field string
		edit  func(*types.SimulationConfig)
	}{
		{"zero resolution", "resolution", func(s *types.SimulationConfig) { s.Resolution = 0 }},
		{"zero interval", "sampling_interval", func(s *types.SimulationConfig) { s.SamplingInterval = 0 }},
		{"interval beyond run", "sampling_interval", func(s *types.SimulationConfig) { s.SamplingInterval = 20 }},
		{"skip fraction one", "skip_fraction", func(s *types.SimulationConfig) { s.SkipFraction = 1 }},
		{"negative skip", "skip_fraction", func(s *types.SimulationConfig) { s.SkipFraction = -0.1 }},
		{"thick pml", "pml", func(s *types.SimulationConfig) { s.PML = 3 }},
		{"line width", "line_width", func(s *types.SimulationConfig) { s.LineWidth = 0 }},
		{"border", "border_width", func(s *types.SimulationConfig) { s.BorderWidth = -1 }},
		{"material", "material", func(s *types.SimulationConfig) { s.Material = "Unobtainium" }},
		{"component", "component", func(s *types.SimulationConfig) { s.Component = types.ComponentEps }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim := DefaultSimulation()
			tc.edit(&sim)
			err := Validate(sim)
			if !errors.Is(err, types.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var ce *types.ConfigError
			if !errors.As(err, &ce) || ce.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
		})
	}
}

func TestValidateMembership(t *testing.T) {
	for _, m := range Materials {
		sim := DefaultSimulation()
		sim.Material = m
		if err := Validate(sim); err != nil {
			t.Fatalf("material %q rejected: %v", m, err)
		}
	}

	cfg := Default()
	cfg.Output.Format = "Parquet"
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("format should match case-insensitively: %v", err)
	}
	cfg.Output.Format = "hdf5"
	var ce *types.ConfigError
	if err := ValidateConfig(cfg); !errors.As(err, &ce) || ce.Field != "format" {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestParseDerivesFromOverriddenGeometry(t *testing.T) {
	doc := `
simulation:
  x_width: 1.0
  pad: 1.5
  lambda0: 0.5
output:
  sim_name: custom
  format: both
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !approx(cfg.Simulation.Cell.X, 4.0) {
		t.Fatalf("cell x should follow geometry, got %g", cfg.Simulation.Cell.X)
	}
	if cfg.Simulation.Freq != 2.0 || cfg.Simulation.FreqWidth != 1.0 {
		t.Fatalf("unexpected source band %g %g", cfg.Simulation.Freq, cfg.Simulation.FreqWidth)
	}
	if cfg.Simulation.Resolution != 50 {
		t.Fatalf("untouched fields should keep defaults, got resolution %d", cfg.Simulation.Resolution)
	}
	if cfg.Output.SimName != "custom" || cfg.Output.Format != "both" {
		t.Fatalf("unexpected output %+v", cfg.Output)
	}
}

func TestParsePinnedCell(t *testing.T) {
	doc := `
simulation:
  cell: {x: 6, y: 5, z: 0}
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Simulation.Cell.X != 6 || cfg.Simulation.Cell.Y != 5 {
		t.Fatalf("pinned cell lost: %+v", cfg.Simulation.Cell)
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  sim_name: from_file\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("SPLITBAR_RESOLUTION", "20")
	t.Setenv("SPLITBAR_SKIP_FRACTION", "0.25")
	t.Setenv("SPLITBAR_FORMAT", "parquet")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.SimName != "from_file" {
		t.Fatalf("file value lost: %q", cfg.Output.SimName)
	}
	if cfg.Simulation.Resolution != 20 || cfg.Simulation.SkipFraction != 0.25 || cfg.Output.Format != "parquet" {
		t.Fatalf("env overrides not applied: %+v", cfg.Simulation)
	}
}

func TestLoadAcceptsQuotedEnvValues(t *testing.T) {
	t.Setenv("SPLITBAR_MATERIAL", ` "Au" `)
	t.Setenv("SPLITBAR_COMPONENT", `"Ex"`)
	t.Setenv("SPLITBAR_SIM_NAME", ` " quoted " `)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.Material != "Au" || cfg.Simulation.Component != types.ComponentEx {
		t.Fatalf("quotes not stripped: material=%q component=%q", cfg.Simulation.Material, cfg.Simulation.Component)
	}
	if cfg.Output.SimName != "quoted" {
		t.Fatalf("expected inner whitespace trimmed, got %q", cfg.Output.SimName)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("SPLITBAR_FORMAT", "hdf5")
	if _, err := Load(""); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SPLITBAR_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SPLITBAR_TEST_DOTENV", "")
	os.Unsetenv("SPLITBAR_TEST_DOTENV")

	LoadDotEnv(path, filepath.Join(dir, "absent.env"))
	if got := EnvOr("SPLITBAR_TEST_DOTENV", ""); got != "loaded" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SPLITBAR_X_STR", ` "value" `)
	t.Setenv("SPLITBAR_X_INT", "nope")
	t.Setenv("SPLITBAR_X_FLOAT", "0.5")
	t.Setenv("SPLITBAR_X_BOOL", "true")

	if got := EnvOr("SPLITBAR_X_STR", "def"); got != "value" {
		t.Fatalf("EnvOr = %q", got)
	}
	if got := EnvIntOr("SPLITBAR_X_INT", 7); got != 7 {
		t.Fatalf("EnvIntOr should fall back, got %d", got)
	}
	if got := EnvFloatOr("SPLITBAR_X_FLOAT", 1); got != 0.5 {
		t.Fatalf("EnvFloatOr = %g", got)
	}
	if got := EnvBoolOr("SPLITBAR_X_BOOL", false); !got {
		t.Fatal("EnvBoolOr should parse true")
	}
}

func TestDumpKeyValue(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, Default()); err != nil {
		t.Fatalf("dump: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(Pairs(Default())) {
		t.Fatalf("expected one line per pair, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "=") {
			t.Fatalf("line without separator: %q", line)
		}
	}
	out := buf.String()
	for _, want := range []string{"material=Au\n", "resolution=50\n", "component=Ey\n", "xyz_src=[0, 0, 3]\n", "xyz_cell=["} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in dump:\n%s", want, out)
		}
	}
}

func TestFormatListTruncates(t *testing.T) {
	if got := formatList([]float64{1, 2, 3, 4, 5, 6, 7}); got != "[1, 2, 3, 4, 5]" {
		t.Fatalf("unexpected list %q", got)
	}
}
