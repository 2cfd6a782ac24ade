package params

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadDotEnv loads .env style files into the process environment. Missing
// files are ignored; existing variables are not overwritten.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

// Parse decodes a YAML document over the defaults and fills derived fields
// the document leaves out.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Derived fields follow the geometry unless the document pins them.
	cfg.Simulation.Cell = types.Vector3{}
	cfg.Simulation.Centers = [2]types.Vector3{}
	cfg.Simulation.Freq = 0
	cfg.Simulation.FreqWidth = 0

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Simulation = Derive(cfg.Simulation)
	return cfg, nil
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Load builds the run configuration from an optional YAML file and the
// SPLITBAR_* environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFile(path)
		if err != nil {
			return Config{}, err
		}
	}
	cfg = ApplyEnv(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
