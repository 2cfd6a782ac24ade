package builder

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"

// EnvPrefix prefixes every configuration override variable.
const EnvPrefix = params.EnvPrefix

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	return params.EnvOr(key, def)
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	return params.EnvIntOr(key, def)
}

// EnvFloatOr returns the parsed float env value or def on empty/parse failure.
func EnvFloatOr(key string, def float64) float64 {
	return params.EnvFloatOr(key, def)
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	return params.EnvBoolOr(key, def)
}

// LoadDotEnv loads .env files into the process environment; missing files
// are ignored.
func LoadDotEnv(paths ...string) {
	params.LoadDotEnv(paths...)
}

// DefaultConfig returns the split-bar defaults.
func DefaultConfig() Config {
	return params.Default()
}

// ResetConfig restores simulation defaults, keeping output, upload and log
// settings from prev.
func ResetConfig(prev Config) Config {
	return params.Reset(prev)
}

// LoadConfig reads path (defaults when empty), applies SPLITBAR_* overrides
// and validates the result.
func LoadConfig(path string) (Config, error) {
	return params.Load(path)
}

// WithoutAntennas moves both bars out of the simulation plane.
func WithoutAntennas(sim SimulationConfig) SimulationConfig {
	return params.WithoutAntennas(sim)
}
