package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
)

// ParamsFileName is the parameter dump written next to the bundles.
const ParamsFileName = "simulation_params.txt"

// WriteParams writes cfg as key=value lines to path, creating parent
// directories as needed.
func WriteParams(path string, cfg params.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create params dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create params file: %w", err)
	}
	if err := params.Dump(f, cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("dump params: %w", err)
	}
	return f.Close()
}
