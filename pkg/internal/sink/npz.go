package sink

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"github.com/sbinet/npyio/npz"
)

// NPZSink writes each bundle as <dir>/<bundle>.npz, one .npy entry per array.
type NPZSink struct {
	base
	dir string
}

// NewNPZSink returns a sink rooted at dir.
func NewNPZSink(dir string) *NPZSink {
	return &NPZSink{base: newBase("NPZ_SINK"), dir: dir}
}

// Dir returns the output directory.
func (s *NPZSink) Dir() string { return s.dir }

// Write stores the bundle and returns the archive path.
func (s *NPZSink) Write(ctx context.Context, b types.Bundle) ([]string, error) {
	if err := prepare(ctx, s.dir, b); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, b.Name+".npz")
	if err := writeNPZ(path, b); err != nil {
		return nil, s.failed(path, err)
	}
	s.written(path)
	return []string{path}, nil
}

func writeNPZ(path string, b types.Bundle) error {
	w, err := npz.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	for _, a := range b.Arrays {
		// np.savez layout: one "<name>.npy" entry per array.
		entry := a.Name + ".npy"
		var werr error
		if a.Matrix != nil {
			werr = w.Write(entry, a.Matrix)
		} else {
			v := a.Vector
			if v == nil {
				v = []float64{}
			}
			werr = w.Write(entry, v)
		}
		if werr != nil {
			_ = w.Close()
			return fmt.Errorf("write %s/%s: %w", b.Name, a.Name, werr)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
