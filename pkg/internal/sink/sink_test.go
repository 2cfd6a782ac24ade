package sink_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sensor"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sink"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	parquet "github.com/parquet-go/parquet-go"
	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"
)

func enhancementBundle() types.Bundle {
	b := types.Bundle{Name: "data_enhancement"}
	b.AddMatrix("E_max_with", mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	b.AddVector("gain_bounds", []float64{0.5, 2.5})
	return b
}

type artifactLog struct {
	mu    sync.Mutex
	paths []string
}

func (a *artifactLog) sensor() types.Sensor {
	return sensor.NewSensor(sensor.WithOnArtifactWrittenFunc(func(_ types.ComponentMetadata, path string, bytes int64) {
		a.mu.Lock()
		defer a.mu.Unlock()
		if bytes > 0 {
			a.paths = append(a.paths, path)
		}
	}))
}

func TestNPZEntriesUseNpySuffix(t *testing.T) {
	dir := t.TempDir()
	s := sink.NewNPZSink(dir)
	paths, err := s.Write(context.Background(), enhancementBundle())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	zr, err := zip.OpenReader(paths[0])
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	want := []string{"E_max_with.npy", "gain_bounds.npy"}
	if len(names) != len(want) {
		t.Fatalf("expected entries %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected entries %v, got %v", want, names)
		}
	}
}

func TestNPZSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	seen := &artifactLog{}
	s, err := sink.New(types.OutputConfig{PathToSave: dir, Format: "npz"}, sink.WithSensor(seen.sensor()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	paths, err := s.Write(context.Background(), enhancementBundle())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := filepath.Join(dir, "data_enhancement.npz")
	if len(paths) != 1 || paths[0] != want {
		t.Fatalf("unexpected paths %v", paths)
	}
	if len(seen.paths) != 1 || seen.paths[0] != want {
		t.Fatalf("expected one artifact event for %s, got %v", want, seen.paths)
	}

	r, err := npz.Open(want)
	if err != nil {
		t.Fatalf("npz.Open: %v", err)
	}
	defer r.Close()

	var m mat.Dense
	if err := r.Read("E_max_with.npy", &m); err != nil {
		t.Fatalf("read matrix: %v", err)
	}
	if rows, cols := m.Dims(); rows != 2 || cols != 3 || m.At(1, 2) != 6 {
		t.Fatalf("unexpected matrix %v", mat.Formatted(&m))
	}
	var bounds []float64
	if err := r.Read("gain_bounds.npy", &bounds); err != nil {
		t.Fatalf("read vector: %v", err)
	}
	if len(bounds) != 2 || bounds[0] != 0.5 || bounds[1] != 2.5 {
		t.Fatalf("unexpected bounds %v", bounds)
	}
}

func readRows(t *testing.T, path string) []sink.ArrayRow {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	gr := parquet.NewGenericReader[sink.ArrayRow](bytes.NewReader(data))
	defer gr.Close()

	var out []sink.ArrayRow
	batch := make([]sink.ArrayRow, 16)
	for {
		n, err := gr.Read(batch)
		out = append(out, batch[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("parquet read: %v", err)
		}
	}
	return out
}

func TestParquetSinkRows(t *testing.T) {
	for _, comp := range []string{"", "zstd", "gzip"} {
		t.Run("compression="+comp, func(t *testing.T) {
			dir := t.TempDir()
			s, err := sink.NewParquetSink(dir, comp)
			if err != nil {
				t.Fatalf("NewParquetSink: %v", err)
			}
			paths, err := s.Write(context.Background(), enhancementBundle())
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			rows := readRows(t, paths[0])
			if len(rows) != 3 {
				t.Fatalf("expected 3 rows (2 matrix + 1 vector), got %d", len(rows))
			}
			if rows[1].Array != "E_max_with" || rows[1].Row != 1 || len(rows[1].Values) != 3 || rows[1].Values[0] != 4 {
				t.Fatalf("unexpected matrix row %+v", rows[1])
			}
			if rows[2].Array != "gain_bounds" || rows[2].Values[1] != 2.5 {
				t.Fatalf("unexpected vector row %+v", rows[2])
			}
		})
	}
}

func TestBothFormats(t *testing.T) {
	dir := t.TempDir()
	seen := &artifactLog{}
	s, err := sink.New(types.OutputConfig{PathToSave: dir, Format: "both"}, sink.WithSensor(seen.sensor()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	paths, err := s.Write(context.Background(), enhancementBundle())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(paths) != 2 || !strings.HasSuffix(paths[0], ".npz") || !strings.HasSuffix(paths[1], ".parquet") {
		t.Fatalf("unexpected paths %v", paths)
	}
	if len(seen.paths) != 2 {
		t.Fatalf("expected two artifact events, got %v", seen.paths)
	}
}

func TestUnsupportedFormats(t *testing.T) {
	if _, err := sink.New(types.OutputConfig{PathToSave: t.TempDir(), Format: "hdf5"}); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := sink.NewParquetSink(t.TempDir(), "lzma"); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteRejectsBadBundles(t *testing.T) {
	s := sink.NewNPZSink(t.TempDir())
	if _, err := s.Write(context.Background(), types.Bundle{}); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unnamed bundle, got %v", err)
	}
	dup := types.Bundle{Name: "dup"}
	dup.AddVector("a", []float64{1})
	dup.AddVector("a", []float64{2})
	if _, err := s.Write(context.Background(), dup); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for duplicate array, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Write(ctx, enhancementBundle()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEmptyVectorIsWritten(t *testing.T) {
	dir := t.TempDir()
	b := types.Bundle{Name: "data_E_line_empty"}
	b.AddVector("x_coords", nil)
	paths, err := sink.NewNPZSink(dir).Write(context.Background(), b)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestWriteParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", sink.ParamsFileName)
	if err := sink.WriteParams(path, params.Default()); err != nil {
		t.Fatalf("WriteParams: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	for _, want := range []string{"sim_name=split_bar\n", "material=Au\n", "resolution=50\n"} {
		if !strings.Contains(text, want) {
			t.Fatalf("params dump missing %q:\n%s", want, text)
		}
	}
}
