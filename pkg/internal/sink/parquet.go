package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	parquet "github.com/parquet-go/parquet-go"
)

// ArrayRow is one matrix row of a bundle array. Vectors are stored as a
// single row.
type ArrayRow struct {
	Array  string    `parquet:"array"`
	Row    int64     `parquet:"row"`
	Values []float64 `parquet:"values"`
}

// ParquetSink writes each bundle as <dir>/<bundle>.parquet.
type ParquetSink struct {
	base
	dir         string
	compression string
	codec       parquet.WriterOption
}

// NewParquetSink returns a sink rooted at dir. compression is one of
// snappy (default), zstd or gzip.
func NewParquetSink(dir, compression string) (*ParquetSink, error) {
	name := strings.ToLower(strings.TrimSpace(compression))
	var opt parquet.WriterOption
	switch name {
	case "snappy", "":
		name = "snappy"
		opt = parquet.Compression(&parquet.Snappy)
	case "zstd":
		opt = parquet.Compression(&parquet.Zstd)
	case "gzip", "gz":
		name = "gzip"
		opt = parquet.Compression(&parquet.Gzip)
	default:
		return nil, fmt.Errorf("parquet compression %q: %w", compression, types.ErrUnsupportedFormat)
	}
	return &ParquetSink{base: newBase("PARQUET_SINK"), dir: dir, compression: name, codec: opt}, nil
}

// Compression returns the normalized codec name.
func (s *ParquetSink) Compression() string { return s.compression }

// Write stores the bundle and returns the file path.
func (s *ParquetSink) Write(ctx context.Context, b types.Bundle) ([]string, error) {
	if err := prepare(ctx, s.dir, b); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, b.Name+".parquet")
	if err := s.writeFile(path, Rows(b)); err != nil {
		return nil, s.failed(path, err)
	}
	s.NotifyLoggers(types.DebugLevel, "Parquet flush",
		"component", s.GetComponentMetadata(),
		"event", "ParquetFlush",
		"arrays", len(b.Arrays),
		"compression", s.compression,
	)
	s.written(path)
	return []string{path}, nil
}

func (s *ParquetSink) writeFile(path string, rows []ArrayRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	pw := parquet.NewGenericWriter[ArrayRow](f, s.codec)
	if len(rows) > 0 {
		if _, err := pw.Write(rows); err != nil {
			_ = pw.Close()
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := pw.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// Rows flattens a bundle into parquet rows in array order.
func Rows(b types.Bundle) []ArrayRow {
	var rows []ArrayRow
	for _, a := range b.Arrays {
		for i, r := range a.Rows() {
			rows = append(rows, ArrayRow{Array: a.Name, Row: int64(i), Values: r})
		}
	}
	return rows
}
