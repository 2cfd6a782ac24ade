// Package sink persists named-array bundles to disk.
//
// Every sink writes one file per bundle under its directory and reports the
// paths it produced. Sensors see one OnArtifactWritten per file.
package sink

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Output formats.
const (
	FormatNPZ     = "npz"
	FormatParquet = "parquet"
	FormatBoth    = "both"
)

type base struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorsLock sync.Mutex
}

func newBase(typ string) base {
	return base{componentMetadata: types.ComponentMetadata{ID: uuid.NewString(), Type: typ}}
}

// ConnectLogger attaches loggers.
func (b *base) ConnectLogger(loggers ...types.Logger) {
	b.loggersLock.Lock()
	defer b.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			b.loggers = append(b.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors.
func (b *base) ConnectSensor(sensors ...types.Sensor) {
	b.sensorsLock.Lock()
	defer b.sensorsLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			b.sensors = append(b.sensors, s)
		}
	}
}

// GetComponentMetadata returns the sink metadata.
func (b *base) GetComponentMetadata() types.ComponentMetadata {
	b.metadataLock.Lock()
	defer b.metadataLock.Unlock()
	return b.componentMetadata
}

// SetComponentMetadata updates the name and id, keeping the type.
func (b *base) SetComponentMetadata(name string, id string) {
	b.metadataLock.Lock()
	b.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: b.componentMetadata.Type}
	b.metadataLock.Unlock()
}

func (b *base) snapshotSensors() []types.Sensor {
	b.sensorsLock.Lock()
	defer b.sensorsLock.Unlock()
	return append([]types.Sensor(nil), b.sensors...)
}

// written reports a finished file to loggers and sensors.
func (b *base) written(path string) {
	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}
	cm := b.GetComponentMetadata()
	b.NotifyLoggers(types.InfoLevel, "Artifact written",
		"component", cm,
		"event", "ArtifactWritten",
		"result", "SUCCESS",
		"path", path,
		"bytes", size,
	)
	for _, s := range b.snapshotSensors() {
		s.InvokeOnArtifactWritten(cm, path, size)
	}
}

func (b *base) failed(path string, err error) error {
	cm := b.GetComponentMetadata()
	b.NotifyLoggers(types.ErrorLevel, "Artifact write failed",
		"component", cm,
		"event", "ArtifactWritten",
		"result", "FAILURE",
		"path", path,
		"error", err,
	)
	for _, s := range b.snapshotSensors() {
		s.InvokeOnError(cm, err)
	}
	return err
}

// prepare checks the bundle and creates the output directory.
func prepare(ctx context.Context, dir string, b types.Bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(b.Name) == "" {
		return &types.ConfigError{Field: "bundle", Reason: "name must not be empty"}
	}
	seen := make(map[string]struct{}, len(b.Arrays))
	for _, a := range b.Arrays {
		if a.Name == "" {
			return &types.ConfigError{Field: "bundle", Reason: fmt.Sprintf("%s: array without a name", b.Name)}
		}
		if _, dup := seen[a.Name]; dup {
			return &types.ConfigError{Field: "bundle", Reason: fmt.Sprintf("%s: duplicate array %q", b.Name, a.Name)}
		}
		seen[a.Name] = struct{}{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", dir, err)
	}
	return nil
}

// New builds the sink for cfg.Format rooted at cfg.PathToSave.
func New(cfg types.OutputConfig, options ...types.Option[types.ResultSink]) (types.ResultSink, error) {
	var out types.ResultSink
	switch strings.ToLower(cfg.Format) {
	case FormatNPZ, "":
		out = NewNPZSink(cfg.PathToSave)
	case FormatParquet:
		p, err := NewParquetSink(cfg.PathToSave, cfg.ParquetCompression)
		if err != nil {
			return nil, err
		}
		out = p
	case FormatBoth:
		p, err := NewParquetSink(cfg.PathToSave, cfg.ParquetCompression)
		if err != nil {
			return nil, err
		}
		out = NewMultiSink(NewNPZSink(cfg.PathToSave), p)
	default:
		return nil, fmt.Errorf("output format %q: %w", cfg.Format, types.ErrUnsupportedFormat)
	}
	for _, opt := range options {
		if opt != nil {
			opt(out)
		}
	}
	return out, nil
}
