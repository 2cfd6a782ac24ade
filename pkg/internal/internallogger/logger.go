package internallogger

import (
	"os"
	"sync"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, the starting level and the caller skip.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap. The stdout core is
// always present; file and stderr sinks can be attached and detached while
// a run is in progress.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	development bool
	sinks       map[string]sinkEntry
}

// NewLogger builds a logger writing JSON lines to stdout, or console lines
// in development mode.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	config.InitialFields = map[string]interface{}{
		logschema.FieldSchema: logschema.SchemaID,
	}
	level := zapcore.InfoLevel
	callerDepth := 3
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	z := &ZapLoggerAdapter{
		atomicLevel: zap.NewAtomicLevelAt(level),
		encConfig:   encoderConfig(),
		baseFields:  fieldsFromMap(config.InitialFields),
		callerDepth: callerDepth,
		callerOn:    !config.DisableCaller,
		development: config.Development,
		sinks:       make(map[string]sinkEntry),
	}
	enc := zapcore.NewJSONEncoder(z.encConfig)
	if z.development {
		enc = zapcore.NewConsoleEncoder(z.encConfig)
	}
	z.baseCore = zapcore.NewCore(enc, zapcore.Lock(os.Stdout), z.atomicLevel)

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()
	return z
}
