package internallogger

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func setInitialField(cfg *zap.Config, key string, value interface{}) {
	if key == "" {
		return
	}
	if cfg.InitialFields == nil {
		cfg.InitialFields = map[string]interface{}{}
	}
	cfg.InitialFields[key] = value
}

// LoggerWithLevel sets the starting level by name (debug, info, warn, ...).
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, _ *int) {
		*lvl = ConvertLevel(parseLogLevel(levelStr))
		cfg.Level = zap.NewAtomicLevelAt(*lvl)
	}
}

// LoggerWithDevelopment switches stdout to the console encoder and makes
// DPanic panic.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *zap.Config, _ *zapcore.Level, _ *int) {
		cfg.Development = dev
	}
}

// LoggerWithFields attaches constant fields to every line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(cfg *zap.Config, _ *zapcore.Level, _ *int) {
		for key, value := range fields {
			setInitialField(cfg, key, value)
		}
	}
}

// LoggerWithSchema overrides the log schema identifier.
func LoggerWithSchema(schema string) LoggerOption {
	return func(cfg *zap.Config, _ *zapcore.Level, _ *int) {
		setInitialField(cfg, logschema.FieldSchema, schema)
	}
}

// LoggerWithRun tags every line with the run identifier and simulation name.
func LoggerWithRun(runID, simName string) LoggerOption {
	return func(cfg *zap.Config, _ *zapcore.Level, _ *int) {
		setInitialField(cfg, logschema.FieldRunID, runID)
		setInitialField(cfg, logschema.FieldSimName, simName)
	}
}

// LoggerWithoutCaller drops the caller field.
func LoggerWithoutCaller() LoggerOption {
	return func(cfg *zap.Config, _ *zapcore.Level, _ *int) {
		cfg.DisableCaller = true
	}
}

// ZapAdapterWithCallerSkip skips additional caller frames.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(_ *zap.Config, _ *zapcore.Level, callerDepth *int) {
		*callerDepth += skip
	}
}
