package builder

import (
	internalLogger "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/internallogger"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/logschema"
)

type LoggerOption = internalLogger.LoggerOption

type Logger = types.Logger

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
	StderrSink SinkType = "stderr"
)

func NewLogger(options ...internalLogger.LoggerOption) types.Logger {
	return internalLogger.NewLogger(options...)
}

// NewLoggerFromConfig builds a logger for a run, adding a JSON file sink when
// cfg.File is set.
func NewLoggerFromConfig(cfg LogConfig, runID, simName string) (types.Logger, error) {
	l := internalLogger.NewLogger(
		internalLogger.LoggerWithLevel(cfg.Level),
		internalLogger.LoggerWithDevelopment(cfg.Development),
		internalLogger.LoggerWithRun(runID, simName),
	)
	if cfg.File != "" {
		if err := l.AddSink("file", types.SinkConfig{Type: string(FileSink), Config: map[string]interface{}{"path": cfg.File}}); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// WithLevel configures the logger to use the specified log level
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// WithDevelopment enables or disables development mode
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}

// LoggerWithRun tags every line with the run id and simulation name.
func LoggerWithRun(runID, simName string) LoggerOption {
	return internalLogger.LoggerWithRun(runID, simName)
}

// Log schema constants for the standard log format.
const (
	LogSchemaID    = logschema.SchemaID
	LogSchemaField = logschema.FieldSchema
)

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

// Export log levels to be accessible under the builder package
const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)

// LoggerWithoutCaller drops the caller field from every line.
func LoggerWithoutCaller() LoggerOption {
	return internalLogger.LoggerWithoutCaller()
}
