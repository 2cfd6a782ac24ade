package internallogger

import (
	"strings"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

var levelNames = map[string]types.LogLevel{
	"debug":   types.DebugLevel,
	"info":    types.InfoLevel,
	"warn":    types.WarnLevel,
	"warning": types.WarnLevel,
	"error":   types.ErrorLevel,
	"dpanic":  types.DPanicLevel,
	"panic":   types.PanicLevel,
	"fatal":   types.FatalLevel,
}

// zapLevels is indexed by types.LogLevel.
var zapLevels = [...]zapcore.Level{
	types.DebugLevel:  zapcore.DebugLevel,
	types.InfoLevel:   zapcore.InfoLevel,
	types.WarnLevel:   zapcore.WarnLevel,
	types.ErrorLevel:  zapcore.ErrorLevel,
	types.DPanicLevel: zapcore.DPanicLevel,
	types.PanicLevel:  zapcore.PanicLevel,
	types.FatalLevel:  zapcore.FatalLevel,
}

// parseLogLevel maps a config string to a level; unknown names mean info.
func parseLogLevel(name string) types.LogLevel {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return types.InfoLevel
}

// ConvertLevel converts a types.LogLevel to a zap level.
func ConvertLevel(level types.LogLevel) zapcore.Level {
	if level < 0 || int(level) >= len(zapLevels) {
		return zapcore.InfoLevel
	}
	return zapLevels[level]
}

func convertZapLevel(level zapcore.Level) types.LogLevel {
	for lvl, zl := range zapLevels {
		if zl == level {
			return types.LogLevel(lvl)
		}
	}
	return types.InfoLevel
}
