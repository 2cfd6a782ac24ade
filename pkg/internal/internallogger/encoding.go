package internallogger

import (
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/mat"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       logschema.FieldTimestamp,
		LevelKey:      logschema.FieldLevel,
		NameKey:       logschema.FieldLogger,
		CallerKey:     logschema.FieldCaller,
		MessageKey:    logschema.FieldMessage,
		StacktraceKey: logschema.FieldStack,
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// zapFields pairs up keysAndValues. A trailing key without a value and
// pairs whose key is not a string are dropped.
func zapFields(keysAndValues []interface{}) []zap.Field {
	n := len(keysAndValues) &^ 1
	fields := make([]zap.Field, 0, n/2)
	for i := 0; i < n; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || key == "" {
			continue
		}
		fields = append(fields, encodeValue(key, keysAndValues[i+1]))
	}
	return fields
}

// encodeValue renders simulation values compactly. Matrices are logged by
// shape only; dumping a frame into a log line is never useful.
func encodeValue(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case types.ComponentMetadata:
		return zap.Any(key, componentToLogMap(v))
	case *types.ComponentMetadata:
		if v == nil {
			return zap.Any(key, nil)
		}
		return zap.Any(key, componentToLogMap(*v))
	case error:
		return zap.NamedError(key, v)
	case types.FieldComponent:
		return zap.String(key, string(v))
	case types.Vector3:
		return zap.Float64s(key, []float64{v.X, v.Y, v.Z})
	case types.Region:
		return zap.Any(key, map[string][]float64{
			"center": {v.Center.X, v.Center.Y, v.Center.Z},
			"size":   {v.Size.X, v.Size.Y, v.Size.Z},
		})
	case mat.Matrix:
		r, c := v.Dims()
		return zap.Ints(key, []int{r, c})
	case time.Duration:
		return zap.Duration(key, v)
	case []float64:
		return zap.Float64s(key, v)
	}
	return zap.Any(key, value)
}

func componentToLogMap(meta types.ComponentMetadata) map[string]string {
	return map[string]string{
		"id":   meta.ID,
		"type": meta.Type,
		"name": meta.Name,
	}
}

func fieldsFromMap(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if key != "" {
			out = append(out, encodeValue(key, value))
		}
	}
	return out
}
