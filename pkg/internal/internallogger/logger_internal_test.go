package internallogger

import (
	"testing"
	"time"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

func observed(t *testing.T, level zapcore.Level) (*ZapLoggerAdapter, *observer.ObservedLogs) {
	t.Helper()
	logger := NewLogger()
	core, obs := observer.New(level)
	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()
	return logger, obs
}

func TestLog_PairsKeysAndValues(t *testing.T) {
	logger, obs := observed(t, zapcore.DebugLevel)

	logger.Log(types.InfoLevel, "msg", "a", "b", 123, "skip", "c", 3, "orphan")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 2 || fields[0].Key != "a" || fields[1].Key != "c" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestLog_RespectsCoreLevel(t *testing.T) {
	logger, obs := observed(t, zapcore.WarnLevel)

	logger.Log(types.InfoLevel, "info")
	logger.Log(types.WarnLevel, "warn")

	entries := obs.All()
	if len(entries) != 1 || entries[0].Entry.Level != zapcore.WarnLevel {
		t.Fatalf("expected a single warn entry, got %+v", entries)
	}
}

func TestLog_EncodesSimulationValues(t *testing.T) {
	logger, obs := observed(t, zapcore.DebugLevel)

	logger.Log(types.WarnLevel, "no data",
		"component", &types.ComponentMetadata{ID: "id", Type: "FIELD_SAMPLER"},
		"error", types.ErrNoData,
		"center", types.Vector3{X: 0, Y: 0.12, Z: 0},
		"field", types.ComponentEy,
		"region", types.Region{Size: types.Vector3{X: 4.7, Y: 4.43}},
		"frame", mat.NewDense(3, 4, nil),
		"elapsed", 2*time.Second,
	)

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if comp, ok := ctx["component"].(map[string]string); !ok || comp["type"] != "FIELD_SAMPLER" {
		t.Fatalf("unexpected component field: %#v", ctx["component"])
	}
	if ctx["error"] != types.ErrNoData.Error() {
		t.Fatalf("unexpected error field: %#v", ctx["error"])
	}
	if ctx["field"] != "Ey" {
		t.Fatalf("unexpected field component: %#v", ctx["field"])
	}
	if ctx["elapsed"] != 2*time.Second {
		t.Fatalf("unexpected duration: %#v", ctx["elapsed"])
	}
	dims, ok := ctx["frame"].([]interface{})
	if !ok || len(dims) != 2 {
		t.Fatalf("expected frame to be logged as its shape, got %#v", ctx["frame"])
	}
	for _, key := range []string{"center", "region"} {
		if _, ok := ctx[key]; !ok {
			t.Fatalf("expected %s field", key)
		}
	}
}

func TestLog_NilLoggerNoPanic(t *testing.T) {
	logger := NewLogger()
	logger.mu.Lock()
	logger.logger = nil
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg")
	if err := logger.Flush(); err != nil {
		t.Fatalf("expected nil flush error, got %v", err)
	}
}

func TestConvertLevel_RoundTrip(t *testing.T) {
	for lvl := types.DebugLevel; lvl <= types.FatalLevel; lvl++ {
		if got := convertZapLevel(ConvertLevel(lvl)); got != lvl {
			t.Fatalf("round trip of %v gave %v", lvl, got)
		}
	}
	if got := ConvertLevel(types.LogLevel(99)); got != zapcore.InfoLevel {
		t.Fatalf("expected default zapcore.InfoLevel, got %v", got)
	}
	if got := ConvertLevel(types.LogLevel(-1)); got != zapcore.InfoLevel {
		t.Fatalf("expected default zapcore.InfoLevel, got %v", got)
	}
	if got := convertZapLevel(zapcore.Level(99)); got != types.InfoLevel {
		t.Fatalf("expected default types.InfoLevel, got %v", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]types.LogLevel{
		"debug":   types.DebugLevel,
		" Info ":  types.InfoLevel,
		"warn":    types.WarnLevel,
		"WARNING": types.WarnLevel,
		"error":   types.ErrorLevel,
		"dpanic":  types.DPanicLevel,
		"panic":   types.PanicLevel,
		"fatal":   types.FatalLevel,
		"bogus":   types.InfoLevel,
		"":        types.InfoLevel,
	}
	for input, expect := range cases {
		if got := parseLogLevel(input); got != expect {
			t.Fatalf("parseLogLevel(%q) = %v, expected %v", input, got, expect)
		}
	}
}
