package internallogger

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"go.uber.org/zap"
)

func (z *ZapLoggerAdapter) current() *zap.Logger {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.logger
}

// Log emits a log entry at the requested level with structured fields.
func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	logger := z.current()
	if logger == nil || logger.Core() == nil {
		fmt.Fprintln(os.Stderr, "internallogger: log called before initialization:", msg)
		return
	}
	if ce := logger.Check(ConvertLevel(level), msg); ce != nil {
		ce.Write(zapFields(keysAndValues)...)
	}
}

func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

// DPanic panics only when the logger runs in development mode.
func (z *ZapLoggerAdapter) DPanic(msg string, keysAndValues ...interface{}) {
	z.Log(types.DPanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Panic(msg string, keysAndValues ...interface{}) {
	z.Log(types.PanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Fatal(msg string, keysAndValues ...interface{}) {
	z.Log(types.FatalLevel, msg, keysAndValues...)
}

// GetLevel returns the configured log level.
func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return convertZapLevel(z.atomicLevel.Level())
}

// SetLevel changes the minimum level of every sink at once.
func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	z.atomicLevel.SetLevel(ConvertLevel(level))
}

// Flush syncs all sinks. Terminals and pipes reject fsync; those errors are
// ignored.
func (z *ZapLoggerAdapter) Flush() error {
	logger := z.current()
	if logger == nil {
		return nil
	}
	err := logger.Sync()
	if err == nil || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return nil
	}
	return err
}
