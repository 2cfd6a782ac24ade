package gain

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// NotifyLoggers fans a structured message out to every attached logger.
func (e *Estimator) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	e.loggersLock.Lock()
	loggers := append([]types.Logger(nil), e.loggers...)
	e.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		}
	}
}
