package sampler

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// NotifyLoggers fans a structured message out to every attached logger.
func (s *FieldSampler) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()

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
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (s *FieldSampler) notifyStart(c types.ComponentMetadata) {
	for _, sn := range s.snapshotSensors() {
		sn.InvokeOnStart(c)
	}
}

func (s *FieldSampler) notifySample(c types.ComponentMetadata, t float64) {
	for _, sn := range s.snapshotSensors() {
		sn.InvokeOnSample(c, t)
	}
}

func (s *FieldSampler) notifySkip(c types.ComponentMetadata, t float64) {
	for _, sn := range s.snapshotSensors() {
		sn.InvokeOnSkip(c, t)
	}
}

func (s *FieldSampler) notifyComplete(c types.ComponentMetadata, samples int) {
	for _, sn := range s.snapshotSensors() {
		sn.InvokeOnComplete(c, samples)
	}
}

func (s *FieldSampler) notifyNoData(c types.ComponentMetadata) {
	for _, sn := range s.snapshotSensors() {
		sn.InvokeOnNoData(c)
	}
}

func (s *FieldSampler) notifyError(c types.ComponentMetadata, err error) {
	for _, sn := range s.snapshotSensors() {
		sn.InvokeOnError(c, err)
	}
}
