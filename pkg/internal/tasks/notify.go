package tasks

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// ConnectLogger attaches loggers.
func (r *Runner) ConnectLogger(loggers ...types.Logger) {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			r.loggers = append(r.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors.
func (r *Runner) ConnectSensor(sensors ...types.Sensor) {
	r.sensorsLock.Lock()
	defer r.sensorsLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			r.sensors = append(r.sensors, s)
		}
	}
}

// GetComponentMetadata returns the runner metadata.
func (r *Runner) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

func (r *Runner) snapshotLoggers() []types.Logger {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	return append([]types.Logger(nil), r.loggers...)
}

func (r *Runner) snapshotSensors() []types.Sensor {
	r.sensorsLock.Lock()
	defer r.sensorsLock.Unlock()
	return append([]types.Sensor(nil), r.sensors...)
}

// NotifyLoggers fans a structured message out to every attached logger.
func (r *Runner) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range r.snapshotLoggers() {
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
