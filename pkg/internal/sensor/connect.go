package sensor

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// ConnectLogger registers loggers for sensor output.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	n := 0
	for _, logger := range loggers {
		if logger != nil {
			loggers[n] = logger
			n++
		}
	}
	if n == 0 {
		return
	}

	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers[:n]...)
	s.loggersLock.Unlock()
}

// ConnectMeter registers meters that receive counter updates.
func (s *Sensor) ConnectMeter(meters ...types.Meter) {
	n := 0
	for _, m := range meters {
		if m != nil {
			meters[n] = m
			n++
		}
	}
	if n == 0 {
		return
	}

	s.metersLock.Lock()
	s.meters = append(s.meters, meters[:n]...)
	s.metersLock.Unlock()
}
