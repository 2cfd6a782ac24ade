package sink

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// WithLogger attaches loggers to the sink.
func WithLogger(loggers ...types.Logger) types.Option[types.ResultSink] {
	return func(s types.ResultSink) {
		s.ConnectLogger(loggers...)
	}
}

// WithSensor attaches sensors to the sink.
func WithSensor(sensors ...types.Sensor) types.Option[types.ResultSink] {
	return func(s types.ResultSink) {
		s.ConnectSensor(sensors...)
	}
}
