package sink

import (
	"context"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// MultiSink writes every bundle to each child sink in order.
type MultiSink struct {
	base
	sinks []types.ResultSink
}

// NewMultiSink wraps the given sinks; nil entries are dropped.
func NewMultiSink(sinks ...types.ResultSink) *MultiSink {
	m := &MultiSink{base: newBase("MULTI_SINK")}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// ConnectLogger attaches loggers to the fan-out and every child.
func (m *MultiSink) ConnectLogger(loggers ...types.Logger) {
	m.base.ConnectLogger(loggers...)
	for _, s := range m.sinks {
		s.ConnectLogger(loggers...)
	}
}

// ConnectSensor attaches sensors to every child, which emit per-file events.
func (m *MultiSink) ConnectSensor(sensors ...types.Sensor) {
	m.base.ConnectSensor(sensors...)
	for _, s := range m.sinks {
		s.ConnectSensor(sensors...)
	}
}

// Write stops at the first failing child and returns the paths written so far.
func (m *MultiSink) Write(ctx context.Context, b types.Bundle) ([]string, error) {
	var paths []string
	for _, s := range m.sinks {
		p, err := s.Write(ctx, b)
		paths = append(paths, p...)
		if err != nil {
			return paths, err
		}
	}
	return paths, nil
}
