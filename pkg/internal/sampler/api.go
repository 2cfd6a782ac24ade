package sampler

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// ConnectLogger attaches loggers.
func (s *FieldSampler) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			s.loggers = append(s.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors that observe sampling events.
func (s *FieldSampler) ConnectSensor(sensors ...types.Sensor) {
	s.sensorsLock.Lock()
	defer s.sensorsLock.Unlock()
	for _, sn := range sensors {
		if sn != nil {
			s.sensors = append(s.sensors, sn)
		}
	}
}

// GetComponentMetadata returns the sampler metadata.
func (s *FieldSampler) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata updates the name and id, keeping the type.
func (s *FieldSampler) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
	s.metadataLock.Unlock()
}

func (s *FieldSampler) snapshotSensors() []types.Sensor {
	s.sensorsLock.Lock()
	defer s.sensorsLock.Unlock()
	return append([]types.Sensor(nil), s.sensors...)
}
