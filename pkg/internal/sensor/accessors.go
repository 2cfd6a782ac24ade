package sensor

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	metadata := s.componentMetadata
	s.metadataLock.Unlock()
	return metadata
}

// SetComponentMetadata updates the name and id, keeping the type.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
	s.metadataLock.Unlock()
}

// GetMeters returns a copy of configured meters.
func (s *Sensor) GetMeters() []types.Meter {
	return s.snapshotMeters()
}
