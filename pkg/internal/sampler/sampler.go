// Package sampler collects time-windowed field data from an engine.
//
// Both collection operations rewind the engine to t=0, advance it to the end
// of the window and reduce every exported frame as it arrives; frames are
// never retained.
package sampler

import (
	"sync"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// FieldSampler implements types.FieldSampler.
type FieldSampler struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorsLock sync.Mutex
}

// NewFieldSampler constructs a sampler with optional configuration.
func NewFieldSampler(options ...types.Option[types.FieldSampler]) types.FieldSampler {
	s := &FieldSampler{
		componentMetadata: types.ComponentMetadata{
			ID:   uuid.NewString(),
			Type: "FIELD_SAMPLER",
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}
