package sensor

import (
	"sync"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Sensor provides callback hooks for sampler and sink telemetry.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnStart           []func(types.ComponentMetadata)
	OnSample          []func(types.ComponentMetadata, float64)
	OnSkip            []func(types.ComponentMetadata, float64)
	OnComplete        []func(types.ComponentMetadata, int)
	OnNoData          []func(types.ComponentMetadata)
	OnError           []func(types.ComponentMetadata, error)
	OnArtifactWritten []func(types.ComponentMetadata, string, int64)
	OnUpload          []func(types.ComponentMetadata, string, int64)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
	meters       []types.Meter
	metersLock   sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   uuid.NewString(),
			Type: "SENSOR",
		},
	}

	for _, opt := range s.decorateCallbacks(options...) {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}
