package builder

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// ComponentMetadata identifies a component in logs and sensor callbacks.
type ComponentMetadata = types.ComponentMetadata

type (
	Config            = params.Config
	LogConfig         = params.LogConfig
	SimulationConfig  = types.SimulationConfig
	OutputConfig      = types.OutputConfig
	UploadConfig      = types.UploadConfig
	Vector3           = types.Vector3
	Region            = types.Region
	FieldComponent    = types.FieldComponent
	Field             = types.Field
	Engine            = types.Engine
	EngineFactory     = types.EngineFactory
	StepFunc          = types.StepFunc
	FieldSampler      = types.FieldSampler
	ResultSink        = types.ResultSink
	Bundle            = types.Bundle
	NamedArray        = types.NamedArray
	LineProfileSeries = types.LineProfileSeries
	MaxFieldMap       = types.MaxFieldMap
	GainMap           = types.GainMap
	ConfigError       = types.ConfigError
	ShapeError        = types.ShapeError
)

const (
	ComponentEx  = types.ComponentEx
	ComponentEy  = types.ComponentEy
	ComponentHz  = types.ComponentHz
	ComponentEps = types.ComponentEps
)

// Sentinel errors.
var (
	ErrInvalidConfig     = types.ErrInvalidConfig
	ErrShapeMismatch     = types.ErrShapeMismatch
	ErrUnexpectedShape   = types.ErrUnexpectedShape
	ErrNoData            = types.ErrNoData
	ErrNoFiniteGain      = types.ErrNoFiniteGain
	ErrUnsupportedFormat = types.ErrUnsupportedFormat
)
