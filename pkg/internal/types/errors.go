package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig marks configuration that fails validation before any engine interaction.
	ErrInvalidConfig = errors.New("splitbar: invalid configuration")

	// ErrShapeMismatch marks a grid shape that changed inside one series or between paired maps.
	ErrShapeMismatch = errors.New("splitbar: shape mismatch")

	// ErrUnexpectedShape marks a field whose dimensionality is not the one the consumer requires.
	ErrUnexpectedShape = errors.New("splitbar: unexpected field shape")

	// ErrNoData marks a reduction that collected zero qualifying samples.
	ErrNoData = errors.New("splitbar: no data collected")

	// ErrNoFiniteGain marks a gain map without a single defined element.
	ErrNoFiniteGain = errors.New("splitbar: gain map has no finite elements")

	// ErrUnsupportedFormat marks an unknown output format or compression name.
	ErrUnsupportedFormat = errors.New("splitbar: unsupported format")
)

// ConfigError names the offending configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// ShapeError reports the expected and observed shape of an array.
type ShapeError struct {
	Op         string
	WantRows   int
	WantCols   int
	GotRows    int
	GotCols    int
	Unexpected bool // dimensionality is wrong rather than the extent
}

func (e *ShapeError) Error() string {
	if e.Unexpected {
		return fmt.Sprintf("%s: %v: got %dx%d", e.Op, ErrUnexpectedShape, e.GotRows, e.GotCols)
	}
	return fmt.Sprintf("%s: %v: want %dx%d, got %dx%d", e.Op, ErrShapeMismatch, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

func (e *ShapeError) Unwrap() error {
	if e.Unexpected {
		return ErrUnexpectedShape
	}
	return ErrShapeMismatch
}
