package types

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// NamedArray is one entry of a bundle: either a vector or a matrix.
type NamedArray struct {
	Name   string
	Vector []float64
	Matrix *mat.Dense
}

// Rows returns the array as row slices; a vector is a single row.
func (a NamedArray) Rows() [][]float64 {
	if a.Matrix == nil {
		return [][]float64{a.Vector}
	}
	r, _ := a.Matrix.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = mat.Row(nil, i, a.Matrix)
	}
	return out
}

// Bundle is an ordered set of named arrays persisted together.
type Bundle struct {
	Name   string
	Arrays []NamedArray
}

// AddVector appends a 1D array.
func (b *Bundle) AddVector(name string, v []float64) {
	b.Arrays = append(b.Arrays, NamedArray{Name: name, Vector: v})
}

// AddMatrix appends a 2D array.
func (b *Bundle) AddMatrix(name string, m *mat.Dense) {
	b.Arrays = append(b.Arrays, NamedArray{Name: name, Matrix: m})
}

// Get looks an array up by name.
func (b *Bundle) Get(name string) (NamedArray, bool) {
	for _, a := range b.Arrays {
		if a.Name == name {
			return a, true
		}
	}
	return NamedArray{}, false
}

// ResultSink persists bundles and reports the written paths.
type ResultSink interface {
	Write(ctx context.Context, b Bundle) ([]string, error)
	GetComponentMetadata() ComponentMetadata
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
}

// OutputConfig controls where and how bundles are written.
type OutputConfig struct {
	SimName            string `yaml:"sim_name"`
	PathToSave         string `yaml:"path_to_save"`
	Format             string `yaml:"format"` // "npz" | "parquet" | "both"
	ParquetCompression string `yaml:"parquet_compression"`
}
