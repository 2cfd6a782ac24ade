package engine

import (
	"fmt"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// ReadField copies a component over region. Rows index x and columns index y.
// A region with zero extent along exactly one in-plane axis yields a 1D
// profile along the other axis.
func (e *Engine) ReadField(component types.FieldComponent, region types.Region) (types.Field, error) {
	i0, i1, err := e.span(region.Center.X, region.Size.X, e.cfg.Cell.X, e.nx, "region x")
	if err != nil {
		return types.Field{}, err
	}
	j0, j1, err := e.span(region.Center.Y, region.Size.Y, e.cfg.Cell.Y, e.ny, "region y")
	if err != nil {
		return types.Field{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var src []float64
	switch component {
	case types.ComponentEx:
		src = e.ex
	case types.ComponentEy:
		src = e.ey
	case types.ComponentHz:
		src = e.hz
	case types.ComponentEps:
		src = e.eps
	default:
		return types.Field{}, &types.ConfigError{Field: "component", Reason: fmt.Sprintf("unknown component %q", component)}
	}

	rows, cols := i1-i0+1, j1-j0+1
	data := make([]float64, 0, rows*cols)
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			data = append(data, src[e.index(i, j)])
		}
	}

	flatX := region.Size.X <= 0
	flatY := region.Size.Y <= 0
	if flatX != flatY {
		return types.NewProfile(data), nil
	}
	return types.NewMap(mat.NewDense(rows, cols, data)), nil
}
