package engine

import (
	"fmt"
	"math"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// cellCenter returns the physical coordinate of cell (i, j); the cell spans
// [-X/2, X/2] x [-Y/2, Y/2].
func (e *Engine) cellCenter(i, j int) (float64, float64) {
	x := -e.cfg.Cell.X/2 + (float64(i)+0.5)*e.dx
	y := -e.cfg.Cell.Y/2 + (float64(j)+0.5)*e.dx
	return x, y
}

// inPlane reports whether a block centred at z intersects the z = 0 plane.
func (e *Engine) inPlane(z float64) bool {
	return math.Abs(z) <= e.cfg.ZHeight/2+1e-12
}

func (e *Engine) buildStructure(bar Material) {
	n := e.nx * e.ny
	e.eps = make([]float64, n)
	sigma := make([]float64, n)
	sigmaPML := make([]float64, n)
	for k := range e.eps {
		e.eps[k] = 1.0
	}

	for _, c := range e.cfg.Centers {
		if !e.inPlane(c.Z) {
			continue
		}
		x0, x1 := c.X-e.cfg.XWidth/2, c.X+e.cfg.XWidth/2
		y0, y1 := c.Y-e.cfg.YLength/2, c.Y+e.cfg.YLength/2
		for i := 0; i < e.nx; i++ {
			for j := 0; j < e.ny; j++ {
				x, y := e.cellCenter(i, j)
				if x >= x0 && x <= x1 && y >= y0 && y <= y1 {
					k := e.index(i, j)
					e.eps[k] = bar.Epsilon
					sigma[k] = bar.Conductivity
				}
			}
		}
	}

	if e.cfg.PML > 0 {
		sigmaMax := 0.8 * float64(gradingOrder+1) / e.dx
		for i := 0; i < e.nx; i++ {
			for j := 0; j < e.ny; j++ {
				x, y := e.cellCenter(i, j)
				dxEdge := e.cfg.Cell.X/2 - math.Abs(x)
				dyEdge := e.cfg.Cell.Y/2 - math.Abs(y)
				depth := math.Max(e.cfg.PML-dxEdge, e.cfg.PML-dyEdge)
				if depth <= 0 {
					continue
				}
				ratio := math.Min(depth/e.cfg.PML, 1)
				sigmaPML[e.index(i, j)] = sigmaMax * math.Pow(ratio, gradingOrder)
			}
		}
	}

	e.caE = make([]float64, n)
	e.cbE = make([]float64, n)
	e.daH = make([]float64, n)
	e.dbH = make([]float64, n)
	for k := 0; k < n; k++ {
		lossE := (sigma[k] + sigmaPML[k]*e.eps[k]) * e.dt / (2 * e.eps[k])
		e.caE[k] = (1 - lossE) / (1 + lossE)
		e.cbE[k] = (e.dt / (e.eps[k] * e.dx)) / (1 + lossE)

		lossH := sigmaPML[k] * e.dt / 2
		e.daH[k] = (1 - lossH) / (1 + lossH)
		e.dbH[k] = (e.dt / e.dx) / (1 + lossH)
	}
}

func (e *Engine) placeSource() error {
	i0, i1, err := e.span(e.cfg.SourcePos.X, e.cfg.SourceSize.X, e.cfg.Cell.X, e.nx, "source x")
	if err != nil {
		return err
	}
	j0, j1, err := e.span(e.cfg.SourcePos.Y, e.cfg.SourceSize.Y, e.cfg.Cell.Y, e.ny, "source y")
	if err != nil {
		return err
	}
	e.source = e.source[:0]
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			e.source = append(e.source, e.index(i, j))
		}
	}
	return nil
}

// span maps the interval [center - size/2, center + size/2] along one axis to
// an inclusive range of cell indices. A zero size selects the nearest cell.
func (e *Engine) span(center, size, extent float64, n int, field string) (int, int, error) {
	tol := e.dx / 2
	lo, hi := center-size/2, center+size/2
	if lo < -extent/2-tol || hi > extent/2+tol {
		return 0, 0, &types.ConfigError{Field: field, Reason: fmt.Sprintf("[%g, %g] lies outside the cell [%g, %g]", lo, hi, -extent/2, extent/2)}
	}
	toIndex := func(v float64) int {
		idx := int(math.Floor((v + extent/2) / e.dx))
		if idx < 0 {
			idx = 0
		}
		if idx > n-1 {
			idx = n - 1
		}
		return idx
	}
	if size <= 0 {
		k := toIndex(center)
		return k, k, nil
	}
	i0 := int(math.Ceil((lo+extent/2)/e.dx - 0.5 - 1e-9))
	i1 := int(math.Floor((hi+extent/2)/e.dx - 0.5 + 1e-9))
	if i0 < 0 || lo <= -extent/2+tol {
		i0 = 0
	}
	if i1 > n-1 || hi >= extent/2-tol {
		i1 = n - 1
	}
	if i1 < i0 {
		k := toIndex(center)
		return k, k, nil
	}
	return i0, i1, nil
}
