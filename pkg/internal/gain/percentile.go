package gain

import (
	"fmt"
	"math"
	"sort"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Percentile returns the p-th percentile (0..100) of the non-NaN values using
// linear interpolation between closest ranks at h = (n-1)*p/100.
func Percentile(values []float64, p float64) (float64, error) {
	if p < 0 || p > 100 || math.IsNaN(p) {
		return 0, &types.ConfigError{Field: "percentile", Reason: fmt.Sprintf("must be in [0, 100], got %g", p)}
	}
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return 0, fmt.Errorf("percentile of %d values: %w", len(values), types.ErrNoData)
	}
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p / 100
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}
