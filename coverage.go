package navball

import "fmt"

// widthEpsilon keeps the coverage ratio finite for zero-width lines.
const widthEpsilon = 1e-9

// clamp01 restricts x to [0, 1].
func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

// lineCoverage converts a distance and half-width, both in pixels, into a
// quadratic falloff coverage in [0, 1]. Coverage is exactly 0 once the
// distance reaches the width; a zero-width line only lights distance 0.
func lineCoverage(dist, width float64) float64 {
	if dist >= width && dist > 0 {
		return 0
	}
	t := 1 - clamp01(dist/(width+widthEpsilon))
	return t * t
}

// rampCoverage is the linear falloff from 0 at lo to 1 at hi.
func rampCoverage(v, lo, hi float64) float64 {
	return clamp01((v - lo) / (hi - lo + widthEpsilon))
}

// CoverageField combines a pixel-distance field and a half-width field of
// the same shape into a coverage field.
func CoverageField(ex Executor, distPx, widthPx *Field) (*Field, error) {
	cov, err := Zip(ex, distPx, widthPx, lineCoverage)
	if err != nil {
		return nil, fmt.Errorf("coverage: %w", err)
	}
	return cov, nil
}

// Composite returns the pixel-wise maximum of the family coverages. A pixel
// lit by several families is as bright as its brightest family, never
// brighter.
func Composite(ex Executor, coverages ...*Field) (*Field, error) {
	mask, err := Max(ex, coverages...)
	if err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}
	return mask, nil
}
