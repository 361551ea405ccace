package navball

import (
	"fmt"
	"math"
)

// VignetteField returns the size×size radial falloff field of v, 0 inside
// the inner radius rising linearly to 1 at the outer radius. Radii are
// fractions of half the size.
func VignetteField(ex Executor, v VignetteConfig) (*Field, error) {
	s := Shape{Rows: v.Size, Cols: v.Size}
	if s.Empty() {
		return nil, fmt.Errorf("vignette %v: %w", s, ErrEmptyShape)
	}
	half := float64(v.Size) / 2
	return generate(ex, s, func(y, x int) float64 {
		r := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
		return rampCoverage(r, v.Inner, v.Outer)
	}), nil
}

// Vignette renders the vignette as an alpha mask.
func Vignette(ex Executor, v VignetteConfig) (*Mask, error) {
	f, err := VignetteField(ex, v)
	if err != nil {
		return nil, err
	}
	return maskFromField(ex, f), nil
}

// maskFromField scales a [0, 1] field to 0..255, truncating.
func maskFromField(ex Executor, f *Field) *Mask {
	s := f.Shape()
	m := NewMask(s.Cols, s.Rows)
	ex.Rows(s.Rows, func(y0, y1 int) {
		for i := y0 * s.Cols; i < y1*s.Cols; i++ {
			m.data[i] = toByte(f.data[i] * 255)
		}
	})
	return m
}
