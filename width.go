package navball

import (
	"fmt"
	"math"
)

// onMeridian reports whether lon lies on the prime meridian or on one of the
// two quarter meridians |λ| = π/2.
func onMeridian(lon, eps float64) bool {
	a := math.Abs(lon)
	return a < eps || math.Abs(a-math.Pi/2) < eps
}

// onEquator reports whether lat lies on the equator.
func onEquator(lat, eps float64) bool {
	return math.Abs(lat) < eps
}

// taperFactor is cos(lat) clipped to [floor, 1].
func taperFactor(lat, floor float64) float64 {
	return min(max(math.Cos(lat), floor), 1)
}

// emphasis returns the multiplier a major line gets at the given position:
// scale on an emphasized axis, 1 elsewhere.
func emphasis(hit bool, scale float64) float64 {
	if hit {
		return scale
	}
	return 1
}

// tierWidth returns the configured base half-width for t, in pixels.
func (c GridConfig) tierWidth(t Tier) float64 {
	if t == TierMajor {
		return c.MajorWidth
	}
	return c.MinorWidth
}

// halfWidth evaluates the line half-width of fam at a single position.
// WidthField computes the same value for every pixel.
func (c GridConfig) halfWidth(fam Family, lon, lat float64) float64 {
	w := c.tierWidth(fam.Tier)
	if fam.Tier == TierMajor {
		if fam.Axis == AxisLon {
			w *= emphasis(onMeridian(lon, c.AxisEpsilon), c.MeridianScale)
		} else {
			w *= emphasis(onEquator(lat, c.AxisEpsilon), c.EquatorScale)
		}
	}
	if c.PoleTaper {
		w *= taperFactor(lat, c.TaperFloor)
	}
	return w
}

// WidthField returns the half-width field, in pixels, of family fam over the
// grid described by the lon and lat fields.
//
// The tier width is broadcast to the full grid shape first; emphasis and
// taper factors are then applied as same-shape fields, so a partially shaped
// intermediate can never reach a multiply.
func WidthField(ex Executor, c GridConfig, fam Family, lon, lat *Field) (*Field, error) {
	if err := lat.Shape().check("width "+fam.String(), lon.Shape()); err != nil {
		return nil, err
	}

	w, err := Full(lon.Shape(), c.tierWidth(fam.Tier))
	if err != nil {
		return nil, fmt.Errorf("width %v: %w", fam, err)
	}

	if fam.Tier == TierMajor {
		var factor *Field
		if fam.Axis == AxisLon {
			factor = lon.Map(ex, func(v float64) float64 {
				return emphasis(onMeridian(v, c.AxisEpsilon), c.MeridianScale)
			})
		} else {
			factor = lat.Map(ex, func(v float64) float64 {
				return emphasis(onEquator(v, c.AxisEpsilon), c.EquatorScale)
			})
		}
		if w, err = Mul(ex, w, factor); err != nil {
			return nil, fmt.Errorf("width %v emphasis: %w", fam, err)
		}
	}

	if c.PoleTaper {
		taper := lat.Map(ex, func(v float64) float64 {
			return taperFactor(v, c.TaperFloor)
		})
		if w, err = Mul(ex, w, taper); err != nil {
			return nil, fmt.Errorf("width %v taper: %w", fam, err)
		}
	}
	return w, nil
}
