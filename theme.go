package navball

import (
	"fmt"
	"image/color"
	"math"
)

// backgroundColor returns the theme color, in 0..255 units, of a row at
// latitude lat.
func (t Theme) backgroundColor(lat float64) [3]float64 {
	up := [3]float64{float64(t.Upper.R), float64(t.Upper.G), float64(t.Upper.B)}
	lo := [3]float64{float64(t.Lower.R), float64(t.Lower.G), float64(t.Lower.B)}

	switch t.Background {
	case BackgroundGradient:
		s := 0.5 - lat/math.Pi
		return [3]float64{
			up[0] + (lo[0]-up[0])*s,
			up[1] + (lo[1]-up[1])*s,
			up[2] + (lo[2]-up[2])*s,
		}
	default:
		if lat >= 0 {
			return up
		}
		return lo
	}
}

// ComposeTheme paints the theme background under the grid mask:
//
//	out = background·(1 − α·mask) + gridColor·(α·mask)
//
// The background depends only on the row, so it is evaluated once per row.
// The result is opaque.
func ComposeTheme(ex Executor, g GridConfig, t Theme, mask *Field, gridColor color.RGBA, alpha float64) (*Pixmap, error) {
	if err := mask.Shape().check("compose "+t.Name, g.Shape()); err != nil {
		return nil, err
	}

	grid := [3]float64{float64(gridColor.R), float64(gridColor.G), float64(gridColor.B)}
	pm := NewPixmap(g.Width, g.Height)

	ex.Rows(g.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			bg := t.backgroundColor(pixelLat(y, g.Height, g.Origin))
			for x := 0; x < g.Width; x++ {
				k := alpha * mask.data[y*g.Width+x]
				i := (y*g.Width + x) * 4
				for c := range 3 {
					pm.data[i+c] = toByte(bg[c]*(1-k) + grid[c]*k)
				}
				pm.data[i+3] = 255
			}
		}
	})
	return pm, nil
}

// ThemeError reports which theme failed to render.
type ThemeError struct {
	Theme string
	Err   error
}

func (e *ThemeError) Error() string {
	return fmt.Sprintf("navball: theme %s: %v", e.Theme, e.Err)
}

func (e *ThemeError) Unwrap() error { return e.Err }
