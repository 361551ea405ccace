package navball

import (
	"fmt"
	"math"
)

const (
	degToRad = math.Pi / 180
	twoPi    = 2 * math.Pi
)

// wrapAngle maps a onto one 2π period starting at -π, computing
// ((a+π) mod 2π) - π with a floored modulo so negative inputs land in range.
func wrapAngle(a float64) float64 {
	m := math.Mod(a+math.Pi, twoPi)
	if m < 0 {
		m += twoPi
	}
	return m - math.Pi
}

// pixelLon returns the longitude of the center of column x.
func pixelLon(x, width int, seam float64) float64 {
	u := (float64(x) + 0.5) / float64(width)
	return wrapAngle(twoPi*u - math.Pi + seam)
}

// pixelLat returns the latitude of the center of row y.
func pixelLat(y, height int, origin Origin) float64 {
	v := (float64(y) + 0.5) / float64(height)
	if origin == OriginTop {
		return math.Pi * (0.5 - v)
	}
	return math.Pi * (v - 0.5)
}

// latRow returns the fractional row coordinate (pixel edges at integers) of
// latitude lat, the inverse of the vertical mapping.
func latRow(lat float64, height int, origin Origin) float64 {
	v := 0.5 - lat/math.Pi
	if origin == OriginBottom {
		v = lat/math.Pi + 0.5
	}
	return v * float64(height)
}

// MapCoordinates computes the longitude and latitude fields of the
// equirectangular pixel grid described by g.
//
// Longitude depends only on the column and latitude only on the row, so each
// is computed once as a 1×W row or H×1 column and then expanded to H×W.
func MapCoordinates(ex Executor, g GridConfig) (lon, lat *Field, err error) {
	lonRow := make([]float64, g.Width)
	for x := range lonRow {
		lonRow[x] = pixelLon(x, g.Width, g.SeamOffset)
	}
	latCol := make([]float64, g.Height)
	for y := range latCol {
		latCol[y] = pixelLat(y, g.Height, g.Origin)
	}

	lon, err = ExpandRow(ex, lonRow, g.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("longitude field: %w", err)
	}
	lat, err = ExpandCol(ex, latCol, g.Width)
	if err != nil {
		return nil, nil, fmt.Errorf("latitude field: %w", err)
	}
	return lon, lat, nil
}
