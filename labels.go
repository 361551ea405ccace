package navball

import (
	"fmt"
	"image/draw"
	"math"
)

// Label is one piece of text centered on a point of the texture.
type Label struct {
	Text string
	X, Y float64
	Bold bool
}

// LabelDrawer draws stroke-outlined text centered on a point. The label
// package provides the default implementation.
type LabelDrawer interface {
	DrawLabel(dst draw.Image, l Label) error
}

// degreeText formats a label value: "0", "180" and otherwise a signed
// integer such as "+30" or "-75".
func degreeText(deg int) string {
	switch {
	case deg == 0:
		return "0"
	case deg == 180 || deg == -180:
		return "180"
	default:
		return fmt.Sprintf("%+d", deg)
	}
}

// Layout returns the labels of the texture described by g: longitude labels
// along the equator and two columns of latitude labels.
func (c LabelConfig) Layout(g GridConfig) []Label {
	if !c.Enabled {
		return nil
	}
	w, h := float64(g.Width), float64(g.Height)
	var out []Label

	// Longitudes above the equator. A label landing on the texture edge is
	// repeated on the opposite edge.
	seamDeg := g.SeamOffset / degToRad
	y := h/2 - c.EquatorOffset
	for lon := -180 + c.LonStep; lon <= 180; lon += c.LonStep {
		u := (float64(lon) + 180 - seamDeg) / 360
		u -= math.Floor(u)
		s := degreeText(lon)
		out = append(out, Label{Text: s, X: u * w, Y: y})
		if u == 0 {
			out = append(out, Label{Text: s, X: w, Y: y})
		}
	}

	// Latitudes near the right edge and left of the center meridian.
	for lat := -90 + c.LatStep; lat < 90; lat += c.LatStep {
		y := latRow(float64(lat)*degToRad, g.Height, g.Origin)
		s := degreeText(lat)
		out = append(out,
			Label{Text: s, X: w - c.EdgeInset, Y: y},
			Label{Text: s, X: w/2 - c.EdgeInset, Y: y},
		)
	}

	if c.Cardinals {
		north, south := "N", "S"
		if g.Origin == OriginBottom {
			north, south = south, north
		}
		const margin = 24
		out = append(out,
			Label{Text: north, X: w / 2, Y: margin, Bold: true},
			Label{Text: south, X: w / 2, Y: h - margin, Bold: true},
			Label{Text: "E", X: 3 * w / 4, Y: h / 2, Bold: true},
			Label{Text: "W", X: w / 4, Y: h / 2, Bold: true},
		)
	}
	return out
}
