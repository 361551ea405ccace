package label

import (
	"image"
	"math"

	"github.com/gogpu/navball/internal/stroke"
)

// glyphMasks holds the rasterized fill and stroke coverage of one label.
// Both masks share the same bounds, whose origin is the top-left corner of
// the label box.
type glyphMasks struct {
	fill, stroke *image.Alpha

	// cx, cy is the center of the ink box (outline bounds grown by the
	// stroke) in mask coordinates.
	cx, cy float64
}

// renderMasks rasterizes o and its outline stroked with round joins to
// radius r pixels. The stroke mask also covers the fill.
func renderMasks(o *outline, r float64) *glyphMasks {
	pad := int(math.Ceil(r)) + 1
	x0 := math.Floor(o.minX)
	y0 := math.Floor(o.minY)
	w := int(math.Ceil(o.maxX)-x0) + 2*pad
	h := int(math.Ceil(o.maxY)-y0) + 2*pad

	dx := float64(pad) - x0
	dy := float64(pad) - y0

	fill := image.NewAlpha(image.Rect(0, 0, w, h))
	rasterize(o.segs, w, h, dx, dy).Draw(fill, fill.Bounds(), image.Opaque, image.Point{})

	outer := image.NewAlpha(fill.Bounds())
	band := stroke.Expand(o.segs, stroke.Style{Width: 2 * r, Join: stroke.JoinRound})
	if len(band) > 0 {
		rasterize(band, w, h, dx, dy).Draw(outer, outer.Bounds(), image.Opaque, image.Point{})
	}
	for i, a := range fill.Pix {
		outer.Pix[i] = max(outer.Pix[i], a)
	}

	return &glyphMasks{
		fill:   fill,
		stroke: outer,
		cx:     (o.minX+o.maxX)/2 + dx,
		cy:     (o.minY+o.maxY)/2 + dy,
	}
}
