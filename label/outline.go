package label

import (
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/navball/internal/stroke"
)

// toOp maps an sfnt segment op onto the stroke path command set.
func toOp(op sfnt.SegmentOp) (stroke.Op, int) {
	switch op {
	case sfnt.SegmentOpLineTo:
		return stroke.LineTo, 1
	case sfnt.SegmentOpQuadTo:
		return stroke.QuadTo, 2
	case sfnt.SegmentOpCubeTo:
		return stroke.CubeTo, 3
	default:
		return stroke.MoveTo, 1
	}
}

// outline is the combined glyph outline of a shaped string.
type outline struct {
	// segs is in pixel coordinates, y down.
	segs []stroke.Segment

	// Bounds of every on- and off-curve point.
	minX, minY, maxX, maxY float64
}

func (o *outline) empty() bool { return len(o.segs) == 0 }

// textOutline shapes s and gathers the outlines of all its glyphs at size
// pixels per em, with the baseline at y = 0.
func textOutline(f *Font, s string, size float64) (*outline, error) {
	glyphs := shape(f, s, size)
	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	o := &outline{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	for _, g := range glyphs {
		segs, err := f.sfnt.LoadGlyph(&buf, g.id, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("label: glyph %d of %q: %w", g.id, s, err)
		}
		for _, seg := range segs {
			op, n := toOp(seg.Op)
			out := stroke.Segment{Op: op}
			for i := range n {
				x := g.x + fixedToFloat(seg.Args[i].X)
				y := g.y + fixedToFloat(seg.Args[i].Y)
				out.Pts[i] = stroke.Point{X: x, Y: y}
				o.minX, o.maxX = min(o.minX, x), max(o.maxX, x)
				o.minY, o.maxY = min(o.minY, y), max(o.maxY, y)
			}
			o.segs = append(o.segs, out)
		}
	}
	return o, nil
}

// rasterize fills segs, translated by (dx, dy), into a w×h
// vector.Rasterizer using the nonzero winding rule. Every contour is closed.
func rasterize(segs []stroke.Segment, w, h int, dx, dy float64) *vector.Rasterizer {
	z := vector.NewRasterizer(w, h)
	pt := func(p stroke.Point) (float32, float32) {
		return float32(p.X + dx), float32(p.Y + dy)
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case stroke.MoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(s.Pts[0])
			z.MoveTo(x, y)
			open = true
		case stroke.LineTo:
			x, y := pt(s.Pts[0])
			z.LineTo(x, y)
		case stroke.QuadTo:
			bx, by := pt(s.Pts[0])
			cx, cy := pt(s.Pts[1])
			z.QuadTo(bx, by, cx, cy)
		case stroke.CubeTo:
			bx, by := pt(s.Pts[0])
			cx, cy := pt(s.Pts[1])
			ex, ey := pt(s.Pts[2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
		case stroke.Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
	return z
}
