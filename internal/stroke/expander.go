package stroke

import "math"

// Op is a path command.
type Op uint8

// Path commands.
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Segment is one path command. MoveTo and LineTo use Pts[0], QuadTo uses
// Pts[0] as control and Pts[1] as end, CubeTo uses all three. Close uses
// none.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// End returns the point s ends at. Close has no end point of its own.
func (s Segment) End() Point {
	switch s.Op {
	case QuadTo:
		return s.Pts[1]
	case CubeTo:
		return s.Pts[2]
	default:
		return s.Pts[0]
	}
}

// Join is the shape drawn where two segments of a contour meet.
type Join uint8

// Join styles.
const (
	JoinRound Join = iota
	JoinMiter
	JoinBevel
)

// Style describes a stroke.
type Style struct {
	// Width is the full stroke width; the band extends Width/2 to each side.
	Width float64

	Join Join

	// MiterLimit bounds the miter length as a multiple of Width. Joins past
	// it fall back to bevels. Zero means 4.
	MiterLimit float64

	// Tolerance is the maximum flattening error in user units. Zero means
	// DefaultTolerance.
	Tolerance float64
}

// DefaultTolerance is the flattening tolerance used when Style.Tolerance is
// zero.
const DefaultTolerance = 0.1

// Expand returns the outline of stroking path with style. Every contour of
// path is treated as closed, whether or not it ends in Close. The result is
// a list of closed contours to be filled with the nonzero winding rule; it is
// nil when style.Width is not positive.
func Expand(path []Segment, style Style) []Segment {
	if !(style.Width > 0) || math.IsInf(style.Width, 0) {
		return nil
	}
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	if style.Tolerance <= 0 {
		style.Tolerance = DefaultTolerance
	}
	e := &expander{
		style:      style,
		joinThresh: 2 * style.Tolerance / style.Width,
	}
	var flat []Point
	for _, s := range path {
		switch s.Op {
		case MoveTo:
			e.closeContour()
			e.start, e.last = s.Pts[0], s.Pts[0]
		case LineTo:
			e.lineTo(s.Pts[0])
		case QuadTo:
			flat = flattenQuad(flat[:0], e.last, s.Pts[0], s.Pts[1], style.Tolerance)
			for _, p := range flat {
				e.lineTo(p)
			}
		case CubeTo:
			flat = flattenCubic(flat[:0], e.last, s.Pts[0], s.Pts[1], s.Pts[2], style.Tolerance)
			for _, p := range flat {
				e.lineTo(p)
			}
		case Close:
			e.closeContour()
			e.last = e.start
		}
	}
	e.closeContour()
	return e.out
}

// expander builds the two offset sides of the current contour. left is
// offset by -normal, right by +normal.
type expander struct {
	style      Style
	joinThresh float64

	left, right []Segment
	out         []Segment

	start, last       Point
	startTan, lastTan vec
}

// normal returns the perpendicular of t scaled to half the stroke width.
func (e *expander) normal(t vec) vec {
	return t.perp().scale(0.5 * e.style.Width / t.length())
}

func (e *expander) lineTo(p Point) {
	t := p.sub(e.last)
	if t.length() < 1e-9 {
		return
	}
	e.join(t)
	n := e.normal(t)
	e.left = append(e.left, Segment{Op: LineTo, Pts: [3]Point{p.add(n.neg())}})
	e.right = append(e.right, Segment{Op: LineTo, Pts: [3]Point{p.add(n)}})
	e.last = p
	e.lastTan = t
}

// join connects the sides at e.last from the previous tangent to t. On the
// first segment of a contour it starts both sides instead.
func (e *expander) join(t vec) {
	p := e.last
	n := e.normal(t)
	if len(e.left) == 0 {
		e.left = append(e.left, Segment{Op: MoveTo, Pts: [3]Point{p.add(n.neg())}})
		e.right = append(e.right, Segment{Op: MoveTo, Pts: [3]Point{p.add(n)}})
		e.startTan = t
		return
	}

	prev := e.lastTan
	cross, dot := prev.cross(t), prev.dot(t)
	hypot := math.Hypot(cross, dot)
	smooth := dot > 0 && math.Abs(cross) < hypot*e.joinThresh

	if !smooth {
		prevN := e.normal(prev)
		switch e.style.Join {
		case JoinRound:
			angle := math.Atan2(cross, dot)
			if angle > 0 {
				e.left = appendArc(e.left, p, prevN.neg(), angle)
			} else {
				e.right = appendArc(e.right, p, prevN, angle)
			}
		case JoinMiter:
			limit := e.style.MiterLimit
			if 2*hypot < (hypot+dot)*limit*limit && cross != 0 {
				// The miter tip is where the offset lines of prev and t meet
				// on the outer side.
				outer, inner := &e.left, &e.right
				side := -1.0
				if cross < 0 {
					outer, inner = inner, outer
					side = 1
				}
				a := p.add(prevN.scale(side))
				b := p.add(n.scale(side))
				h := prev.cross(b.sub(a)) / cross
				*outer = append(*outer, Segment{Op: LineTo, Pts: [3]Point{b.add(t.scale(-h))}})
				*inner = append(*inner, Segment{Op: LineTo, Pts: [3]Point{p}})
			}
		}
	}
	e.left = append(e.left, Segment{Op: LineTo, Pts: [3]Point{p.add(n.neg())}})
	e.right = append(e.right, Segment{Op: LineTo, Pts: [3]Point{p.add(n)}})
}

// closeContour joins the current contour back to its start and moves both
// sides to the output: left as is, right reversed.
func (e *expander) closeContour() {
	if len(e.left) == 0 {
		return
	}
	e.lineTo(e.start)
	e.join(e.startTan)

	e.out = append(e.out, e.left...)
	e.out = append(e.out, Segment{Op: Close})

	r := e.right
	e.out = append(e.out, Segment{Op: MoveTo, Pts: [3]Point{r[len(r)-1].End()}})
	for i := len(r) - 1; i > 0; i-- {
		to := r[i-1].End()
		switch s := r[i]; s.Op {
		case CubeTo:
			e.out = append(e.out, Segment{Op: CubeTo, Pts: [3]Point{s.Pts[1], s.Pts[0], to}})
		default:
			e.out = append(e.out, Segment{Op: LineTo, Pts: [3]Point{to}})
		}
	}
	e.out = append(e.out, Segment{Op: Close})

	e.left, e.right = e.left[:0:0], e.right[:0:0]
}

// appendArc appends a circular arc around center, starting at center+from
// and sweeping angle radians, as cubic segments of at most a quarter turn.
func appendArc(out []Segment, center Point, from vec, angle float64) []Segment {
	n := max(1, int(math.Ceil(math.Abs(angle)/(math.Pi/2))))
	step := angle / float64(n)
	r := from.length()
	a0 := math.Atan2(from.y, from.x)
	for range n {
		a1 := a0 + step
		k := math.Sin(step) * (math.Sqrt(4+3*math.Pow(math.Tan(step/2), 2)) - 1) / 3
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		p0 := Point{center.X + r*c0, center.Y + r*s0}
		p1 := Point{center.X + r*c1, center.Y + r*s1}
		out = append(out, Segment{Op: CubeTo, Pts: [3]Point{
			{p0.X - k*r*s0, p0.Y + k*r*c0},
			{p1.X + k*r*s1, p1.Y - k*r*c1},
			p1,
		}})
		a0 = a1
	}
	return out
}
