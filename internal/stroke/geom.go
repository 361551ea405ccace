package stroke

import "math"

// Point is a position in user space.
type Point struct {
	X, Y float64
}

func (p Point) add(v vec) Point { return Point{p.X + v.x, p.Y + v.y} }
func (p Point) sub(q Point) vec { return vec{p.X - q.X, p.Y - q.Y} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// vec is a direction or offset.
type vec struct {
	x, y float64
}

func (v vec) scale(s float64) vec { return vec{v.x * s, v.y * s} }
func (v vec) neg() vec            { return vec{-v.x, -v.y} }
func (v vec) dot(w vec) float64   { return v.x*w.x + v.y*w.y }
func (v vec) cross(w vec) float64 { return v.x*w.y - v.y*w.x }
func (v vec) length() float64     { return math.Hypot(v.x, v.y) }
func (v vec) perp() vec           { return vec{-v.y, v.x} }

// maxFlattenDepth bounds curve subdivision.
const maxFlattenDepth = 16

// flattenQuad appends to pts the polyline approximation of the quadratic
// curve p0, p1, p2 within tol, excluding p0.
func flattenQuad(pts []Point, p0, p1, p2 Point, tol float64) []Point {
	return flattenQuadRec(pts, p0, p1, p2, tol, 0)
}

func flattenQuadRec(pts []Point, p0, p1, p2 Point, tol float64, depth int) []Point {
	if depth >= maxFlattenDepth || lineDistance(p1, p0, p2) <= tol {
		return append(pts, p2)
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	m := q0.lerp(q1, 0.5)
	pts = flattenQuadRec(pts, p0, q0, m, tol, depth+1)
	return flattenQuadRec(pts, m, q1, p2, tol, depth+1)
}

// flattenCubic appends to pts the polyline approximation of the cubic curve
// p0, p1, p2, p3 within tol, excluding p0.
func flattenCubic(pts []Point, p0, p1, p2, p3 Point, tol float64) []Point {
	return flattenCubicRec(pts, p0, p1, p2, p3, tol, 0)
}

func flattenCubicRec(pts []Point, p0, p1, p2, p3 Point, tol float64, depth int) []Point {
	if depth >= maxFlattenDepth ||
		max(lineDistance(p1, p0, p3), lineDistance(p2, p0, p3)) <= tol {
		return append(pts, p3)
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	m := r0.lerp(r1, 0.5)
	pts = flattenCubicRec(pts, p0, q0, r0, m, tol, depth+1)
	return flattenCubicRec(pts, m, r1, q2, p3, tol, depth+1)
}

// lineDistance returns the distance from p to the line through a and b, or
// to a when the line is degenerate.
func lineDistance(p, a, b Point) float64 {
	d := b.sub(a)
	l := d.length()
	if l < 1e-12 {
		return p.sub(a).length()
	}
	return math.Abs(d.cross(p.sub(a))) / l
}
