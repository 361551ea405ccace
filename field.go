package navball

import (
	"fmt"
	"math"
)

// Shape is the dimensions of a per-pixel field: Rows (H) by Cols (W).
type Shape struct {
	Rows, Cols int
}

// Len returns the number of elements in a field of this shape.
func (s Shape) Len() int { return s.Rows * s.Cols }

// Empty reports whether the shape has no elements.
func (s Shape) Empty() bool { return s.Rows <= 0 || s.Cols <= 0 }

func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// check returns a *ShapeError for op if s differs from want.
func (s Shape) check(op string, want Shape) error {
	if s != want {
		return &ShapeError{Op: op, Got: s, Want: want}
	}
	return nil
}

// Executor runs fn over disjoint row bands [y0, y1) that together cover
// [0, rows), and returns once every band is done.
// *parallel.WorkerPool from the internal package implements it.
type Executor interface {
	Rows(rows int, fn func(y0, y1 int))
}

type serialExecutor struct{}

func (serialExecutor) Rows(rows int, fn func(y0, y1 int)) {
	if rows > 0 {
		fn(0, rows)
	}
}

// Serial is an Executor that runs all rows on the calling goroutine.
var Serial Executor = serialExecutor{}

// Field is an immutable H×W grid of float64 values stored in row-major order.
//
// Fields only combine with fields of exactly the same shape. Scalars and
// single rows or columns reach full shape through the named expansion
// constructors Full, ExpandRow and ExpandCol.
type Field struct {
	shape Shape
	data  []float64
}

// generate materializes a field by evaluating fn at every element.
func generate(ex Executor, s Shape, fn func(y, x int) float64) *Field {
	f := &Field{shape: s, data: make([]float64, s.Len())}
	ex.Rows(s.Rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := f.data[y*s.Cols : (y+1)*s.Cols]
			for x := range row {
				row[x] = fn(y, x)
			}
		}
	})
	return f
}

// Full returns a field of shape s with every element set to v.
func Full(s Shape, v float64) (*Field, error) {
	if s.Empty() {
		return nil, fmt.Errorf("full %v: %w", s, ErrEmptyShape)
	}
	f := &Field{shape: s, data: make([]float64, s.Len())}
	for i := range f.data {
		f.data[i] = v
	}
	return f, nil
}

// ExpandRow repeats a 1×W row down rows rows, giving an rows×W field.
func ExpandRow(ex Executor, row []float64, rows int) (*Field, error) {
	s := Shape{Rows: rows, Cols: len(row)}
	if s.Empty() {
		return nil, fmt.Errorf("expand row to %v: %w", s, ErrEmptyShape)
	}
	return generate(ex, s, func(_, x int) float64 { return row[x] }), nil
}

// ExpandCol repeats an H×1 column across cols columns, giving an H×cols field.
func ExpandCol(ex Executor, col []float64, cols int) (*Field, error) {
	s := Shape{Rows: len(col), Cols: cols}
	if s.Empty() {
		return nil, fmt.Errorf("expand column to %v: %w", s, ErrEmptyShape)
	}
	return generate(ex, s, func(y, _ int) float64 { return col[y] }), nil
}

// Shape returns the field dimensions.
func (f *Field) Shape() Shape { return f.shape }

// At returns the element at row y, column x.
// Returns NaN for coordinates outside the field.
func (f *Field) At(y, x int) float64 {
	if y < 0 || y >= f.shape.Rows || x < 0 || x >= f.shape.Cols {
		return math.NaN()
	}
	return f.data[y*f.shape.Cols+x]
}

// Row returns a copy of row y.
func (f *Field) Row(y int) []float64 {
	out := make([]float64, f.shape.Cols)
	copy(out, f.data[y*f.shape.Cols:(y+1)*f.shape.Cols])
	return out
}

// Range returns the minimum and maximum element.
func (f *Field) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Map returns a new field with fn applied to every element.
func (f *Field) Map(ex Executor, fn func(v float64) float64) *Field {
	cols := f.shape.Cols
	return generate(ex, f.shape, func(y, x int) float64 {
		return fn(f.data[y*cols+x])
	})
}

// Scale returns a new field with every element multiplied by k.
func (f *Field) Scale(ex Executor, k float64) *Field {
	return f.Map(ex, func(v float64) float64 { return v * k })
}

// Zip combines two fields of identical shape element by element.
func Zip(ex Executor, a, b *Field, fn func(a, b float64) float64) (*Field, error) {
	if err := b.shape.check("zip", a.shape); err != nil {
		return nil, err
	}
	cols := a.shape.Cols
	return generate(ex, a.shape, func(y, x int) float64 {
		i := y*cols + x
		return fn(a.data[i], b.data[i])
	}), nil
}

// Mul multiplies two fields of identical shape element by element.
func Mul(ex Executor, a, b *Field) (*Field, error) {
	out, err := Zip(ex, a, b, func(a, b float64) float64 { return a * b })
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	return out, nil
}

// Max returns the element-wise maximum of one or more fields of identical shape.
func Max(ex Executor, fields ...*Field) (*Field, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("max of no fields: %w", ErrEmptyShape)
	}
	s := fields[0].shape
	for _, f := range fields[1:] {
		if err := f.shape.check("max", s); err != nil {
			return nil, err
		}
	}
	return generate(ex, s, func(y, x int) float64 {
		i := y*s.Cols + x
		m := fields[0].data[i]
		for _, f := range fields[1:] {
			m = max(m, f.data[i])
		}
		return m
	}), nil
}
