package navball

import (
	"errors"
	"fmt"
)

// Sentinel errors for the navball package.
var (
	// ErrInvalidConfig is returned (wrapped) when a Config fails validation.
	ErrInvalidConfig = errors.New("navball: invalid config")

	// ErrEmptyShape is returned when a field would have no rows or columns.
	ErrEmptyShape = errors.New("navball: empty shape")
)

// ShapeError is returned when two fields taking part in an element-wise
// operation do not have the same shape, or when an expansion input does not
// fit the requested target shape. Fields are never broadcast implicitly.
type ShapeError struct {
	Op   string
	Got  Shape
	Want Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("navball: %s: shape %v, want %v", e.Op, e.Got, e.Want)
}
