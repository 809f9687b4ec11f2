package shape

import "errors"

var (
	// ErrShapeNotFound is returned when a shape of a given name does not exist.
	ErrShapeNotFound = errors.New("shape not found")
	// ErrEmptyShape is returned when a shape has no steps.
	ErrEmptyShape = errors.New("shape has no steps")
)
