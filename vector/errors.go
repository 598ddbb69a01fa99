package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCoordinates is returned when a vector is constructed from an
	// empty coordinate sequence.
	ErrEmptyCoordinates = errors.New("coordinates must be non-empty")

	// ErrInvalidCoordinate is returned when a coordinate cannot be parsed
	// as a decimal, or is nil.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrZeroVector is returned when normalization is attempted on a vector
	// whose magnitude is exactly zero.
	ErrZeroVector = errors.New("cannot normalize the zero vector")

	// ErrUndefinedAngle is returned by AngleWith when either operand is the
	// zero vector. It wraps ErrZeroVector, the propagated cause.
	ErrUndefinedAngle = fmt.Errorf("cannot compute an angle with the zero vector: %w", ErrZeroVector)

	// ErrNoUniqueComponent is returned when a parallel or orthogonal
	// component is requested relative to a zero direction vector.
	// It wraps ErrZeroVector, the propagated cause.
	ErrNoUniqueComponent = fmt.Errorf("no unique component relative to the zero vector: %w", ErrZeroVector)

	// ErrCrossDimension is returned when a cross product is attempted
	// outside three dimensions.
	ErrCrossDimension = errors.New("cross product is only defined in three dimensions")
)

// ErrDimensionMismatch indicates an operand dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
