package line

import (
	"errors"
	"fmt"
)

// ErrNoNonzeroElements is returned by FirstNonzeroIndex when every
// coordinate of the normal vector is within tolerance of zero.
//
// Construction handles this case itself: a line with a degenerate normal is
// valid and simply has no base point.
var ErrNoNonzeroElements = errors.New("no non-zero elements found")

// ErrInvalidDimension indicates a normal vector whose dimension is not 2.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("normal vector must have dimension 2, got %d", e.Dimension)
}
