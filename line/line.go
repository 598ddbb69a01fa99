package line

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/hupe1980/decgeom/internal/decmath"
	"github.com/hupe1980/decgeom/vector"
)

// dimension is fixed: this package models lines in the plane only.
const dimension = 2

type options struct {
	tolerance *apd.Decimal
	precision uint32
}

// Option configures line construction.
type Option func(*options)

// WithTolerance sets the threshold below which coefficients and differences
// are treated as zero. The decimal is copied; nil keeps the 1e-15 default.
//
// The line's tolerance is independent of the normal vector's own tolerance;
// keep the two consistent unless you have a reason not to.
func WithTolerance(tol *apd.Decimal) Option {
	return func(o *options) {
		if tol != nil {
			o.tolerance = tol
		}
	}
}

// WithPrecision sets the number of significant digits used for all
// arithmetic on the line. Zero keeps the default of 30.
func WithPrecision(precision uint32) Option {
	return func(o *options) {
		if precision > 0 {
			o.precision = precision
		}
	}
}

func newOptions(optFns ...Option) options {
	o := options{precision: decmath.DefaultPrecision}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.tolerance == nil {
		o.tolerance = decmath.DefaultTolerance()
	}
	return o
}

// Line is an immutable 2-D line defined by a normal vector and a constant
// term. The base point is computed once at construction and never
// recomputed. Instances are safe for concurrent use.
type Line struct {
	normal    *vector.Vector
	constant  apd.Decimal
	tol       apd.Decimal
	ctx       *apd.Context
	basePoint *vector.Vector // nil when the normal is zero within tolerance
}

// New creates a line from a normal vector and a constant term.
//
// A nil normal defaults to the zero vector of dimension 2; a nil constant
// defaults to 0. A normal of any other dimension yields ErrInvalidDimension.
func New(normal *vector.Vector, constant *apd.Decimal, optFns ...Option) (*Line, error) {
	o := newOptions(optFns...)

	l := &Line{ctx: decmath.Context(o.precision)}
	l.tol.Set(o.tolerance)

	if normal == nil {
		z, err := vector.Zero(dimension, vector.WithTolerance(&l.tol), vector.WithPrecision(o.precision))
		if err != nil {
			return nil, err
		}
		normal = z
	}
	if normal.Dimension() != dimension {
		return nil, &ErrInvalidDimension{Dimension: normal.Dimension()}
	}
	l.normal = normal

	if constant != nil {
		l.constant.Set(constant)
	}

	l.computeBasePoint()

	return l, nil
}

// Parse creates a line from decimal-formatted strings for the normal
// coordinates and the constant term.
func Parse(normal []string, constant string, optFns ...Option) (*Line, error) {
	var vopts []vector.Option
	o := newOptions(optFns...)
	vopts = append(vopts, vector.WithTolerance(o.tolerance), vector.WithPrecision(o.precision))

	n, err := vector.Parse(normal, vopts...)
	if err != nil {
		return nil, err
	}

	var c *apd.Decimal
	if constant != "" {
		if c, err = decmath.Parse(constant); err != nil {
			return nil, fmt.Errorf("invalid constant term %q: %w", constant, err)
		}
	}

	return New(n, c, optFns...)
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with literal inputs.
func MustParse(normal []string, constant string, optFns ...Option) *Line {
	l, err := Parse(normal, constant, optFns...)
	if err != nil {
		panic(err)
	}
	return l
}

// computeBasePoint derives a point on the line: the first coordinate whose
// coefficient clears the tolerance carries constant/coefficient, the other
// stays zero. A degenerate normal leaves the base point absent.
func (l *Line) computeBasePoint() {
	idx, err := l.FirstNonzeroIndex()
	if err != nil {
		l.basePoint = nil
		return
	}

	coords := make([]*apd.Decimal, dimension)
	for i := range coords {
		coords[i] = apd.New(0, 0)
	}
	// The coefficient is at least tolerance away from zero.
	coords[idx].Set(decmath.Quo(l.ctx, &l.constant, l.normal.At(idx)))

	// Cannot fail: coords is non-empty and fully populated.
	l.basePoint, _ = vector.New(coords, vector.WithTolerance(&l.tol), vector.WithPrecision(l.ctx.Precision))
}

// FirstNonzeroIndex returns the first index of the normal vector whose
// absolute value is at least the tolerance. Returns ErrNoNonzeroElements
// when both coordinates are within tolerance of zero.
func (l *Line) FirstNonzeroIndex() (int, error) {
	for i := 0; i < dimension; i++ {
		if !decmath.WithinTolerance(l.normal.At(i), &l.tol) {
			return i, nil
		}
	}
	return 0, ErrNoNonzeroElements
}

// NormalVector returns the line's normal vector.
func (l *Line) NormalVector() *vector.Vector {
	return l.normal
}

// ConstantTerm returns a copy of the line's constant term.
func (l *Line) ConstantTerm() *apd.Decimal {
	var d apd.Decimal
	d.Set(&l.constant)
	return &d
}

// Tolerance returns a copy of the line's zero threshold.
func (l *Line) Tolerance() *apd.Decimal {
	var d apd.Decimal
	d.Set(&l.tol)
	return &d
}

// Dimension returns 2.
func (l *Line) Dimension() int {
	return dimension
}

// BasePoint returns a point on the line and true, or nil and false when the
// normal vector is zero within tolerance and no single base point exists.
func (l *Line) BasePoint() (*vector.Vector, bool) {
	if l.basePoint == nil {
		return nil, false
	}
	return l.basePoint, true
}

// IsParallelTo reports whether the two lines' normal vectors are parallel.
func (l *Line) IsParallelTo(other *Line) bool {
	// Both normals are 2-D by construction, so no dimension error can occur.
	ok, _ := l.normal.IsParallelTo(other.normal)
	return ok
}

// Equal reports whether the two lines describe the same set of points
// within tolerance.
//
// Two lines with zero normals are equal when their constant terms differ by
// less than the tolerance. A zero-normal line never equals a non-zero one.
// Otherwise the lines are equal when they are parallel and the vector
// connecting their base points is zero or orthogonal to the normal.
//
// A normal can clear the magnitude tolerance while every coordinate stays
// below it; such a line has no base point and compares unequal, itself
// included.
func (l *Line) Equal(other *Line) bool {
	if other == nil {
		return false
	}
	if !l.IsParallelTo(other) {
		return false
	}

	if l.normal.IsZero() {
		if !other.normal.IsZero() {
			return false
		}
		diff := decmath.Sub(l.ctx, &l.constant, &other.constant)
		return decmath.WithinTolerance(diff, &l.tol)
	}
	if other.normal.IsZero() {
		return false
	}

	// IsZero tests the magnitude, the base point the individual coordinates;
	// a normal like (9e-16, 9e-16) passes the first and fails the second.
	if l.basePoint == nil || other.basePoint == nil {
		return false
	}

	connecting, err := l.basePoint.Sub(other.basePoint)
	if err != nil {
		return false
	}
	if connecting.IsZero() {
		return true
	}

	ok, err := connecting.IsOrthogonalTo(l.normal)
	return err == nil && ok
}

// IntersectionKind discriminates the result of Intersection.
type IntersectionKind int

const (
	// IntersectionNone means the lines are parallel and distinct.
	IntersectionNone IntersectionKind = iota
	// IntersectionPoint means the lines cross in a single point.
	IntersectionPoint
	// IntersectionCoincident means the lines are equal; the intersection is
	// the whole line.
	IntersectionCoincident
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectionNone:
		return "None"
	case IntersectionPoint:
		return "Point"
	case IntersectionCoincident:
		return "Coincident"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Intersection is the result of intersecting two lines. Point is set for
// IntersectionPoint; Line is set for IntersectionCoincident.
type Intersection struct {
	Kind  IntersectionKind
	Point *vector.Vector
	Line  *Line
}

// Intersection intersects l with other. The parallel and coincident cases
// are ordinary result variants, never failures.
func (l *Line) Intersection(other *Line) *Intersection {
	if l.Equal(other) {
		return &Intersection{Kind: IntersectionCoincident, Line: l}
	}
	if l.IsParallelTo(other) {
		return &Intersection{Kind: IntersectionNone}
	}

	// Cramer's rule on {a*x + b*y = c, d*x + e*y = f}. The lines are not
	// parallel, so the determinant a*e - b*d is nonzero.
	a, b, c := l.normal.At(0), l.normal.At(1), &l.constant
	d, e, f := other.normal.At(0), other.normal.At(1), &other.constant

	den := decmath.Sub(l.ctx, decmath.Mul(l.ctx, a, e), decmath.Mul(l.ctx, b, d))
	x := decmath.Quo(l.ctx, decmath.Sub(l.ctx, decmath.Mul(l.ctx, c, e), decmath.Mul(l.ctx, b, f)), den)
	y := decmath.Quo(l.ctx, decmath.Sub(l.ctx, decmath.Mul(l.ctx, a, f), decmath.Mul(l.ctx, d, c)), den)

	// Cannot fail: two non-nil coordinates.
	p, _ := vector.New([]*apd.Decimal{x, y}, vector.WithTolerance(&l.tol), vector.WithPrecision(l.ctx.Precision))

	return &Intersection{Kind: IntersectionPoint, Point: p}
}
