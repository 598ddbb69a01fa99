package vector

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/hupe1980/decgeom/internal/decmath"
)

var one = apd.New(1, 0)

type options struct {
	tolerance *apd.Decimal
	precision uint32
}

// Option configures vector construction.
type Option func(*options)

// WithTolerance sets the threshold below which magnitudes and differences
// are treated as zero. The decimal is copied; nil keeps the 1e-15 default.
func WithTolerance(tol *apd.Decimal) Option {
	return func(o *options) {
		if tol != nil {
			o.tolerance = tol
		}
	}
}

// WithPrecision sets the number of significant digits used for all
// arithmetic on the vector. Zero keeps the default of 30.
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

// Vector is an immutable, arbitrary-dimension decimal vector.
// Every operation returns a new value; instances are safe for concurrent use.
type Vector struct {
	coords []apd.Decimal
	tol    apd.Decimal
	ctx    *apd.Context
}

// New creates a vector from the given decimals. The inputs are copied.
// Returns ErrEmptyCoordinates for an empty sequence and ErrInvalidCoordinate
// for a nil entry.
func New(coords []*apd.Decimal, optFns ...Option) (*Vector, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyCoordinates
	}

	o := newOptions(optFns...)

	v := &Vector{
		coords: make([]apd.Decimal, len(coords)),
		ctx:    decmath.Context(o.precision),
	}
	v.tol.Set(o.tolerance)

	for i, c := range coords {
		if c == nil {
			return nil, fmt.Errorf("%w: coordinate %d is nil", ErrInvalidCoordinate, i)
		}
		v.coords[i].Set(c)
	}

	return v, nil
}

// Parse creates a vector from decimal-formatted strings. Each string is
// parsed exactly, without rounding.
func Parse(coords []string, optFns ...Option) (*Vector, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyCoordinates
	}

	ds := make([]*apd.Decimal, len(coords))
	for i, s := range coords {
		d, err := decmath.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
		}
		ds[i] = d
	}

	return New(ds, optFns...)
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with literal inputs.
func MustParse(coords ...string) *Vector {
	v, err := Parse(coords)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInt64s creates a vector from integer coordinates.
func FromInt64s(coords []int64, optFns ...Option) (*Vector, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyCoordinates
	}

	ds := make([]*apd.Decimal, len(coords))
	for i, c := range coords {
		ds[i] = apd.New(c, 0)
	}

	return New(ds, optFns...)
}

// Zero creates the zero vector of the given dimension.
func Zero(dimension int, optFns ...Option) (*Vector, error) {
	if dimension < 1 {
		return nil, ErrEmptyCoordinates
	}

	ds := make([]*apd.Decimal, dimension)
	for i := range ds {
		ds[i] = apd.New(0, 0)
	}

	return New(ds, optFns...)
}

// derive builds a result vector that inherits the receiver's tolerance and
// context. coords must be freshly allocated and unaliased.
func (v *Vector) derive(coords []apd.Decimal) *Vector {
	nv := &Vector{coords: coords, ctx: v.ctx}
	nv.tol.Set(&v.tol)
	return nv
}

// Dimension returns the number of coordinates.
func (v *Vector) Dimension() int {
	return len(v.coords)
}

// At returns a copy of the coordinate at index i.
func (v *Vector) At(i int) *apd.Decimal {
	var d apd.Decimal
	d.Set(&v.coords[i])
	return &d
}

// Coordinates returns copies of all coordinates in order.
func (v *Vector) Coordinates() []*apd.Decimal {
	out := make([]*apd.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.At(i)
	}
	return out
}

// Tolerance returns a copy of the vector's zero threshold.
func (v *Vector) Tolerance() *apd.Decimal {
	var d apd.Decimal
	d.Set(&v.tol)
	return &d
}

// Precision returns the number of significant digits used for arithmetic.
func (v *Vector) Precision() uint32 {
	return v.ctx.Precision
}

// String returns a representation like "Vector(1, 2.5, 0)".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector(")
	for i := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.coords[i].String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports exact coordinate-wise equality. For approximate equality,
// subtract and test IsZero.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || len(v.coords) != len(other.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Cmp(&other.coords[i]) != 0 {
			return false
		}
	}
	return true
}

func (v *Vector) checkDimension(other *Vector) error {
	if len(v.coords) != len(other.coords) {
		return &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(other.coords)}
	}
	return nil
}

// Add returns the element-wise sum of v and other.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := v.checkDimension(other); err != nil {
		return nil, err
	}

	coords := make([]apd.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i].Set(decmath.Add(v.ctx, &v.coords[i], &other.coords[i]))
	}

	return v.derive(coords), nil
}

// Sub returns the element-wise difference of v and other.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := v.checkDimension(other); err != nil {
		return nil, err
	}

	coords := make([]apd.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i].Set(decmath.Sub(v.ctx, &v.coords[i], &other.coords[i]))
	}

	return v.derive(coords), nil
}

// Scale returns v with every coordinate multiplied by scalar.
// scalar must be non-nil.
func (v *Vector) Scale(scalar *apd.Decimal) *Vector {
	coords := make([]apd.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i].Set(decmath.Mul(v.ctx, &v.coords[i], scalar))
	}
	return v.derive(coords)
}

// Dot returns the inner product of v and other. Commutative.
func (v *Vector) Dot(other *Vector) (*apd.Decimal, error) {
	if err := v.checkDimension(other); err != nil {
		return nil, err
	}
	return decmath.Dot(v.ctx, v.coords, other.coords), nil
}

// Magnitude returns the Euclidean norm of v. The square root is computed in
// decimal, so no precision is lost to a float round-trip.
func (v *Vector) Magnitude() *apd.Decimal {
	return decmath.Norm(v.ctx, v.coords)
}

// Normalized returns the unit vector in the direction of v.
// Returns ErrZeroVector when the magnitude is exactly zero.
func (v *Vector) Normalized() (*Vector, error) {
	m := v.Magnitude()
	if m.IsZero() {
		return nil, ErrZeroVector
	}
	return v.Scale(decmath.Quo(v.ctx, one, m)), nil
}

// IsZero reports whether the magnitude of v is below its tolerance.
// This is the single source of truth for "approximately zero".
func (v *Vector) IsZero() bool {
	return v.Magnitude().Cmp(&v.tol) < 0
}

// AngleWith returns the angle between v and other in radians, or in degrees
// when inDegrees is true. Returns ErrUndefinedAngle when either operand is
// the zero vector.
func (v *Vector) AngleWith(other *Vector, inDegrees bool) (float64, error) {
	un, err := v.Normalized()
	if errors.Is(err, ErrZeroVector) {
		return 0, ErrUndefinedAngle
	}

	on, err := other.Normalized()
	if errors.Is(err, ErrZeroVector) {
		return 0, ErrUndefinedAngle
	}

	d, err := un.Dot(on)
	if err != nil {
		return 0, err
	}

	x, err := d.Float64()
	if err != nil {
		return 0, err
	}

	// The product of two unit vectors can exceed 1 by a final-digit ulp of
	// the decimal context; clamp to keep acos inside its domain.
	angle := math.Acos(math.Max(-1, math.Min(1, x)))
	if inDegrees {
		return decmath.Degrees(angle), nil
	}
	return angle, nil
}

// IsOrthogonalTo reports whether the inner product of v and other is within
// tolerance of zero. The zero vector is orthogonal to every vector.
func (v *Vector) IsOrthogonalTo(other *Vector) (bool, error) {
	d, err := v.Dot(other)
	if err != nil {
		return false, err
	}
	return decmath.WithinTolerance(d, &v.tol), nil
}

// IsParallelTo reports whether v and other point along the same or opposite
// directions. The zero vector is parallel to every vector. Symmetric.
func (v *Vector) IsParallelTo(other *Vector) (bool, error) {
	if v.IsZero() || other.IsZero() {
		return true, nil
	}

	d, err := v.Dot(other)
	if err != nil {
		return false, err
	}

	// Cauchy-Schwarz holds with equality exactly when the vectors are
	// parallel: |v.w| == |v||w|.
	prod := decmath.Mul(v.ctx, v.Magnitude(), other.Magnitude())
	diff := decmath.Sub(v.ctx, decmath.Abs(d), prod)

	return decmath.WithinTolerance(diff, &v.tol), nil
}

// ParallelComponent returns the projection of v onto other.
// Returns ErrNoUniqueComponent when other is the zero vector.
func (v *Vector) ParallelComponent(other *Vector) (*Vector, error) {
	if err := v.checkDimension(other); err != nil {
		return nil, err
	}

	unit, err := other.Normalized()
	if err != nil {
		return nil, ErrNoUniqueComponent
	}

	weight, err := v.Dot(unit)
	if err != nil {
		return nil, err
	}

	coords := make([]apd.Decimal, len(v.coords))
	for i := range unit.coords {
		coords[i].Set(decmath.Mul(v.ctx, &unit.coords[i], weight))
	}

	return v.derive(coords), nil
}

// OrthogonalComponent returns v minus its projection onto other.
// Returns ErrNoUniqueComponent when other is the zero vector.
func (v *Vector) OrthogonalComponent(other *Vector) (*Vector, error) {
	par, err := v.ParallelComponent(other)
	if err != nil {
		return nil, err
	}
	return v.Sub(par)
}

// Cross returns the cross product of v and other. Defined only in three
// dimensions; returns ErrCrossDimension otherwise.
func (v *Vector) Cross(other *Vector) (*Vector, error) {
	if len(v.coords) != 3 || len(other.coords) != 3 {
		return nil, ErrCrossDimension
	}

	a, b := v.coords, other.coords

	coords := make([]apd.Decimal, 3)
	coords[0].Set(decmath.Sub(v.ctx, decmath.Mul(v.ctx, &a[1], &b[2]), decmath.Mul(v.ctx, &a[2], &b[1])))
	coords[1].Set(decmath.Sub(v.ctx, decmath.Mul(v.ctx, &a[2], &b[0]), decmath.Mul(v.ctx, &a[0], &b[2])))
	coords[2].Set(decmath.Sub(v.ctx, decmath.Mul(v.ctx, &a[0], &b[1]), decmath.Mul(v.ctx, &a[1], &b[0])))

	return v.derive(coords), nil
}
