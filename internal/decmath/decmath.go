// Package decmath provides the shared arbitrary-precision decimal kernels
// used by the vector and line packages.
// This is an internal package - external users should use vector and line.
//
// The arithmetic helpers here discard the apd condition flags: inexact
// results are expected at a fixed significant-digit precision, and the
// trapped system conditions cannot occur for the finite operands this
// library works with. Helpers that divide document the caller's
// obligation to keep the divisor nonzero.
package decmath

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant digits used for decimal
// calculations when no explicit precision is configured.
const DefaultPrecision uint32 = 30

// Context returns a decimal context with the given significant-digit
// precision. A precision of 0 selects DefaultPrecision.
//
// Rounding is half-even, matching the rounding of the rendered output.
func Context(precision uint32) *apd.Context {
	if precision == 0 {
		precision = DefaultPrecision
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfEven
	return ctx
}

// DefaultTolerance returns a fresh decimal holding 1e-15, the default
// threshold below which magnitudes and differences are treated as zero.
func DefaultTolerance() *apd.Decimal {
	return apd.New(1, -15)
}

// Parse converts a decimal-formatted string to a decimal exactly, without
// rounding to any context precision. Non-finite forms (NaN, Infinity) are
// rejected: tolerance comparisons are meaningless on them.
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("non-finite decimal %q", s)
	}
	return d, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for tests and package-level constants.
func MustParse(s string) *apd.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Errorf("decmath: parse %q: %w", s, err))
	}
	return d
}

// Add returns x + y as a new decimal.
func Add(ctx *apd.Context, x, y *apd.Decimal) *apd.Decimal {
	var r apd.Decimal
	_, _ = ctx.Add(&r, x, y)
	return &r
}

// Sub returns x - y as a new decimal.
func Sub(ctx *apd.Context, x, y *apd.Decimal) *apd.Decimal {
	var r apd.Decimal
	_, _ = ctx.Sub(&r, x, y)
	return &r
}

// Mul returns x * y as a new decimal.
func Mul(ctx *apd.Context, x, y *apd.Decimal) *apd.Decimal {
	var r apd.Decimal
	_, _ = ctx.Mul(&r, x, y)
	return &r
}

// Quo returns x / y as a new decimal.
// The caller must ensure y is nonzero.
func Quo(ctx *apd.Context, x, y *apd.Decimal) *apd.Decimal {
	var r apd.Decimal
	_, _ = ctx.Quo(&r, x, y)
	return &r
}

// Abs returns |x| as a new decimal.
func Abs(x *apd.Decimal) *apd.Decimal {
	var r apd.Decimal
	r.Abs(x)
	return &r
}

// Dot returns the dot product of two equal-length coordinate slices.
func Dot(ctx *apd.Context, a, b []apd.Decimal) *apd.Decimal {
	var sum, term apd.Decimal
	for i := range a {
		_, _ = ctx.Mul(&term, &a[i], &b[i])
		_, _ = ctx.Add(&sum, &sum, &term)
	}
	return &sum
}

// Norm returns the Euclidean norm of a coordinate slice. The square root is
// taken in decimal, so precision is preserved through the whole pipeline.
func Norm(ctx *apd.Context, a []apd.Decimal) *apd.Decimal {
	var r apd.Decimal
	_, _ = ctx.Sqrt(&r, Dot(ctx, a, a))
	return &r
}

// WithinTolerance reports whether |x| < tol.
func WithinTolerance(x, tol *apd.Decimal) bool {
	return Abs(x).Cmp(tol) < 0
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
