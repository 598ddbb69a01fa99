// Package vector implements an immutable, arbitrary-dimension vector over
// arbitrary-precision decimals.
//
// All arithmetic runs on a decimal representation (github.com/cockroachdb/apd)
// with a configurable number of significant digits, so string-constructed
// inputs like "10.115" are represented exactly and tolerance comparisons are
// never corrupted by binary-floating rounding artifacts.
//
// # Construction
//
// Vectors are built from decimals, decimal-formatted strings, or integers:
//
//	v, err := vector.Parse([]string{"6.984", "-5.975", "4.778"})
//	w, err := vector.FromInt64s([]int64{1, 2, 0})
//
// Tolerance and precision are configured per value via options:
//
//	v, err := vector.Parse(coords,
//	    vector.WithTolerance(tol),  // default 1e-15
//	    vector.WithPrecision(50),   // significant digits, default 30
//	)
//
// # Tolerance
//
// IsZero is the single source of truth for "approximately zero": it reports
// whether the magnitude is below the vector's tolerance. Parallelism and
// orthogonality tests reduce to the same threshold, so the three decisions
// stay consistent with each other.
//
// # Concurrency
//
// A Vector is immutable after construction; every operation returns a new
// value. Instances may be shared across goroutines without synchronization.
package vector
