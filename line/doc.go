// Package line implements a 2-D line over arbitrary-precision decimals,
// built on the vector package.
//
// A line is defined by a normal vector and a constant term: the points
// (x_1, x_2) satisfying a*x_1 + b*x_2 = c, where (a, b) is the normal. A
// base point on the line is derived once at construction; when the normal
// is the zero vector within tolerance, no base point exists and the line is
// degenerate (the empty set or the whole plane, depending on the constant).
// That state is ordinary, not an error.
//
// # Geometric queries
//
//	l1, _ := line.Parse([]string{"10.115", "7.09"}, "0.1")
//	l2, _ := line.Parse([]string{"10.115", "7.09"}, "3.025")
//
//	l1.IsParallelTo(l2)   // true
//	l1.Equal(l2)          // false
//	l1.Intersection(l2)   // Kind == IntersectionNone
//
// Intersection never fails: coincident lines yield the line itself,
// distinct parallels yield no intersection, and everything else yields the
// Cramer's-rule solution of the 2x2 system.
//
// # Concurrency
//
// A Line is immutable after construction and safe for concurrent use.
package line
