// Package testutil provides testing utilities for decgeom.
//
// This package is intended for use in tests only. It provides a seeded,
// deterministic source of random decimal coordinates for property-style
// tests of the vector and line packages.
//
// # Random Coordinate Generation
//
//	rng := testutil.NewRNG(seed)
//	coords := rng.DecimalCoordinates(3, 10)   // e.g. ["-7.204", "3.182", "0.337"]
//	sets := rng.DecimalVectors(100, 3, 10)    // 100 coordinate sets
package testutil
