package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// DecimalCoordinate returns a random decimal string in (-bound, bound) with
// three fractional digits, e.g. "-7.204".
func (r *RNG) DecimalCoordinate(bound int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.decimalCoordinate(bound)
}

// DecimalCoordinates returns a random coordinate set of the given dimension.
// Locks only once per call (preferred over calling DecimalCoordinate in a
// loop).
func (r *RNG) DecimalCoordinates(dimensions, bound int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	coords := make([]string, dimensions)
	for i := range coords {
		coords[i] = r.decimalCoordinate(bound)
	}

	return coords
}

// DecimalVectors returns num random coordinate sets of the given dimension.
func (r *RNG) DecimalVectors(num, dimensions, bound int) [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := make([][]string, num)
	for i := range sets {
		coords := make([]string, dimensions)
		for j := range coords {
			coords[j] = r.decimalCoordinate(bound)
		}
		sets[i] = coords
	}

	return sets
}

// decimalCoordinate must be called with the mutex held.
func (r *RNG) decimalCoordinate(bound int) string {
	thousandths := r.rand.Intn(2*bound*1000) - bound*1000

	neg := thousandths < 0
	if neg {
		thousandths = -thousandths
	}

	s := fmt.Sprintf("%d.%03d", thousandths/1000, thousandths%1000)
	if neg {
		s = "-" + s
	}

	return s
}
