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

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Entity is a minimal indexable member for tests: a unique ID and a
// non-unique Group.
type Entity struct {
	ID    int64
	Group string
}

// Entities generates n entities with IDs 0..n-1 spread over groups
// "g0".."g<groups-1>", in a random order.
func Entities(rng *RNG, n, groups int) []*Entity {
	out := make([]*Entity, n)
	for i, id := range rng.Perm(n) {
		out[i] = &Entity{
			ID:    int64(id),
			Group: fmt.Sprintf("g%d", id%groups),
		}
	}
	return out
}
