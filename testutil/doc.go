// Package testutil provides testing utilities for indexedset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and generators for
// member fixtures.
//
// # Random Members
//
//	rng := testutil.NewRNG(seed)
//	entities := testutil.Entities(rng, 1000, 10) // 1000 members over 10 groups
package testutil
