// Package random wraps a seeded math/rand/v2 source with the few draws the
// generator and the image patcher need.
package random

import (
	"math/rand/v2"
)

// Source is not safe for concurrent use; each run owns one.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with seed. Equal seeds give equal sequences.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSeed draws a seed from the runtime's random source.
func NewSeed() uint64 {
	return rand.Uint64()
}

// IntBetween returns an int in [lo, hi]. It panics if hi < lo.
func (s *Source) IntBetween(lo, hi int) int {
	if hi < lo {
		panic("random: IntBetween called with hi < lo")
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Uniform returns a float64 in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Index returns a uniform index into a collection of length n.
func (s *Source) Index(n int) int {
	return s.r.IntN(n)
}

// Choice picks one element of items uniformly. items must not be empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.Index(len(items))]
}

// Sample picks k distinct positions of items without replacement, in draw
// order. k is clamped to len(items). items is left untouched.
func Sample[T any](s *Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}

	out := make([]T, k)
	for i := 0; i < k; i++ {
		j := i + s.r.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = items[idx[i]]
	}
	return out
}
