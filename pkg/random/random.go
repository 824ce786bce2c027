// Package random provides the injectable source of uniform randomness used by
// every generator in this module. Production code uses Default; tests swap in
// a Sequence to make word and line selection deterministic.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed integers in [0, n).
// Implementations must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default returns a Source backed by the math/rand/v2 global generator.
func Default() Source {
	return globalSource{}
}

// seeded wraps a PCG generator. rand.Rand is not safe for concurrent use,
// so access is serialized.
type seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a reproducible Source. A seed of 0 returns Default.
func NewSeeded(seed uint64) Source {
	if seed == 0 {
		return Default()
	}
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Sequence is a Source that replays a fixed list of values, cycling when it
// runs out. Each value is reduced modulo n so a single sequence can drive
// selections over pools of different sizes.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequence returns a Sequence replaying values. With no values every draw
// returns 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next value of the sequence modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Pick returns a uniformly chosen element of items, or the zero value when
// items is empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.IntN(len(items))]
}

// Between returns a uniformly chosen integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
