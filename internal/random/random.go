// Package random provides the injectable randomness used by skill-level
// assessment, follow-up suggestion sampling and mocked resume extraction.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the rest of the module depends on.
type Source interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewSeeded returns a deterministic Source that is safe for concurrent use.
// Two sources built from the same seed yield the same sequence.
func NewSeeded(seed uint64) Source {
	return Synchronized(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New returns a Source seeded from the wall clock. This is the production
// behavior: skill levels and suggestion sampling are intentionally
// probabilistic.
func New() Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Locked serializes access to an underlying Source.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// Synchronized wraps src in a Locked. A src that is already Locked is
// returned unchanged.
func Synchronized(src Source) Source {
	if l, ok := src.(*Locked); ok {
		return l
	}
	return &Locked{src: src}
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Shuffle holds the lock while swap runs; swap must not use l.
func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Shuffle(n, swap)
}

// Fixed is a Source that always returns the same values. It is useful in
// tests that need to pin the random branch being exercised.
type Fixed struct {
	Int   int
	Float float64
}

// IntN returns f.Int clamped to [0, n).
func (f Fixed) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	if f.Int < 0 {
		return 0
	}
	if f.Int >= n {
		return n - 1
	}
	return f.Int
}

// Float64 returns f.Float.
func (f Fixed) Float64() float64 {
	return f.Float
}

// Shuffle leaves the order unchanged.
func (f Fixed) Shuffle(int, func(i, j int)) {}
