package tictactoe

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the opponent and promo codes draw from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

// DefaultRand draws from the goroutine-safe top-level math/rand/v2 generator.
func DefaultRand() Rand {
	return globalRand{}
}

func (globalRand) Float64() float64 { return rand.Float64() } //nolint: gosec // not security sensitive

func (globalRand) IntN(n int) int { return rand.IntN(n) } //nolint: gosec // not security sensitive

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRand returns a reproducible generator that is safe for concurrent sessions.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint: gosec // seeded so games can be replayed
	}
}

func (that *lockedRand) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}

func (that *lockedRand) IntN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}
