package sim

import (
	"math/rand"
	"sync"
	"time"
)

// Source supplies the randomness the outcome generator and box-score
// allocator consume. Injecting it keeps the engine deterministic under test:
// fix the seed and the full simulation output is reproducible.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform integer in [0,n). n must be > 0.
	Intn(n int) int
}

// lockedSource wraps math/rand for safe use from concurrent sweeps.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a seeded random source. A zero seed falls back to the
// current time, matching production behavior.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
