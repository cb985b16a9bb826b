package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/cadavrebot/cadavre/internal/random Rand

// Rand provides the randomness the game needs: agreement coin flips,
// the player shuffle and example picks.
type Rand interface {
	// Bool returns a fair coin flip.
	Bool() bool

	// Intn returns a uniform value in [0, n).
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// Config for the randomness source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source implements Rand using math/rand.
type Source struct {
	random *rand.Rand
}

// New creates a new randomness source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Bool returns a fair coin flip.
func (s *Source) Bool() bool {
	return s.random.Intn(2) == 0
}

// Intn returns a uniform value in [0, n).
func (s *Source) Intn(n int) int {
	return s.random.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.random.Shuffle(n, swap)
}
