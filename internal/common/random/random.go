package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/hidayahlabs/dhikrd/internal/common/random Source

// Source provides random selection functionality
type Source interface {
	// IntBetween returns a random integer in [min, max] inclusive
	IntBetween(min, max int) int

	// Pick returns a random index in [0, n)
	Pick(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultSource implements Source using math/rand
type DefaultSource struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *DefaultSource {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultSource{
		random: rand.New(source),
	}
}

// IntBetween returns a random integer in [min, max] inclusive
func (s *DefaultSource) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.random.Intn(max-min+1)
}

// Pick returns a random index in [0, n)
func (s *DefaultSource) Pick(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}
