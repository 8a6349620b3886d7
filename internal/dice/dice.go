package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/linewidth/internal/dice Roller

// Roller picks the hidden thickness for each round
type Roller interface {
	// Between returns a uniformly distributed integer in [min, max]
	Between(min, max int) int
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type roller struct {
	random *rand.Rand
}

// New creates a roller. A zero seed means seed from the clock.
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Between returns a value in the inclusive range. Swapped bounds are
// normalised and an empty range yields min.
func (r *roller) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if max == min {
		return min
	}
	return min + r.random.Intn(max-min+1)
}
