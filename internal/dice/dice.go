package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/showdown/internal/dice Roller

// Roller provides dice rolling functionality. All of the engine's
// randomness (duel rolls, first-roller picks, bracket shuffles) flows
// through this interface so tests can drive outcomes deterministically.
type Roller interface {
	// Roll returns a uniformly random integer in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller implements Roller using math/rand. The mutex keeps a single
// roller shareable across arenas; rand.Rand is not safe for concurrent use.
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &roller{
		random: rand.New(source),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}
