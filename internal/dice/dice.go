// Package dice rolls the six-sided die used by the game.
//
// A Roller is deterministic with respect to its seed: two rollers built from
// the same seed yield the same sequence of faces. Use NewSeed for a fresh one.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

const Sides = 6

// Roller is safe for concurrent use.
type Roller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRoller(seed int64) *Roller {
	return &Roller{
		rng: rand.New(rand.NewSource(seed)), //nolint: gosec // game dice, not secrets
	}
}

// Roll returns a face in [1, 6].
func (that *Roller) Roll() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(Sides) + 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
