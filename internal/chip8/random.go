package chip8

import (
	"math/rand/v2"
	"time"
)

// RandomSource provides uniformly distributed random numbers for the RND instruction.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Uint32() uint32
}

// NewRandom returns a random source seeded with the given seed. A zero seed uses the
// current time, making the sequence differ between runs.
func NewRandom(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}
