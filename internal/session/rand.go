package session

import "math/rand/v2"

// Rand is the randomness a session is built from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

func newUnseededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
