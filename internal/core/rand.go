package core

import "math/rand"

// NewRand returns a random source for one game instance.
// Generation and behaviour code receives this handle explicitly so that tests
// can pin the seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}
