package colordash

import "math/rand"

// RNG is the randomness source used for spawning.
// Tests inject a scripted implementation to make spawns deterministic.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// NewRNG returns a seeded math/rand source.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}
