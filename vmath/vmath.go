package vmath

import "math"

// Epsilon is the smallest magnitude treated as a usable direction
const Epsilon = 1e-9

// --- Scalars ---

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether f is neither NaN nor infinite
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RandomInt returns a uniform integer in [low, high], both inclusive
func RandomInt(r *FastRand, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + r.Intn(high-low+1)
}

// RandomRange returns a uniform float in [low, high)
func RandomRange(r *FastRand, low, high float64) float64 {
	return low + r.Float64()*(high-low)
}
