package utils

import (
	"math/rand"
	"sync"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SeededFloat returns a deterministic [0.0, 1.0) source. It is safe for
// concurrent use. Intended for tests and replayable reels.
func SeededFloat(seed int64) func() float64 {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // seeded for tests
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}

// SequenceFloat replays values in order, repeating the last one once the
// sequence is exhausted. Values are clamped to [0.0, 1.0).
func SequenceFloat(values ...float64) func() float64 {
	var (
		mu sync.Mutex
		i  int
	)
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		if len(values) == 0 {
			return 0
		}
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return clampUnit(v)
	}
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 0.9999999999999999
	default:
		return v
	}
}
