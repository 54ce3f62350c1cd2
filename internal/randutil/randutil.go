// Package randutil provides small draw helpers over an injected rand source.
// Every generator in this project takes an explicit *rand.Rand so tests can
// fix the seed; nothing here touches the global source.
package randutil

import (
	"fmt"
	"math/rand"
)

// IntBetween returns a uniformly random integer in [min, max] inclusive.
func IntBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// FloatBetween returns a uniformly random float in [min, max).
func FloatBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Choice returns a uniformly random element of choices.
func Choice(rng *rand.Rand, choices []string) string {
	return choices[rng.Intn(len(choices))]
}

// Weighted returns a random element of choices drawn with the given relative
// weights (a cumulative-weight table walk). Weights need not sum to 1.
// Panics on mismatched lengths or a non-positive total, which are programmer
// errors, not runtime conditions.
func Weighted(rng *rand.Rand, choices []string, weights []float64) string {
	if len(choices) == 0 || len(choices) != len(weights) {
		panic(fmt.Sprintf("randutil: %d choices with %d weights", len(choices), len(weights)))
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("randutil: total weight must be positive")
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return choices[i]
		}
	}
	// Float rounding can leave r at exactly 0 after the last subtraction.
	return choices[len(choices)-1]
}
