// Package workload provides the synthetic per-render computation used by the
// freeze demo to make rebuilds measurably expensive.
package workload

import (
	"math/rand/v2"
	"strconv"
)

// DefaultIterations is the number of additions performed by a single render.
const DefaultIterations = 1_000_000

// Sum adds iterations pseudo-random values from [0, 1) and returns the total.
// A nil rng uses the global source. Non-positive iterations return 0.
func Sum(iterations int, rng *rand.Rand) float64 {
	var result float64
	if rng == nil {
		for i := 0; i < iterations; i++ {
			result += rand.Float64()
		}
		return result
	}
	for i := 0; i < iterations; i++ {
		result += rng.Float64()
	}
	return result
}

// Format renders a workload result with exactly two fraction digits.
func Format(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
