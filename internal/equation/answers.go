package equation

import (
	"math"
	"math/rand"
)

// normalAnswerCount and giantAnswerCount are fixed by the sidebar layout:
// a 2x2 grid for normal frames, 4x3 for giant ones.
const (
	normalAnswerCount = 4
	giantAnswerCount  = 12
)

func containsValue(vals []float64, v float64) bool {
	for _, x := range vals {
		if math.Abs(x-v) < Epsilon {
			return true
		}
	}
	return false
}

// normalAnswers builds the 4-entry candidate set for a normal equation:
// the solution, its negation, and two ±1 perturbations. Zero is never a
// candidate; collisions are replaced by fresh draws from the solution
// domain, which always terminates because the domain has 40 distinct
// non-zero values.
func normalAnswers(rng *rand.Rand, correct float64) []float64 {
	vals := make([]float64, 0, normalAnswerCount)
	add := func(v float64) {
		if math.Abs(v) > Epsilon && !containsValue(vals, v) {
			vals = append(vals, v)
		}
	}

	add(correct)
	add(-correct)
	if rng.Float64() < 0.5 {
		add(correct + 1)
	} else {
		add(correct - 1)
	}
	if rng.Float64() < 0.5 {
		add(-correct + 1)
	} else {
		add(-correct - 1)
	}

	for len(vals) < normalAnswerCount {
		add(solutions[rng.Intn(len(solutions))])
	}

	rng.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	return vals
}

// giantAnswers builds the 12-entry candidate set for a giant equation:
// 6 distinct primaries including the solution, unioned with their
// negations, padded with distinct non-zero domain values when negations
// collide with primaries.
func giantAnswers(rng *rand.Rand, correct float64) []float64 {
	primaries := make([]float64, 0, 6)
	primaries = append(primaries, correct)
	for len(primaries) < 6 {
		c := solutions[rng.Intn(len(solutions))]
		if !containsValue(primaries, c) {
			primaries = append(primaries, c)
		}
	}

	vals := make([]float64, 0, giantAnswerCount)
	for _, p := range primaries {
		if !containsValue(vals, p) {
			vals = append(vals, p)
		}
		if !containsValue(vals, -p) {
			vals = append(vals, -p)
		}
	}

	for len(vals) < giantAnswerCount {
		c := solutions[rng.Intn(len(solutions))]
		if !containsValue(vals, c) {
			vals = append(vals, c)
		}
	}

	rng.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	return vals
}
