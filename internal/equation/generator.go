package equation

import (
	"math"
	"math/rand"
)

// Equation is a generated puzzle: the display text, the unique solution,
// and the candidate answers shown to the player (4 normal, 12 giant).
type Equation struct {
	Text     string
	Solution float64
	Answers  []float64
	Giant    bool

	// Left and Right keep the symbolic sides so callers (and tests) can
	// verify that substituting Solution balances the equation.
	Left  Side
	Right Side
}

// Check reports whether a submitted value matches the solution.
func (e Equation) Check(value float64) bool {
	return math.Abs(value-e.Solution) < Epsilon
}

// transform is one reversible algebraic operation applied to both sides.
type transform int

const (
	addConst transform = iota // add an integer constant to both sides
	subX                      // subtract a multiple of x from both sides
	mulBoth                   // multiply both sides by ±{2,3,4,5}
	divBoth                   // divide both sides by ±2
)

// solutions is the finite answer domain: every non-zero multiple of 0.5 in
// [-10, 10], 40 values in total.
var solutions = buildSolutions()

func buildSolutions() []float64 {
	vals := make([]float64, 0, 40)
	for v := -10.0; v <= 10.0+Epsilon; v += 0.5 {
		if math.Abs(v) > Epsilon {
			vals = append(vals, v)
		}
	}
	return vals
}

// Solutions returns a copy of the valid-solution domain.
func Solutions() []float64 {
	out := make([]float64, len(solutions))
	copy(out, solutions)
	return out
}

// stepCount decides how many transformation steps to apply. Higher scores
// get more steps; giant equations always get one extra.
func stepCount(rng *rand.Rand, score int, giant bool) int {
	var steps int
	switch {
	case score < 50:
		steps = 1
	case score < 80:
		steps = 1 + rng.Intn(2)
	default:
		steps = 1 + rng.Intn(3)
	}
	if giant {
		steps++
	}
	return steps
}

// allowedTransforms returns the transformation vocabulary unlocked at the
// given score.
func allowedTransforms(score int) []transform {
	switch {
	case score < 10:
		return []transform{addConst}
	case score < 25:
		return []transform{subX}
	case score < 35:
		return []transform{addConst, subX}
	case score < 65:
		return []transform{addConst, subX, mulBoth}
	default:
		return []transform{addConst, subX, mulBoth, divBoth}
	}
}

// apply performs one transformation on both sides, preserving the equality
// at x = solution exactly.
func apply(rng *rand.Rand, t transform, left, right *Side) {
	switch t {
	case addConst:
		c := float64(rng.Intn(11) - 5) // integer in [-5, 5]
		left.B += c
		right.B += c

	case subX:
		choices := []float64{-3, -2, -1, 1, 2, 3}
		c := choices[rng.Intn(len(choices))]
		left.A -= c
		right.A -= c

	case mulBoth:
		sign := 1.0
		if rng.Intn(2) == 1 {
			sign = -1.0
		}
		factors := []float64{2, 3, 4, 5}
		f := factors[rng.Intn(len(factors))] * sign
		left.A *= f
		left.B *= f
		right.A *= f
		right.B *= f

	case divBoth:
		f := 2.0
		if rng.Intn(2) == 1 {
			f = -2.0
		}
		left.A /= f
		left.B /= f
		right.A /= f
		right.B /= f
	}
}

// Generate produces a linear equation whose unique solution is drawn
// uniformly from the valid-solution domain. The score controls both the
// number of transformation steps and the transformation vocabulary; giant
// equations get an extra step and a 12-entry answer set.
//
// Generate is a pure function of its inputs and the random source: it
// mutates no shared state.
func Generate(rng *rand.Rand, score int, giant bool) Equation {
	solution := solutions[rng.Intn(len(solutions))]

	left := Side{A: 1, B: 0}
	right := Side{A: 0, B: solution}

	vocab := allowedTransforms(score)
	steps := stepCount(rng, score, giant)
	for i := 0; i < steps; i++ {
		t := vocab[rng.Intn(len(vocab))]
		apply(rng, t, &left, &right)
	}

	var answers []float64
	if giant {
		answers = giantAnswers(rng, solution)
	} else {
		answers = normalAnswers(rng, solution)
	}

	return Equation{
		Text:     left.String() + " = " + right.String(),
		Solution: solution,
		Answers:  answers,
		Giant:    giant,
		Left:     left,
		Right:    right,
	}
}
