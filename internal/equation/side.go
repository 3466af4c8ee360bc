// Package equation generates solvable linear equations for the game.
// An equation starts as the trivial identity x = solution and is obscured by
// a sequence of reversible transformations applied to both sides, so the
// picked solution always remains the unique answer.
package equation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used for all float comparisons on equation
// values: answer checking, zero suppression, and distinctness.
const Epsilon = 1e-9

// Side is one side of a linear equation: A·x + B.
type Side struct {
	A float64
	B float64
}

// Eval substitutes x into the side and returns its numeric value.
func (s Side) Eval(x float64) float64 {
	return s.A*x + s.B
}

// String renders the side with sign-normalized, zero-suppressed terms.
// Unit coefficients print as bare "x"/"-x"; a side with both terms zero
// prints as "0"; constants never produce "--" or "+ -" artifacts.
func (s Side) String() string {
	var parts []string

	if math.Abs(s.A) > Epsilon {
		switch {
		case math.Abs(s.A-1) < Epsilon:
			parts = append(parts, "x")
		case math.Abs(s.A+1) < Epsilon:
			parts = append(parts, "-x")
		default:
			parts = append(parts, FormatValue(s.A)+"x")
		}
	}

	if math.Abs(s.B) > Epsilon {
		if len(parts) == 0 {
			parts = append(parts, FormatValue(s.B))
		} else if s.B > 0 {
			parts = append(parts, "+ "+FormatValue(s.B))
		} else {
			parts = append(parts, "- "+FormatValue(-s.B))
		}
	}

	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " ")
}

// FormatValue renders a float the way the game displays numbers: integral
// values without a decimal part, everything else with up to 8 significant
// digits.
func FormatValue(v float64) string {
	r := math.Round(v)
	if math.Abs(v-r) < Epsilon {
		return strconv.Itoa(int(r))
	}
	return fmt.Sprintf("%.8g", v)
}
