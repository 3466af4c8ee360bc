package equation

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormalAnswers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	domain := Solutions()

	for i := 0; i < 500; i++ {
		correct := domain[rng.Intn(len(domain))]
		answers := normalAnswers(rng, correct)

		if len(answers) != 4 {
			t.Fatalf("Expected 4 normal answers, got %d (%v)", len(answers), answers)
		}

		matches := 0
		for j, a := range answers {
			if math.Abs(a) < Epsilon {
				t.Fatalf("Zero must never be an answer: %v", answers)
			}
			if math.Abs(a-correct) < Epsilon {
				matches++
			}
			for k := j + 1; k < len(answers); k++ {
				if math.Abs(a-answers[k]) < Epsilon {
					t.Fatalf("Duplicate answer %v in %v", a, answers)
				}
			}
		}
		if matches != 1 {
			t.Fatalf("Expected exactly one correct answer for %v, got %d in %v",
				correct, matches, answers)
		}
	}
}

func TestGiantAnswers(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	domain := Solutions()

	for i := 0; i < 500; i++ {
		correct := domain[rng.Intn(len(domain))]
		answers := giantAnswers(rng, correct)

		if len(answers) != 12 {
			t.Fatalf("Expected 12 giant answers, got %d (%v)", len(answers), answers)
		}

		hasCorrect, hasNegation := false, false
		for j, a := range answers {
			if math.Abs(a) < Epsilon {
				t.Fatalf("Zero must never be an answer: %v", answers)
			}
			if math.Abs(a-correct) < Epsilon {
				hasCorrect = true
			}
			if math.Abs(a+correct) < Epsilon {
				hasNegation = true
			}
			for k := j + 1; k < len(answers); k++ {
				if math.Abs(a-answers[k]) < Epsilon {
					t.Fatalf("Duplicate answer %v in %v", a, answers)
				}
			}
		}
		if !hasCorrect {
			t.Fatalf("Giant answers must contain the solution %v: %v", correct, answers)
		}
		if !hasNegation {
			t.Fatalf("Giant answers must contain the negated solution %v: %v", -correct, answers)
		}
	}
}

func TestGenerateAnswerSets(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		normal := Generate(rng, 40, false)
		if len(normal.Answers) != 4 {
			t.Fatalf("Normal equation carries %d answers, expected 4", len(normal.Answers))
		}
		if !containsValue(normal.Answers, normal.Solution) {
			t.Fatalf("Normal answers %v missing solution %v", normal.Answers, normal.Solution)
		}

		giant := Generate(rng, 40, true)
		if len(giant.Answers) != 12 {
			t.Fatalf("Giant equation carries %d answers, expected 12", len(giant.Answers))
		}
		if !containsValue(giant.Answers, giant.Solution) {
			t.Fatalf("Giant answers %v missing solution %v", giant.Answers, giant.Solution)
		}
	}
}
