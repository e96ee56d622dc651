package grading

import (
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type LowercaseGrader struct{}

func NewGrader() *LowercaseGrader { return &LowercaseGrader{} }

// Grade lowercases both sides and compares them as typed, without trimming.
// Lowercasing keeps letters like the long s distinct, which full case
// folding would not.
func (g *LowercaseGrader) Grade(submitted, expected string) Result {
	lower := cases.Lower(language.Und)
	a := lower.String(submitted)
	b := lower.String(expected)
	return Result{
		Correct:  a == b,
		Distance: levenshtein.ComputeDistance(a, b),
	}
}

func Check(submitted, expected string) Result {
	return NewGrader().Grade(submitted, expected)
}

var _ Grader = (*LowercaseGrader)(nil)
