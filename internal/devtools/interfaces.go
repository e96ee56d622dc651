package devtools

import (
	"elementquiz/internal/grading"
	"elementquiz/internal/quiz"
)

type Demo interface {
	Resolve(name string) Scenario
	Names() []string
	Play(d Driver, s Scenario) error
}

// Driver is the part of the quiz machine a scenario needs.
type Driver interface {
	SetMode(mode quiz.Mode)
	RevealAnswer() error
	SubmitAnswer(text string) (grading.Result, error)
	Advance()
	CurrentElementName() string
}
