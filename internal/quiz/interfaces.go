package quiz

import "elementquiz/internal/grading"

type StateMachine interface {
	SetMode(mode Mode)
	RevealAnswer() error
	SubmitAnswer(text string) (grading.Result, error)
	Advance()
	DismissScore()
	CurrentElementName() string
	Session() Session
	ViewModel() ViewModel
}
