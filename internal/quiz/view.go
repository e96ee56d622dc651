package quiz

import "fmt"

const (
	LabelUnrevealed   = "?"
	LabelCorrect      = "Correct!"
	LabelWrongPrefix  = "❌ Correct Answer: "
	LabelNextElement  = "Next Element"
	LabelNextQuestion = "Next Question"
	LabelShowScore    = "Show Score"
	ScoreTitle        = "Quiz Score"
	ScoreAction       = "OK"
)

// Project computes what the screen shows for a session. It has no side
// effects; the same session always yields the same view-model.
func Project(s Session) ViewModel {
	vm := ViewModel{
		Mode:     s.Mode,
		Phase:    s.Phase,
		Position: s.Index + 1,
		Total:    len(s.Elements),
	}
	if s.Index >= 0 && s.Index < len(s.Elements) {
		vm.ElementName = s.Elements[s.Index]
	}
	last := s.Index == len(s.Elements)-1

	if s.Mode == ModeFlashCard {
		vm.ModeIndex = 0
		vm.ShowAnswerVisible = true
		vm.NextEnabled = true
		vm.NextLabel = LabelNextElement
		if s.Phase == PhaseAnswer {
			vm.AnswerLabel = vm.ElementName
		} else {
			vm.AnswerLabel = LabelUnrevealed
		}
		return vm
	}

	vm.ModeIndex = 1
	vm.NextLabel = LabelNextQuestion
	if last {
		vm.NextLabel = LabelShowScore
	}
	switch s.Phase {
	case PhaseQuestion:
		vm.Input = InputState{Visible: true, Enabled: true, Focused: true, Clear: true}
	case PhaseAnswer:
		vm.NextEnabled = true
		vm.Input = InputState{Visible: true}
		if s.LastAnswerCorrect {
			vm.AnswerLabel = LabelCorrect
		} else {
			vm.AnswerLabel = LabelWrongPrefix + vm.ElementName
		}
	case PhaseScore:
		vm.ScoreDialog = &ScoreDialog{
			Title:   ScoreTitle,
			Message: fmt.Sprintf("Your score is %d out of %d.", s.CorrectCount, len(s.Elements)),
			Action:  ScoreAction,
		}
	}
	return vm
}
