package devtools

import (
	"fmt"
	"sort"
	"strings"

	"elementquiz/internal/quiz"
)

const DefaultScenario = "flash_question"

// WrongAnswer never matches an element name.
const WrongAnswer = "unobtainium"

type Step string

const (
	StepReveal        Step = "reveal"
	StepSubmitCorrect Step = "submit_correct"
	StepSubmitWrong   Step = "submit_wrong"
	StepNext          Step = "next"
)

type Scenario struct {
	Name  string
	Mode  quiz.Mode
	Steps []Step
}

var scenarios = map[string]Scenario{
	"flash_question": {Mode: quiz.ModeFlashCard},
	"flash_answer":   {Mode: quiz.ModeFlashCard, Steps: []Step{StepReveal}},
	"quiz_question":  {Mode: quiz.ModeQuiz},
	"quiz_correct":   {Mode: quiz.ModeQuiz, Steps: []Step{StepSubmitCorrect}},
	"quiz_wrong":     {Mode: quiz.ModeQuiz, Steps: []Step{StepSubmitWrong}},
	"quiz_last": {Mode: quiz.ModeQuiz, Steps: []Step{
		StepSubmitCorrect, StepNext,
		StepSubmitWrong, StepNext,
		StepSubmitCorrect, StepNext,
	}},
	"quiz_score": {Mode: quiz.ModeQuiz, Steps: []Step{
		StepSubmitCorrect, StepNext,
		StepSubmitWrong, StepNext,
		StepSubmitCorrect, StepNext,
		StepSubmitCorrect, StepNext,
	}},
}

type Manager struct{}

func NewManager() *Manager { return &Manager{} }

// Resolve looks a scenario up by name. Unknown names fall back to the
// flash card question screen.
func (m *Manager) Resolve(name string) Scenario {
	key := strings.ToLower(strings.TrimSpace(name))
	s, ok := scenarios[key]
	if !ok {
		key = DefaultScenario
		s = scenarios[key]
	}
	s.Name = key
	s.Steps = append([]Step(nil), s.Steps...)
	return s
}

func (m *Manager) Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Play resets the driver into the scenario's mode and replays its steps.
func (m *Manager) Play(d Driver, s Scenario) error {
	d.SetMode(s.Mode)
	for i, step := range s.Steps {
		var err error
		switch step {
		case StepReveal:
			err = d.RevealAnswer()
		case StepSubmitCorrect:
			_, err = d.SubmitAnswer(d.CurrentElementName())
		case StepSubmitWrong:
			_, err = d.SubmitAnswer(WrongAnswer)
		case StepNext:
			d.Advance()
		default:
			err = fmt.Errorf("unknown step %q", step)
		}
		if err != nil {
			return fmt.Errorf("scenario %s step %d (%s): %w", s.Name, i, step, err)
		}
	}
	return nil
}

var _ Demo = (*Manager)(nil)
