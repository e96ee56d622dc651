package devtools

import (
	"testing"

	"elementquiz/internal/quiz"
)

func identity(int, func(i, j int)) {}

func TestResolveFallsBackToFlashQuestion(t *testing.T) {
	m := NewManager()
	s := m.Resolve("no-such-demo")
	if s.Name != DefaultScenario || s.Mode != quiz.ModeFlashCard || len(s.Steps) != 0 {
		t.Fatalf("unexpected fallback scenario: %+v", s)
	}
	if got := m.Resolve(" Quiz_Score ").Name; got != "quiz_score" {
		t.Fatalf("expected normalized name, got %q", got)
	}
}

func TestEveryScenarioPlays(t *testing.T) {
	m := NewManager()
	for _, name := range m.Names() {
		machine := quiz.New(identity)
		if err := m.Play(machine, m.Resolve(name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestScenarioOutcomes(t *testing.T) {
	m := NewManager()
	cases := []struct {
		name    string
		mode    quiz.Mode
		phase   quiz.Phase
		index   int
		correct int
	}{
		{"flash_question", quiz.ModeFlashCard, quiz.PhaseQuestion, 0, 0},
		{"flash_answer", quiz.ModeFlashCard, quiz.PhaseAnswer, 0, 0},
		{"quiz_question", quiz.ModeQuiz, quiz.PhaseQuestion, 0, 0},
		{"quiz_correct", quiz.ModeQuiz, quiz.PhaseAnswer, 0, 1},
		{"quiz_wrong", quiz.ModeQuiz, quiz.PhaseAnswer, 0, 0},
		{"quiz_last", quiz.ModeQuiz, quiz.PhaseQuestion, 3, 2},
		{"quiz_score", quiz.ModeQuiz, quiz.PhaseScore, 0, 3},
	}
	for _, tc := range cases {
		machine := quiz.New(identity)
		if err := m.Play(machine, m.Resolve(tc.name)); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		s := machine.Session()
		if s.Mode != tc.mode || s.Phase != tc.phase || s.Index != tc.index || s.CorrectCount != tc.correct {
			t.Fatalf("%s: got mode=%v phase=%v index=%d correct=%d", tc.name, s.Mode, s.Phase, s.Index, s.CorrectCount)
		}
	}
}

func TestPlayReportsContractViolations(t *testing.T) {
	m := NewManager()
	bad := Scenario{Name: "bad", Mode: quiz.ModeQuiz, Steps: []Step{StepReveal}}
	if err := m.Play(quiz.New(identity), bad); err == nil {
		t.Fatalf("expected reveal in quiz mode to fail")
	}
	unknown := Scenario{Name: "unknown", Mode: quiz.ModeFlashCard, Steps: []Step{"dance"}}
	if err := m.Play(quiz.New(identity), unknown); err == nil {
		t.Fatalf("expected unknown step to fail")
	}
}
