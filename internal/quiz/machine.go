package quiz

import (
	"errors"
	"math/rand/v2"

	"elementquiz/internal/grading"
)

var (
	ErrNotFlashCard        = errors.New("quiz: answer reveal is only available in flash card mode")
	ErrNotAcceptingAnswers = errors.New("quiz: answers are only accepted for an open quiz question")
)

var fixedElements = [...]string{"Carbon", "Gold", "Chlorine", "Sodium"}

// Elements returns the fixed element list in flash card order.
func Elements() []string {
	return append([]string(nil), fixedElements[:]...)
}

type Machine struct {
	s       Session
	shuffle Shuffler
}

// New returns a machine in flash card mode. A nil shuffler uses the
// process-wide random source.
func New(shuffle Shuffler) *Machine {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	m := &Machine{shuffle: shuffle}
	m.SetMode(ModeFlashCard)
	return m
}

// NewSeeded makes quiz permutations reproducible. Seed 0 means unseeded.
func NewSeeded(seed int64) *Machine {
	if seed == 0 {
		return New(nil)
	}
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	return New(r.Shuffle)
}

// SetMode starts a fresh session in the given mode. Nothing carries over
// from the previous mode, including when the mode does not change.
func (m *Machine) SetMode(mode Mode) {
	list := Elements()
	if mode == ModeQuiz {
		m.shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	} else {
		mode = ModeFlashCard
	}
	m.s = Session{
		Elements: list,
		Mode:     mode,
		Phase:    PhaseQuestion,
	}
}

func (m *Machine) RevealAnswer() error {
	if m.s.Mode != ModeFlashCard {
		return ErrNotFlashCard
	}
	m.s.Phase = PhaseAnswer
	return nil
}

func (m *Machine) SubmitAnswer(text string) (grading.Result, error) {
	if m.s.Mode != ModeQuiz || m.s.Phase != PhaseQuestion {
		return grading.Result{}, ErrNotAcceptingAnswers
	}
	res := grading.Check(text, m.CurrentElementName())
	m.s.LastAnswerCorrect = res.Correct
	if res.Correct {
		m.s.CorrectCount++
	}
	m.s.Phase = PhaseAnswer
	return res, nil
}

// Advance moves to the next element. Wrapping past the last element ends a
// quiz with the score phase; flash cards simply start over.
func (m *Machine) Advance() {
	if m.s.Index >= len(m.s.Elements)-1 {
		m.s.Index = 0
		if m.s.Mode == ModeQuiz {
			m.s.Phase = PhaseScore
			return
		}
		m.s.Phase = PhaseQuestion
		return
	}
	m.s.Index++
	m.s.Phase = PhaseQuestion
}

// DismissScore always returns to flash cards, never back into the quiz.
func (m *Machine) DismissScore() {
	m.SetMode(ModeFlashCard)
}

func (m *Machine) CurrentElementName() string {
	return m.s.Elements[m.s.Index]
}

func (m *Machine) Session() Session {
	out := m.s
	out.Elements = append([]string(nil), m.s.Elements...)
	return out
}

func (m *Machine) ViewModel() ViewModel {
	return Project(m.s)
}

var _ StateMachine = (*Machine)(nil)
