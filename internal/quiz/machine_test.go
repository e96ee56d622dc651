package quiz

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func TestNewStartsInFlashCardMode(t *testing.T) {
	m := New(nil)
	s := m.Session()
	if s.Mode != ModeFlashCard || s.Phase != PhaseQuestion || s.Index != 0 {
		t.Fatalf("unexpected initial session: %#v", s)
	}
	want := []string{"Carbon", "Gold", "Chlorine", "Sodium"}
	if !reflect.DeepEqual(s.Elements, want) {
		t.Fatalf("got elements %v, want %v", s.Elements, want)
	}
}

func TestSetModeFlashCardUsesFixedOrder(t *testing.T) {
	m := New(reverseShuffle)
	m.SetMode(ModeQuiz)
	m.Advance()
	m.SetMode(ModeFlashCard)

	s := m.Session()
	want := []string{"Carbon", "Gold", "Chlorine", "Sodium"}
	if !reflect.DeepEqual(s.Elements, want) {
		t.Fatalf("got elements %v, want %v", s.Elements, want)
	}
	if s.Index != 0 || s.Phase != PhaseQuestion {
		t.Fatalf("expected reset to first question, got index=%d phase=%v", s.Index, s.Phase)
	}
}

func TestSetModeQuizShufflesAndResetsScore(t *testing.T) {
	for i := 0; i < 20; i++ {
		m := New(nil)
		m.SetMode(ModeQuiz)
		s := m.Session()
		if !reflect.DeepEqual(sortedCopy(s.Elements), sortedCopy(Elements())) {
			t.Fatalf("quiz list is not a permutation of the fixed set: %v", s.Elements)
		}
		if s.CorrectCount != 0 || s.LastAnswerCorrect || s.Phase != PhaseQuestion || s.Index != 0 {
			t.Fatalf("unexpected quiz session: %#v", s)
		}
	}

	m := New(reverseShuffle)
	m.SetMode(ModeQuiz)
	want := []string{"Sodium", "Chlorine", "Gold", "Carbon"}
	if got := m.Session().Elements; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected injected shuffle to be used, got %v", got)
	}
}

func TestReenteringQuizDropsPreviousScore(t *testing.T) {
	m := New(reverseShuffle)
	m.SetMode(ModeQuiz)
	if _, err := m.SubmitAnswer(m.CurrentElementName()); err != nil {
		t.Fatal(err)
	}
	if m.Session().CorrectCount != 1 {
		t.Fatalf("expected one correct answer")
	}
	m.SetMode(ModeQuiz)
	s := m.Session()
	if s.CorrectCount != 0 || s.LastAnswerCorrect {
		t.Fatalf("expected score reset, got %#v", s)
	}
}

func TestSubmitAnswerCaseInsensitive(t *testing.T) {
	m := New(reverseShuffle)
	m.SetMode(ModeQuiz)
	m.s.Elements = []string{"Gold", "Carbon", "Chlorine", "Sodium"}

	res, err := m.SubmitAnswer("gold")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Fatalf("expected correct result")
	}
	s := m.Session()
	if !s.LastAnswerCorrect || s.CorrectCount != 1 || s.Phase != PhaseAnswer {
		t.Fatalf("unexpected session after correct answer: %#v", s)
	}

	m.Advance()
	if _, err := m.SubmitAnswer("silver"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s = m.Session()
	if s.LastAnswerCorrect || s.CorrectCount != 1 || s.Phase != PhaseAnswer {
		t.Fatalf("unexpected session after wrong answer: %#v", s)
	}
}

func TestSubmitAnswerRejectedOutsideQuizQuestion(t *testing.T) {
	m := New(nil)
	before := m.Session()
	if _, err := m.SubmitAnswer("Carbon"); !errors.Is(err, ErrNotAcceptingAnswers) {
		t.Fatalf("expected ErrNotAcceptingAnswers in flash card mode, got %v", err)
	}
	if !reflect.DeepEqual(before, m.Session()) {
		t.Fatalf("rejected submit must not change state")
	}

	m.SetMode(ModeQuiz)
	if _, err := m.SubmitAnswer("x"); err != nil {
		t.Fatal(err)
	}
	before = m.Session()
	if _, err := m.SubmitAnswer(m.CurrentElementName()); !errors.Is(err, ErrNotAcceptingAnswers) {
		t.Fatalf("expected ErrNotAcceptingAnswers in answer phase, got %v", err)
	}
	if !reflect.DeepEqual(before, m.Session()) {
		t.Fatalf("second submit must not change state")
	}
}

func TestRevealAnswerIdempotent(t *testing.T) {
	m := New(nil)
	if err := m.RevealAnswer(); err != nil {
		t.Fatal(err)
	}
	first := m.Session()
	if err := m.RevealAnswer(); err != nil {
		t.Fatal(err)
	}
	second := m.Session()
	if second.Phase != PhaseAnswer {
		t.Fatalf("expected answer phase, got %v", second.Phase)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second reveal changed state: %#v -> %#v", first, second)
	}
}

func TestRevealAnswerRejectedInQuiz(t *testing.T) {
	m := New(nil)
	m.SetMode(ModeQuiz)
	before := m.Session()
	if err := m.RevealAnswer(); !errors.Is(err, ErrNotFlashCard) {
		t.Fatalf("expected ErrNotFlashCard, got %v", err)
	}
	if !reflect.DeepEqual(before, m.Session()) {
		t.Fatalf("rejected reveal must not change state")
	}
}

func TestAdvanceFlashCardWrapsToQuestion(t *testing.T) {
	m := New(nil)
	for i := 1; i < 4; i++ {
		m.Advance()
		if got := m.Session().Index; got != i {
			t.Fatalf("expected index %d, got %d", i, got)
		}
	}
	if err := m.RevealAnswer(); err != nil {
		t.Fatal(err)
	}
	m.Advance()
	s := m.Session()
	if s.Index != 0 || s.Phase != PhaseQuestion || s.Mode != ModeFlashCard {
		t.Fatalf("expected wrap to first question, got %#v", s)
	}
}

func TestAdvanceResetsPhaseToQuestion(t *testing.T) {
	m := New(nil)
	if err := m.RevealAnswer(); err != nil {
		t.Fatal(err)
	}
	m.Advance()
	if s := m.Session(); s.Index != 1 || s.Phase != PhaseQuestion {
		t.Fatalf("unexpected session: %#v", s)
	}
}

func TestAdvanceFromLastQuizElementShowsScore(t *testing.T) {
	m := New(nil)
	m.SetMode(ModeQuiz)
	m.s.Index = 3
	m.Advance()
	s := m.Session()
	if s.Index != 0 {
		t.Fatalf("expected index 0, got %d", s.Index)
	}
	if s.Phase != PhaseScore {
		t.Fatalf("expected score phase, got %v", s.Phase)
	}
	if s.Mode != ModeQuiz {
		t.Fatalf("expected to remain in quiz mode until dismissal")
	}
}

func TestDismissScoreReturnsToFlashCards(t *testing.T) {
	m := New(reverseShuffle)
	m.SetMode(ModeQuiz)
	m.s.Index = 3
	m.Advance()
	m.DismissScore()
	s := m.Session()
	if s.Mode != ModeFlashCard || s.Phase != PhaseQuestion || s.Index != 0 {
		t.Fatalf("expected flash card reset, got %#v", s)
	}
	if !reflect.DeepEqual(s.Elements, Elements()) {
		t.Fatalf("expected fixed order after dismissal, got %v", s.Elements)
	}
}

func playQuiz(t *testing.T, m *Machine, answer func(name string) string) Session {
	t.Helper()
	m.SetMode(ModeQuiz)
	for i := 0; i < len(fixedElements); i++ {
		if _, err := m.SubmitAnswer(answer(m.CurrentElementName())); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		m.Advance()
	}
	return m.Session()
}

func TestFullQuizAllCorrect(t *testing.T) {
	s := playQuiz(t, New(nil), func(name string) string { return name })
	if s.CorrectCount != 4 {
		t.Fatalf("expected 4 correct, got %d", s.CorrectCount)
	}
	if s.Phase != PhaseScore {
		t.Fatalf("expected score phase, got %v", s.Phase)
	}
}

func TestFullQuizAllWrong(t *testing.T) {
	s := playQuiz(t, New(nil), func(string) string { return "Helium" })
	if s.CorrectCount != 0 {
		t.Fatalf("expected 0 correct, got %d", s.CorrectCount)
	}
}

func TestNewSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 5; i++ {
		a.SetMode(ModeQuiz)
		b.SetMode(ModeQuiz)
		if !reflect.DeepEqual(a.Session().Elements, b.Session().Elements) {
			t.Fatalf("round %d: seeded shuffles differ: %v vs %v", i, a.Session().Elements, b.Session().Elements)
		}
	}
}

func TestSessionReturnsCopy(t *testing.T) {
	m := New(nil)
	s := m.Session()
	s.Elements[0] = "Iron"
	if m.CurrentElementName() != "Carbon" {
		t.Fatalf("session copy leaked into machine state")
	}
}
