package quiz

type Mode int

const (
	ModeFlashCard Mode = iota
	ModeQuiz
)

func (m Mode) String() string {
	switch m {
	case ModeQuiz:
		return "quiz"
	default:
		return "flash_card"
	}
}

type Phase int

const (
	PhaseQuestion Phase = iota
	PhaseAnswer
	PhaseScore
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswer:
		return "answer"
	case PhaseScore:
		return "score"
	default:
		return "question"
	}
}

// Session is the whole mutable state of one run of either mode.
type Session struct {
	Elements          []string
	Index             int
	Mode              Mode
	Phase             Phase
	LastAnswerCorrect bool
	CorrectCount      int
}

// Shuffler has the signature of rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

type InputState struct {
	Visible bool
	Enabled bool
	Focused bool
	// Clear asks the view to empty the field before the next question.
	Clear bool
}

type ScoreDialog struct {
	Title   string
	Message string
	Action  string
}

// ViewModel is everything a front end needs to draw the quiz screen.
type ViewModel struct {
	Mode      Mode
	Phase     Phase
	ModeIndex int
	// ElementName is the key for the image provider. It is set in every
	// phase; whether the name itself is shown is decided by AnswerLabel.
	ElementName       string
	AnswerLabel       string
	Input             InputState
	NextLabel         string
	NextEnabled       bool
	ShowAnswerVisible bool
	ScoreDialog       *ScoreDialog
	Position          int
	Total             int
}
