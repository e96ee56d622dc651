package ui

type Controller interface {
	OnModeChanged(index int)
	OnShowAnswer()
	OnNext()
	OnSubmitAnswer(text string)
	OnScoreDismissed()
	OnQuit()
	State() CardState
}

type View interface {
	Run() error
	Stop()
	SetController(Controller)
	Refresh()
	FlashStatus(msg string)
}

type LayoutMode int

const (
	LayoutWide LayoutMode = iota
	LayoutCompact
	LayoutTooSmall
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutWide:
		return "wide"
	case LayoutCompact:
		return "compact"
	default:
		return "too_small"
	}
}

type Tone int

const (
	ToneNeutral Tone = iota
	TonePass
	ToneFail
)

// CardState is the screen as the controller wants it drawn.
type CardState struct {
	Modes     []string
	ModeIndex int

	Card    CardArt
	HasCard bool

	AnswerLabel string
	AnswerTone  Tone
	Input       InputState

	ShowAnswerVisible bool
	NextLabel         string
	NextEnabled       bool

	Score *ScoreDialog

	QuizActive bool
	Position   int
	Answered   int
	Total      int

	// Status is a one-line notice for the status bar, cleared by the
	// next event.
	Status string
}

// CardArt stands in for the element picture.
type CardArt struct {
	Symbol       string
	AtomicNumber int
	AtomicMass   float64
	Category     string
}

type InputState struct {
	Visible bool
	Enabled bool
	Focused bool
	Clear   bool
}

type ScoreDialog struct {
	Title   string
	Message string
	Action  string
}
