package app

// event is one controller input as it appears in the event log.
type event string

const (
	eventModeChanged    event = "quiz.mode_changed"
	eventAnswerShown    event = "quiz.answer_shown"
	eventNext           event = "quiz.next"
	eventAnswerGraded   event = "quiz.answer_submitted"
	eventScoreShown     event = "quiz.score_shown"
	eventScoreDismissed event = "quiz.score_dismissed"
	eventInvalidAction  event = "quiz.invalid_action"
	eventQuit           event = "app.quit"
)
