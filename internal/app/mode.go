package app

import "elementquiz/internal/quiz"

var modeLabels = []string{"Flash Cards", "Quiz"}

// modeForIndex maps the segmented selector to a mode: the first segment is
// flash cards, any other is the quiz.
func modeForIndex(index int) quiz.Mode {
	if index == 0 {
		return quiz.ModeFlashCard
	}
	return quiz.ModeQuiz
}
