package app

import (
	"elementquiz/internal/assets"
	"elementquiz/internal/devtools"
	"elementquiz/internal/quiz"
	"elementquiz/internal/ui"
)

type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
	Close() error
}

// Deps lets tests swap the collaborators New would build itself. Nil
// fields fall back to the real implementations.
type Deps struct {
	Machine quiz.StateMachine
	Catalog assets.Provider
	Logger  Logger
	View    ui.View
	Demo    devtools.Demo
}
