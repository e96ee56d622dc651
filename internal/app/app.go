package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"elementquiz/internal/assets"
	"elementquiz/internal/devtools"
	"elementquiz/internal/quiz"
	"elementquiz/internal/telemetry"
	"elementquiz/internal/ui"

	"github.com/google/uuid"
)

var errNextDisabled = errors.New("next is not available until the question is answered")

type App struct {
	cfg Config

	logger  Logger
	machine quiz.StateMachine
	catalog assets.Provider
	demo    devtools.Demo
	view    ui.View

	sessionID string
	status    string
	notices   []string
}

func New(cfg Config) (*App, error) {
	return NewWithDeps(cfg, Deps{})
}

func NewWithDeps(cfg Config, deps Deps) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		l, err := telemetry.NewJSONLogger(cfg.LogPath)
		if err != nil {
			return nil, fmt.Errorf("open log %s: %w", cfg.LogPath, err)
		}
		logger = l
	}

	catalog := deps.Catalog
	if catalog == nil {
		c, err := assets.Load(cfg.CatalogPath)
		if err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("load element catalog: %w", err)
		}
		catalog = c
	}

	machine := deps.Machine
	if machine == nil {
		machine = quiz.NewSeeded(cfg.Seed)
	}
	demo := deps.Demo
	if demo == nil {
		demo = devtools.NewManager()
	}
	view := deps.View
	if view == nil {
		view = ui.New(ui.Options{
			ASCIIOnly:    cfg.ASCIIOnly,
			Debug:        cfg.DebugLayout,
			StyleVariant: cfg.UI.StyleVariant,
			MotionLevel:  cfg.UI.MotionLevel,
		})
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		machine:   machine,
		catalog:   catalog,
		demo:      demo,
		view:      view,
		sessionID: uuid.NewString(),
	}
	view.SetController(a)
	a.reportMissingCards()
	return a, nil
}

// Run blocks until the view exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", a.fields(map[string]any{
		"style":  a.cfg.UI.StyleVariant,
		"motion": a.cfg.UI.MotionLevel,
		"seeded": a.cfg.Seed != 0,
	}))

	if a.cfg.DemoScenario != "" {
		a.applyDemoScenario(a.cfg.DemoScenario)
	}
	a.view.Refresh()
	if len(a.notices) > 0 {
		a.view.FlashStatus(strings.Join(a.notices, "  "))
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.view.Stop()
		case <-done:
		}
	}()

	err := a.view.Run()
	if err != nil {
		a.logger.Error("app.view_failed", a.fields(map[string]any{"error": err.Error()}))
	}
	return err
}

func (a *App) Close() {
	_ = a.logger.Close()
}

func (a *App) SessionID() string {
	return a.sessionID
}

func (a *App) OnModeChanged(index int) {
	a.status = ""
	mode := modeForIndex(index)
	a.machine.SetMode(mode)
	a.logger.Info(string(eventModeChanged), a.fields(map[string]any{"selector_index": index}))
}

func (a *App) OnShowAnswer() {
	a.status = ""
	if err := a.machine.RevealAnswer(); err != nil {
		a.reject("reveal", err)
		return
	}
	a.logger.Info(string(eventAnswerShown), a.fields(map[string]any{"element": a.machine.CurrentElementName()}))
}

func (a *App) OnNext() {
	a.status = ""
	if !a.machine.ViewModel().NextEnabled {
		a.reject("next", errNextDisabled)
		return
	}
	a.machine.Advance()
	s := a.machine.Session()
	if s.Phase == quiz.PhaseScore {
		a.logger.Info(string(eventScoreShown), a.fields(map[string]any{
			"correct": s.CorrectCount,
			"total":   len(s.Elements),
		}))
		return
	}
	a.logger.Info(string(eventNext), a.fields(nil))
}

func (a *App) OnSubmitAnswer(text string) {
	a.status = ""
	expected := a.machine.CurrentElementName()
	res, err := a.machine.SubmitAnswer(text)
	if err != nil {
		a.reject("submit", err)
		return
	}
	a.logger.Info(string(eventAnswerGraded), a.fields(map[string]any{
		"element":  expected,
		"answer":   text,
		"correct":  res.Correct,
		"distance": res.Distance,
	}))
}

func (a *App) OnScoreDismissed() {
	a.status = ""
	before := a.machine.Session()
	a.machine.DismissScore()
	a.logger.Info(string(eventScoreDismissed), a.fields(map[string]any{
		"correct": before.CorrectCount,
		"total":   len(before.Elements),
	}))
}

func (a *App) OnQuit() {
	a.logger.Info(string(eventQuit), a.fields(nil))
	a.view.Stop()
}

// State maps the current view-model onto what the UI draws.
func (a *App) State() ui.CardState {
	vm := a.machine.ViewModel()
	s := a.machine.Session()

	state := ui.CardState{
		Modes:       append([]string(nil), modeLabels...),
		ModeIndex:   vm.ModeIndex,
		AnswerLabel: vm.AnswerLabel,
		Input: ui.InputState{
			Visible: vm.Input.Visible,
			Enabled: vm.Input.Enabled,
			Focused: vm.Input.Focused,
			Clear:   vm.Input.Clear,
		},
		ShowAnswerVisible: vm.ShowAnswerVisible,
		NextLabel:         vm.NextLabel,
		NextEnabled:       vm.NextEnabled,
		QuizActive:        vm.Mode == quiz.ModeQuiz,
		Position:          vm.Position,
		Total:             vm.Total,
		Status:            a.status,
	}
	if card, ok := a.catalog.Lookup(vm.ElementName); ok {
		state.HasCard = true
		state.Card = ui.CardArt{
			Symbol:       card.Symbol,
			AtomicNumber: card.AtomicNumber,
			AtomicMass:   card.AtomicMass,
			Category:     card.Category,
		}
	}
	if vm.Mode == quiz.ModeQuiz {
		switch vm.Phase {
		case quiz.PhaseQuestion:
			state.Answered = s.Index
		case quiz.PhaseAnswer:
			state.Answered = s.Index + 1
			state.AnswerTone = ui.ToneFail
			if s.LastAnswerCorrect {
				state.AnswerTone = ui.TonePass
			}
		case quiz.PhaseScore:
			state.Answered = vm.Total
		}
	}
	if vm.ScoreDialog != nil {
		state.Score = &ui.ScoreDialog{
			Title:   vm.ScoreDialog.Title,
			Message: vm.ScoreDialog.Message,
			Action:  vm.ScoreDialog.Action,
		}
	}
	return state
}

func (a *App) applyDemoScenario(name string) {
	s := a.demo.Resolve(name)
	a.logger.Info("dev.demo.apply.begin", a.fields(map[string]any{"requested": name, "resolved": s.Name}))
	if requested := strings.ToLower(strings.TrimSpace(name)); requested != s.Name {
		a.notices = append(a.notices, fmt.Sprintf("Unknown demo %q, showing %s.", name, s.Name))
		a.logger.Error("dev.demo.unknown", a.fields(map[string]any{
			"requested": name,
			"available": a.demo.Names(),
		}))
	}
	if err := a.demo.Play(a.machine, s); err != nil {
		a.notices = append(a.notices, "Demo failed: "+err.Error())
		a.logger.Error("dev.demo.apply.failed", a.fields(map[string]any{"demo": s.Name, "error": err.Error()}))
		return
	}
	a.logger.Info("dev.demo.apply.ready", a.fields(map[string]any{"demo": s.Name}))
}

// reportMissingCards logs elements without artwork and queues a notice for
// the first screen. The quiz still runs; the UI draws a placeholder for them.
func (a *App) reportMissingCards() {
	missing := a.catalog.Missing(quiz.Elements())
	if len(missing) == 0 {
		return
	}
	a.notices = append(a.notices, "No card for "+strings.Join(missing, ", ")+".")
	a.logger.Error("assets.cards_missing", a.fields(map[string]any{"elements": missing}))
}

// reject records an input the current state does not accept. The session
// is left as it was.
func (a *App) reject(action string, err error) {
	switch {
	case errors.Is(err, quiz.ErrNotFlashCard):
		a.status = "Answers are revealed by submitting in quiz mode."
	case errors.Is(err, quiz.ErrNotAcceptingAnswers):
		a.status = "This question has already been answered."
	case errors.Is(err, errNextDisabled):
		a.status = "Submit an answer first."
	default:
		a.status = err.Error()
	}
	a.logger.Error(string(eventInvalidAction), a.fields(map[string]any{"action": action, "error": err.Error()}))
}

func (a *App) fields(extra map[string]any) map[string]any {
	s := a.machine.Session()
	out := map[string]any{
		"session": a.sessionID,
		"mode":    s.Mode.String(),
		"phase":   s.Phase.String(),
		"index":   s.Index,
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

var _ ui.Controller = (*App)(nil)
