package ui

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

type applyMsg struct {
	fn func(*Root)
}

type animateMsg time.Time

type cardKeyMap struct {
	NextMode key.Binding
	PrevMode key.Binding
	Reveal   key.Binding
	Submit   key.Binding
	Next     key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func (k cardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.Reveal, k.Submit, k.Next, k.Dismiss, k.Quit}
}

func (k cardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextMode, k.PrevMode}, {k.Reveal, k.Submit, k.Next, k.Dismiss}, {k.Quit}}
}

type Root struct {
	theme        Theme
	ascii        bool
	debug        bool
	ctrl         Controller
	styleVariant string
	motionLevel  string

	mu          sync.Mutex
	program     *tea.Program
	running     bool
	stopPending bool

	layout LayoutMode
	cols   int
	rows   int

	state       CardState
	statusFlash string

	input    textinput.Model
	help     help.Model
	keymap   cardKeyMap
	progress progress.Model
	logger   *clog.Logger

	dialogPos float64
	dialogVel float64
	spring    harmonica.Spring

	lastInputEvent string
}

type Options struct {
	ASCIIOnly    bool
	Debug        bool
	StyleVariant string
	MotionLevel  string
}

func New(opts Options) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "elementquiz-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	motionLevel := normalizeMotionLevel(opts.MotionLevel)
	styleVariant := normalizeStyleVariant(opts.StyleVariant)
	spring := harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.7)
	if motionLevel == "reduced" {
		spring = harmonica.NewSpring(harmonica.FPS(30), 9.0, 0.95)
	}
	bar := progress.New(
		progress.WithWidth(20),
		progress.WithColors(lipgloss.Color("#5EC2FF"), lipgloss.Color("#79E6A6")),
		progress.WithoutPercentage(),
	)

	in := textinput.New()
	in.Placeholder = "Element name"
	in.CharLimit = 32
	in.SetWidth(24)

	r := &Root{
		theme:        ThemeForVariant(styleVariant),
		ascii:        opts.ASCIIOnly,
		debug:        opts.Debug,
		styleVariant: styleVariant,
		motionLevel:  motionLevel,
		layout:       LayoutWide,
		cols:         100,
		rows:         28,
		input:        in,
		help:         h,
		progress:     bar,
		logger:       logger,
		spring:       spring,
	}
	r.keymap = cardKeyMap{
		NextMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "mode")),
		Reveal:   key.NewBinding(key.WithKeys("a", "space"), key.WithHelp("a", "show answer")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Next:     key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter/n", "next")),
		Dismiss:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
	r.syncKeys()
	return r
}

func (r *Root) Init() tea.Cmd {
	return nil
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		return r, nil
	case applyMsg:
		if msg.fn != nil {
			msg.fn(r)
		}
		return r, r.animateIfNeeded()
	case animateMsg:
		r.dialogPos, r.dialogVel = r.spring.Update(r.dialogPos, r.dialogVel, r.dialogTarget())
		if r.shouldAnimate() {
			return r, animateTickCmd()
		}
		r.dialogPos = r.dialogTarget()
		r.dialogVel = 0
		return r, nil
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}

	if r.input.Focused() {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			width := max(1, r.cols)
			msg := "UI recovered from a rendering panic. Check logs."
			if r.statusFlash == "" {
				r.statusFlash = "Recovered UI panic"
			}
			view = tea.NewView(r.theme.Fail.Width(width).Render(trimForWidth(msg, max(1, width-1))))
		}
	}()

	v := tea.NewView(r.render())
	v.AltScreen = true
	return v
}

func (r *Root) render() string {
	if r.cols < 1 {
		r.cols = 100
	}
	if r.rows < 1 {
		r.rows = 28
	}
	base := r.renderScreen()
	if dialog := r.renderDialog(); dialog != "" && r.layout != LayoutTooSmall {
		base = r.composeDialog(base, dialog)
	}
	return base
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	if r.stopPending {
		r.stopPending = false
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

// Stop can be reached from inside Update through the controller, where a
// blocking Send would never be received. A stop that arrives before Run
// makes the next Run return at once.
func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	if p == nil {
		r.stopPending = true
	}
	r.mu.Unlock()
	if p != nil {
		go p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
}

// Refresh pulls the controller state from outside the update loop.
func (r *Root) Refresh() {
	r.apply(func(r *Root) { r.pullState() })
}

func (r *Root) FlashStatus(msg string) {
	r.apply(func(r *Root) {
		r.statusFlash = msg
	})
}

func (r *Root) apply(fn func(*Root)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	p := r.program
	running := r.running
	if !running || p == nil {
		fn(r)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	p.Send(applyMsg{fn: fn})
}

// deliver hands one event to the controller and redraws from its state.
// Controllers are called on the update goroutine; they must not block.
func (r *Root) deliver(fn func(Controller)) tea.Cmd {
	if r.ctrl == nil {
		return nil
	}
	fn(r.ctrl)
	return r.pullState()
}

func (r *Root) pullState() tea.Cmd {
	if r.ctrl == nil {
		return nil
	}
	prev := r.state
	r.state = r.ctrl.State()
	r.statusFlash = r.state.Status

	var cmds []tea.Cmd
	if r.state.Input.Clear {
		r.input.Reset()
	}
	if r.state.Input.Visible && r.state.Input.Enabled && r.state.Input.Focused {
		cmds = append(cmds, r.input.Focus())
	} else {
		r.input.Blur()
	}

	if r.state.Score != nil && prev.Score == nil {
		r.dialogPos, r.dialogVel = 0, 0
		if r.motionLevel == "off" {
			r.dialogPos = 1
		}
	}
	if r.state.Score == nil {
		r.dialogPos, r.dialogVel = 0, 0
	}
	cmds = append(cmds, r.animateIfNeeded())
	r.syncKeys()
	return tea.Batch(cmds...)
}

// syncKeys enables only the bindings that make sense for the current
// screen. Disabled bindings neither match nor show in help.
func (r *Root) syncKeys() {
	scoring := r.state.Score != nil
	typing := r.state.Input.Visible && r.state.Input.Enabled
	r.keymap.NextMode.SetEnabled(!scoring)
	r.keymap.PrevMode.SetEnabled(!scoring)
	r.keymap.Reveal.SetEnabled(!scoring && r.state.ShowAnswerVisible)
	r.keymap.Submit.SetEnabled(!scoring && typing)
	r.keymap.Next.SetEnabled(!scoring && !typing && r.state.NextEnabled)
	r.keymap.Dismiss.SetEnabled(scoring)
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%v mod:%v text:%q", msg.Code, msg.Mod, msg.Text))

	if key.Matches(msg, r.keymap.Quit) {
		if r.ctrl != nil {
			r.ctrl.OnQuit()
		}
		return r, tea.Quit
	}

	modes := max(1, len(r.state.Modes))
	switch {
	case key.Matches(msg, r.keymap.Dismiss):
		return r, r.deliver(func(c Controller) { c.OnScoreDismissed() })
	case key.Matches(msg, r.keymap.NextMode):
		next := wrapIndex(r.state.ModeIndex+1, modes)
		return r, r.deliver(func(c Controller) { c.OnModeChanged(next) })
	case key.Matches(msg, r.keymap.PrevMode):
		prev := wrapIndex(r.state.ModeIndex-1, modes)
		return r, r.deliver(func(c Controller) { c.OnModeChanged(prev) })
	case key.Matches(msg, r.keymap.Submit):
		text := r.input.Value()
		return r, r.deliver(func(c Controller) { c.OnSubmitAnswer(text) })
	}

	if r.input.Focused() {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}

	switch {
	case key.Matches(msg, r.keymap.Reveal):
		return r, r.deliver(func(c Controller) { c.OnShowAnswer() })
	case key.Matches(msg, r.keymap.Next):
		return r, r.deliver(func(c Controller) { c.OnNext() })
	}
	return r, nil
}

func (r *Root) renderScreen() string {
	w, h := r.cols, r.rows
	mode := DetermineLayoutMode(w, h)
	r.layout = mode

	if mode == LayoutTooSmall {
		msg := []string{
			"Terminal too small",
			fmt.Sprintf("Current: %dx%d", w, h),
			fmt.Sprintf("Minimum: %dx%d", minCols, minRows),
			"Resize the terminal to continue.",
		}
		panel := r.drawPanel("Resize Required", msg, min(40, w), min(8, h))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
	}

	header := r.headerText(w)
	status := r.statusText(w)
	bodyH := max(3, h-2)

	var body string
	if mode == LayoutWide {
		cardW := min(34, w/2)
		cardPanel := r.drawPanel("Element", r.cardLines(cardW-2), cardW, bodyH)
		quizPanel := r.drawPanel(r.modeTitle(), r.controlLines(w-cardW-2), w-cardW, bodyH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, cardPanel, quizPanel)
	} else {
		lines := append(r.cardLines(w-2), "")
		lines = append(lines, r.controlLines(w-2)...)
		body = r.drawPanel(r.modeTitle(), lines, w, bodyH)
	}
	return header + "\n" + body + "\n" + status
}

func (r *Root) modeTitle() string {
	if r.state.ModeIndex >= 0 && r.state.ModeIndex < len(r.state.Modes) {
		return r.state.Modes[r.state.ModeIndex]
	}
	return "Element Quiz"
}

func (r *Root) headerText(width int) string {
	parts := []string{"Element Quiz", " "}
	for i, name := range r.state.Modes {
		selected := i == r.state.ModeIndex
		switch {
		case r.ascii && selected:
			parts = append(parts, "["+name+"]")
		case r.ascii:
			parts = append(parts, " "+name+" ")
		case selected:
			parts = append(parts, r.theme.TabSelected.Render(name))
		default:
			parts = append(parts, r.theme.Tab.Render(name))
		}
	}
	return r.theme.Header.Width(width).Render(ansi.Truncate(strings.Join(parts, ""), max(1, width-2), ""))
}

func (r *Root) statusText(width int) string {
	text := r.help.View(r.keymap)
	if r.statusFlash != "" {
		text = r.statusFlash + "  " + text
	}
	if r.debug {
		text = fmt.Sprintf("%dx%d %s | %s", r.cols, r.rows, r.layout, text)
	}
	return r.theme.Status.Width(width).Render(ansi.Truncate(text, max(1, width-2), "…"))
}

// cardLines draws the element tile. A missing card renders a placeholder
// so the quiz still works without artwork.
func (r *Root) cardLines(width int) []string {
	tileW := min(18, max(10, width-2))
	var inner []string
	if !r.state.HasCard {
		inner = []string{"", "", centerCells("no image", tileW-2), ""}
	} else {
		c := r.state.Card
		inner = []string{
			padCells(fmt.Sprintf("%d", c.AtomicNumber), tileW-2),
			"",
			centerCells(r.theme.Symbol.Render(c.Symbol), tileW-2),
			"",
			centerCells(formatMass(c.AtomicMass), tileW-2),
			centerCells(strings.ReplaceAll(c.Category, "_", " "), tileW-2),
		}
	}
	tile := strings.Split(r.drawPanel("", inner, tileW, len(inner)+2), "\n")
	out := []string{""}
	for _, line := range tile {
		out = append(out, centerCells(line, width))
	}
	return out
}

func (r *Root) controlLines(width int) []string {
	s := r.state
	lines := []string{""}

	answer := s.AnswerLabel
	switch s.AnswerTone {
	case TonePass:
		answer = r.theme.Pass.Render(answer)
	case ToneFail:
		answer = r.theme.Fail.Render(answer)
	default:
		if answer != "" {
			answer = r.theme.Accent.Render(answer)
		}
	}
	lines = append(lines, " "+answer, "")

	if s.Input.Visible {
		r.input.SetWidth(max(8, min(32, width-6)))
		field := r.input.View()
		if !s.Input.Enabled {
			field = r.theme.Muted.Render(ansi.Strip(field))
		}
		lines = append(lines, " "+field, "")
	}

	var buttons []string
	if s.ShowAnswerVisible {
		buttons = append(buttons, r.button("Show Answer", "a", true))
	}
	if s.NextLabel != "" {
		buttons = append(buttons, r.button(s.NextLabel, "enter", s.NextEnabled && !s.Input.Enabled))
	}
	lines = append(lines, " "+strings.Join(buttons, "  "), "")

	if s.QuizActive && s.Total > 0 {
		r.progress.SetWidth(max(8, min(30, width-20)))
		pct := float64(s.Answered) / float64(s.Total)
		lines = append(lines, fmt.Sprintf(" Question %d of %d  %s", s.Position, s.Total, r.progress.ViewAs(pct)))
	} else if s.Total > 0 {
		lines = append(lines, r.theme.Muted.Render(fmt.Sprintf(" Card %d of %d", s.Position, s.Total)))
	}
	return lines
}

func (r *Root) button(label, hint string, enabled bool) string {
	open, closing := "[ ", " ]"
	if !r.ascii {
		open, closing = "⟦ ", " ⟧"
	}
	text := open + label + " (" + hint + ")" + closing
	if !enabled {
		return r.theme.ButtonDisabled.Render(text)
	}
	return r.theme.Button.Render(text)
}

func (r *Root) renderDialog() string {
	d := r.state.Score
	if d == nil {
		return ""
	}
	lines := []string{"", d.Message, "", "[ " + d.Action + " ]"}
	width := max(28, ansi.StringWidth(d.Message)+6)
	for i := range lines {
		lines[i] = centerCells(lines[i], width-2)
	}
	return r.drawPanel(d.Title, lines, width, len(lines)+3)
}

// composeDialog drops the dialog in from above; dialogPos runs from 0
// (hidden) to 1 (centred).
func (r *Root) composeDialog(base, dialog string) string {
	lines := strings.Split(dialog, "\n")
	oh := len(lines)
	ow := ansi.StringWidth(ansi.Strip(lines[0]))
	finalRow := (r.rows - oh) / 2
	row := int(math.Round(float64(finalRow+oh)*r.dialogPos)) - oh
	col := max(0, (r.cols-ow)/2)
	return composeOverlayAt(base, dialog, r.cols, r.rows, row, col)
}

func (r *Root) dialogTarget() float64 {
	if r.state.Score != nil {
		return 1
	}
	return 0
}

func (r *Root) drawPanel(title string, lines []string, width, height int) string {
	width = max(4, width)
	height = max(3, height)
	innerW := width - 2
	innerH := height - 2

	h, v := "─", "│"
	tl, tr, bl, br := "╭", "╮", "╰", "╯"
	if r.ascii {
		h, v = "-", "|"
		tl, tr, bl, br = "+", "+", "+", "+"
	}

	top := tl + strings.Repeat(h, innerW) + tr
	if title != "" && innerW > 2 {
		t := []rune(" " + title + " ")
		runes := []rune(top)
		for i, ch := range t {
			pos := 1 + i
			if pos >= len(runes)-1 {
				break
			}
			runes[pos] = ch
		}
		top = string(runes)
	}

	out := make([]string, 0, height)
	out = append(out, r.theme.PanelBorder.Render(top))
	for row := 0; row < innerH; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		out = append(out, r.theme.PanelBorder.Render(v)+r.theme.PanelBody.Render(padCells(line, innerW))+r.theme.PanelBorder.Render(v))
	}
	out = append(out, r.theme.PanelBorder.Render(bl+strings.Repeat(h, innerW)+br))
	return strings.Join(out, "\n")
}

func (r *Root) animateIfNeeded() tea.Cmd {
	if r.shouldAnimate() {
		return animateTickCmd()
	}
	return nil
}

func (r *Root) shouldAnimate() bool {
	if r.motionLevel == "off" || r.state.Score == nil {
		return false
	}
	return r.dialogPos < 0.999 || math.Abs(r.dialogVel) > 0.001
}

func animateTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return animateMsg(t) })
}

func formatMass(m float64) string {
	if m <= 0 {
		return ""
	}
	return fmt.Sprintf("%g", m)
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// padCells pads or cuts s to exactly width terminal cells. Styled input is
// measured without its escape sequences.
func padCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\t", "    ")
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "")
		w = ansi.StringWidth(s)
	}
	return s + strings.Repeat(" ", width-w)
}

func centerCells(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= w {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + padCells(s, width-left)
}

// composeOverlayAt paints overlay over base starting at startRow/startCol.
// Rows above the screen are skipped so an overlay can slide in from the
// top edge.
func composeOverlayAt(base, overlay string, cols, rows, startRow, startCol int) string {
	if cols <= 0 || rows <= 0 {
		return base
	}
	base = ansi.Strip(base)
	overlay = ansi.Strip(overlay)
	baseLines := strings.Split(base, "\n")
	if len(baseLines) < rows {
		baseLines = append(baseLines, make([]string, rows-len(baseLines))...)
	}
	for i := 0; i < rows; i++ {
		baseLines[i] = padCells(baseLines[i], cols)
	}

	overlayLines := strings.Split(strings.TrimRight(overlay, "\n"), "\n")
	if startCol < 0 {
		startCol = 0
	}
	for i, line := range overlayLines {
		row := startRow + i
		if row < 0 || row >= rows {
			continue
		}
		dst := []rune(baseLines[row])
		src := []rune(line)
		for j := 0; j < len(src) && startCol+j < len(dst); j++ {
			dst[startCol+j] = src[j]
		}
		baseLines[row] = string(dst)
	}
	return strings.Join(baseLines[:rows], "\n")
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(strings.ReplaceAll(ansi.Strip(s), "\n", " "), width, "…")
}

func normalizeStyleVariant(v string) string {
	switch strings.TrimSpace(v) {
	case "cozy_clean", "retro_terminal", "modern_arcade":
		return strings.TrimSpace(v)
	default:
		return "modern_arcade"
	}
}

func normalizeMotionLevel(v string) string {
	switch strings.TrimSpace(v) {
	case "off", "reduced", "full":
		return strings.TrimSpace(v)
	default:
		return "full"
	}
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = trimForWidth(strings.TrimSpace(event), 160)
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	if r.statusFlash == "" {
		r.statusFlash = "Recovered UI panic"
	}
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic_recovered",
		"where", where,
		"panic", fmt.Sprintf("%v", recovered),
		"message_type", msgType,
		"layout", r.layout,
		"cols", r.cols,
		"rows", r.rows,
		"last_input", r.lastInputEvent,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = (*Root)(nil)
var _ View = (*Root)(nil)
