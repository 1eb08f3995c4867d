package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal command input.
	modeWizard                   // huh form is active.
	modeConfirm                  // Awaiting y/n for a destructive command.
)

// pendingConfirmation is a destructive command waiting for y/n.
type pendingConfirmation struct {
	description string
	args        []string
}

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	// bubbletea components
	input textinput.Model
	form  *huh.Form // active wizard form (nil when not in wizard mode)
	width int

	app         *App
	currentName string

	// mode management
	mode       shellMode
	wizardDone func(m *shellModel) tea.Cmd // called when wizard form completes

	pendingConfirm *pendingConfirmation

	// history
	history    []string
	historyIdx int

	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Use Tab for suggestion acceptance, reserve Up/Down for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadHistoryFromPath(app.HistoryPath)

	return shellModel{
		input:       ti,
		app:         app,
		currentName: currentUserName(app),
		history:     hist,
		historyIdx:  len(hist),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	table := "standard"
	if m.app.Estimate != nil {
		table = m.app.Estimate.Table().Name
	}
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome(table)),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updatePrompt(msg)
		}
	}

	// huh needs its own init and focus messages while a form is open.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}
	return m.promptPrefix() + m.input.View()
}

// ── prompt prefix ────────────────────────────────────────────────────────────

func (m *shellModel) promptPrefix() string {
	switch m.mode {
	case modeConfirm:
		return formatter.StyleYellow.Render("confirm (y/n)") + " " + formatter.Dim("❯") + " "
	default:
		if m.currentName == "" {
			return formatter.StylePurple.Render("fittrack") + " " + formatter.Dim("❯") + " "
		}
		return formatter.StylePurple.Render("fittrack") + " " +
			formatter.Dim("(") + formatter.StyleGreen.Render(m.currentName) + formatter.Dim(")") +
			" " + formatter.Dim("❯") + " "
	}
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		return m, printThen(output, cmd)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

func printThen(output string, cmd tea.Cmd) tea.Cmd {
	var cmds []tea.Cmd
	if output != "" {
		cmds = append(cmds, tea.Println(output))
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	if form == nil {
		if done != nil {
			return done(m)
		}
		return nil
	}
	if m.width > 0 {
		form = form.WithWidth(m.width)
	}
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			doneCmd := done(&m)
			return m, tea.Batch(cmd, doneCmd)
		}
		return m, cmd
	case huh.StateAborted:
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	return m, cmd
}

// runCaptured executes a session command and prints its output.
func (m *shellModel) runCaptured(args []string) tea.Cmd {
	output, _ := execSessionCapture(m.app, args)
	m.currentName = currentUserName(m.app)
	if output == "" {
		return nil
	}
	return tea.Println(output)
}

func (m *shellModel) startLogWizard() tea.Cmd {
	if m.app.Estimate == nil {
		return tea.Println(formatter.Warn("Usage: log EXERCISE MINUTES"))
	}
	var exercise, minutes string
	form := wizardLogWorkout(m.app.Estimate.Table(), &exercise, &minutes)
	return m.startWizard(form, func(m *shellModel) tea.Cmd {
		return m.runCaptured([]string{"log", exercise, minutes})
	})
}

func (m *shellModel) startUserAddWizard() tea.Cmd {
	var name string
	return m.startWizard(wizardAddUser(&name), func(m *shellModel) tea.Cmd {
		return m.runCaptured([]string{"user", "add", name})
	})
}

func (m *shellModel) startGoalsWizard() tea.Cmd {
	var duration, calories string
	return m.startWizard(wizardGoals(&duration, &calories), func(m *shellModel) tea.Cmd {
		return m.runCaptured([]string{"goals", duration, calories})
	})
}

// ── confirm mode ─────────────────────────────────────────────────────────────

func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		pending := m.pendingConfirm
		m.pendingConfirm = nil
		m.mode = modePrompt

		switch strings.ToLower(input) {
		case "y", "yes":
			cmd := m.runCaptured(pending.args)
			return m, cmd
		default:
			return m, tea.Println(formatter.Dim("Cancelled."))
		}
	case tea.KeyEsc:
		m.input.Reset()
		m.pendingConfirm = nil
		m.mode = modePrompt
		return m, tea.Println(formatter.Dim("Cancelled."))
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// confirmClear asks before wiping the current user's log unless the
// command already carries --yes.
func (m *shellModel) confirmClear(parts []string) string {
	if hasAnyArg(parts[1:], "--yes", "-y") {
		output, _ := execSessionCapture(m.app, parts)
		return output
	}
	if m.currentName == "" {
		// Nothing selected: the command itself reports it.
		output, _ := execSessionCapture(m.app, parts)
		m.currentName = currentUserName(m.app)
		return output
	}

	desc := fmt.Sprintf("delete every workout of %s", m.currentName)
	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{description: desc, args: parts}

	return fmt.Sprintf("%s %s\n%s",
		formatter.StyleYellow.Render("Confirm:"),
		desc+"?",
		formatter.Dim("Enter y to confirm, anything else to cancel."))
}

func hasAnyArg(args []string, wanted ...string) bool {
	for _, arg := range args {
		for _, w := range wanted {
			if arg == w {
				return true
			}
		}
	}
	return false
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistoryToPath(m.app.HistoryPath, line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}
	m.input.SetSuggestions(m.suggestionsFor(text))
}

// suggestionsFor returns full-line completions for the text typed so far.
func (m *shellModel) suggestionsFor(text string) []string {
	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")
	if len(parts) == 0 {
		return nil
	}

	// First word: commands.
	if len(parts) == 1 && !trailingSpace {
		return filterSuggestions(allCommandNames(), parts[0])
	}

	done := parts
	prefix := ""
	if !trailingSpace {
		done = parts[:len(parts)-1]
		prefix = parts[len(parts)-1]
	}
	lead := strings.Join(done, " ") + " "

	var pool []string
	switch cmd := strings.ToLower(done[0]); {
	case len(done) == 1 && cmd == "user":
		pool = []string{"add", "use", "list"}
	case len(done) == 2 && cmd == "user" && strings.ToLower(done[1]) == "use":
		pool = m.userNames()
	case len(done) == 1 && (cmd == "log" || cmd == "estimate"):
		pool = m.exerciseNames()
	}

	var out []string
	for _, s := range filterSuggestions(pool, prefix) {
		out = append(out, lead+s)
	}
	return out
}

func (m *shellModel) userNames() []string {
	if m.app.Session == nil {
		return nil
	}
	users, err := m.app.Session.Registry().List(context.Background())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		if !strings.ContainsAny(u.Name, " \t\"'\\") {
			names = append(names, u.Name)
		}
	}
	return names
}

func (m *shellModel) exerciseNames() []string {
	if m.app.Estimate == nil {
		return nil
	}
	var names []string
	for _, k := range m.app.Estimate.Table().Exercises() {
		if !strings.ContainsAny(string(k), " \t\"'\\") {
			names = append(names, string(k))
		}
	}
	return names
}

// allCommandNames returns all top-level shell command names.
func allCommandNames() []string {
	return []string{
		"user", "log", "progress", "history", "chart",
		"goals", "clear", "export", "import",
		"estimate", "met", "help", "quit", "exit",
	}
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return formatError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		return shellHelp(m.app), nil
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "shell":
		return formatter.Warn("Already in shell mode."), nil
	case "log":
		if len(args) == 0 {
			return "", m.startLogWizard()
		}
	case "goals":
		if len(args) == 0 {
			return "", m.startGoalsWizard()
		}
	case "user":
		if len(args) == 1 && strings.EqualFold(args[0], "add") {
			return "", m.startUserAddWizard()
		}
	case "clear":
		return m.confirmClear(parts), nil
	}

	output, _ := execSessionCapture(m.app, parts)
	m.currentName = currentUserName(m.app)
	return output, nil
}
