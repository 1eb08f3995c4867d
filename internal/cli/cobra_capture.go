package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/export"
	"github.com/alexanderramin/fittrack/internal/registry"
	"go.uber.org/multierr"
)

// execSessionCapture runs one session command line through a fresh command
// tree and returns everything it printed. A failing command has its error
// rendered into the output as a user message and is also returned, so
// callers that stop on errors (replay) can.
func execSessionCapture(app *App, args []string) (string, error) {
	var buf strings.Builder
	root := newSessionCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		app.logger().WithError(err).WithField("command", strings.Join(args, " ")).Debug("session command failed")
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		if strings.HasPrefix(err.Error(), "unknown command") && len(args) > 0 {
			buf.WriteString(unknownCommandMessage(args[0], root.SuggestionsFor(args[0])))
		} else {
			buf.WriteString(formatError(err))
		}
	}
	return strings.TrimRight(buf.String(), "\n"), err
}

func unknownCommandMessage(name string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(formatter.Failure(fmt.Sprintf("Unknown command %q.", name)))
	b.WriteString(" " + formatter.Dim("Type 'help' for the command list."))
	if len(suggestions) > 0 {
		b.WriteString("\n" + formatter.Dim("Did you mean:"))
		for _, s := range suggestions {
			b.WriteString("\n  " + formatter.StyleGreen.Render(s))
		}
	}
	return b.String()
}

// formatError styles userMessage: input problems as warnings, anything
// else as a failure.
func formatError(err error) string {
	msg := userMessage(err)
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		return formatter.Warn(msg)
	}
	return formatter.Failure(msg)
}

// userMessage maps an error to the text shown to the person at the
// keyboard. Combined validation failures yield one line per distinct
// message.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, registry.ErrNoCurrentUser):
		return "Please select a user first."
	case errors.Is(err, export.ErrWriteFailed):
		return "Error encountered. Please try again."
	}

	var lines []string
	seen := make(map[string]bool)
	for _, e := range multierr.Errors(err) {
		line := errorSentence(e)
		if !seen[line] {
			seen[line] = true
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func errorSentence(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return sentence(verr.Msg)
	case errors.Is(err, domain.ErrNotFound):
		return sentence(err.Error())
	default:
		return "Error: " + err.Error()
	}
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
