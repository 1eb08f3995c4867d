package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell with history, autocomplete and forms",
		Long: `Start an interactive session. Users and workouts live in memory until
the shell exits; use 'export' to keep a copy of a history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	app.logger().Info("shell started")
	defer app.logger().Info("shell stopped")

	p := tea.NewProgram(newShellModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shell: %w", err)
	}
	return nil
}

func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder

	inSingle := false
	inDouble := false
	escaped := false
	tokenStarted := false

	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
		tokenStarted = false
	}

	for _, r := range input {
		if escaped {
			cur.WriteRune(r)
			tokenStarted = true
			escaped = false
			continue
		}

		if inSingle {
			if r == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(r)
			}
			tokenStarted = true
			continue
		}

		if inDouble {
			switch r {
			case '"':
				inDouble = false
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
			tokenStarted = true
			continue
		}

		switch r {
		case '\\':
			escaped = true
			tokenStarted = true
		case '\'':
			inSingle = true
			tokenStarted = true
		case '"':
			inDouble = true
			tokenStarted = true
		case ' ', '\t', '\n', '\r':
			if tokenStarted {
				flush()
			}
		default:
			cur.WriteRune(r)
			tokenStarted = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if tokenStarted {
		flush()
	}

	return parts, nil
}

// helpGroups orders the session commands for the help screen.
var helpGroups = []struct {
	title    string
	commands []string
}{
	{"Users", []string{"user"}},
	{"Workouts", []string{"log", "progress", "history", "chart", "goals", "clear"}},
	{"Files", []string{"export", "import"}},
	{"Calories", []string{"estimate", "met"}},
}

// helpCategories describes the session command tree, flags included.
func helpCategories(app *App) []formatter.HelpCategory {
	root := newSessionCmd(app)
	byName := make(map[string]*cobra.Command)
	for _, c := range root.Commands() {
		byName[c.Name()] = c
	}

	var cats []formatter.HelpCategory
	for _, g := range helpGroups {
		cat := formatter.HelpCategory{Title: g.title}
		for _, name := range g.commands {
			c, ok := byName[name]
			if !ok {
				continue
			}
			if c.HasSubCommands() {
				for _, sub := range c.Commands() {
					cat.Entries = append(cat.Entries, helpEntry(c.Name()+" ", sub))
				}
				continue
			}
			cat.Entries = append(cat.Entries, helpEntry("", c))
		}
		cats = append(cats, cat)
	}
	cats = append(cats, formatter.HelpCategory{
		Title: "Shell",
		Entries: []formatter.HelpEntry{
			{Usage: "help", Short: "Show this help"},
			{Usage: "quit", Short: "Leave the shell (also: exit)"},
		},
	})
	return cats
}

func helpEntry(prefix string, c *cobra.Command) formatter.HelpEntry {
	e := formatter.HelpEntry{Usage: prefix + c.Use, Short: c.Short}
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		flag := "--" + f.Name
		if f.Shorthand != "" {
			flag = "-" + f.Shorthand + ", " + flag
		}
		e.Flags = append(e.Flags, fmt.Sprintf("%s  %s", flag, f.Usage))
	})
	return e
}

func shellHelp(app *App) string {
	return strings.TrimRight(formatter.FormatShellHelp(helpCategories(app)), "\n")
}
