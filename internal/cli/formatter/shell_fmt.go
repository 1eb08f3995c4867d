package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome(table string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  fittrack") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Add a user with 'user add <name>', then log workouts for them.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("user add") + StyleDim.Render("       Add a user") + "\n")
	b.WriteString("  " + StyleGreen.Render("log") + StyleDim.Render("            Record a workout") + "\n")
	b.WriteString("  " + StyleGreen.Render("progress") + StyleDim.Render("       Show totals") + "\n")
	b.WriteString("  " + StyleGreen.Render("goals") + StyleDim.Render("          Check weekly goals") + "\n")
	b.WriteString("  " + StyleGreen.Render("help") + StyleDim.Render("           Show all commands") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  Calories use the %s MET table. Nothing is saved after you quit;", table)) + "\n")
	b.WriteString(StyleDim.Render("  use 'export' to keep a copy of your history.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// HelpEntry is one command row of the shell help.
type HelpEntry struct {
	Usage string
	Short string
	Flags []string
}

// HelpCategory groups commands under a section header for the help display.
type HelpCategory struct {
	Title   string
	Entries []HelpEntry
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp(categories []HelpCategory) string {
	var b strings.Builder
	for _, cat := range categories {
		b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.Title)) + "\n")
		for _, e := range cat.Entries {
			usage := StyleGreen.Render(e.Usage)
			pad := 26 - len(e.Usage)
			if pad < 1 {
				pad = 1
			}
			b.WriteString("  " + usage + strings.Repeat(" ", pad) + StyleDim.Render(e.Short) + "\n")
			for _, f := range e.Flags {
				b.WriteString("  " + strings.Repeat(" ", 28) + StyleDim.Render(f) + "\n")
			}
		}
	}
	b.WriteString("\n" + StyleDim.Render("  Tab completes commands. Up/Down walk the history. Esc cancels a form.") + "\n")
	return b.String()
}
