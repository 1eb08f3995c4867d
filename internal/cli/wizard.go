package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fittrackHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func fittrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorYellow)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newWizardForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(fittrackHuhTheme()).
		WithShowHelp(false)
}

// wizardLogWorkout asks for an exercise from the active MET table and a
// duration. The first exercise is preselected.
func wizardLogWorkout(table calorie.Table, exercise, minutes *string) *huh.Form {
	names := table.Exercises()
	if len(names) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(names))
	for _, k := range names {
		label := string(k) + "  " + formatter.Dim("MET "+formatter.FormatFactor(table.Factor(k)))
		options = append(options, huh.NewOption(label, string(k)))
	}
	*exercise = string(names[0])

	return newWizardForm(
		huh.NewSelect[string]().
			Title("Exercise").
			Options(options...).
			Value(exercise),
		huh.NewInput().
			Title("Duration (minutes)").
			Placeholder("30").
			Value(minutes).
			Validate(validateMinutes),
	)
}

// wizardAddUser asks for the name of a new user.
func wizardAddUser(name *string) *huh.Form {
	return newWizardForm(
		huh.NewInput().
			Title("Name").
			Value(name).
			Validate(validateName),
	)
}

// wizardGoals asks for weekly duration and calorie targets.
func wizardGoals(duration, calories *string) *huh.Form {
	return newWizardForm(
		huh.NewInput().
			Title("Weekly duration goal (minutes)").
			Placeholder("150").
			Value(duration).
			Validate(validateTarget),
		huh.NewInput().
			Title("Weekly calorie goal").
			Placeholder("1000").
			Value(calories).
			Validate(validateTarget),
	)
}

// validateMinutes accepts a workout duration the tracker will record.
func validateMinutes(s string) error {
	return validateWhole(s, calorie.MaxMinutes)
}

func validateTarget(s string) error {
	return validateWhole(s, service.MaxGoalTarget)
}

func validateWhole(s string, limit int) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > limit {
		return fmt.Errorf("enter a whole number from 0 to %d", limit)
	}
	return nil
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}
