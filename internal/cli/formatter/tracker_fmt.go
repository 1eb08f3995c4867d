package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/domain"
)

// FormatHistory renders the workout log as a table with a totals footer.
func FormatHistory(name string, records []domain.Workout, now time.Time) string {
	if len(records) == 0 {
		return Dim(domain.NoWorkoutsText)
	}

	rows := make([][]string, 0, len(records))
	var totalMin, totalCal int
	for _, w := range records {
		rows = append(rows, []string{
			strconv.Itoa(w.Seq),
			string(w.Exercise),
			strconv.Itoa(w.DurationMin),
			strconv.Itoa(w.Calories),
			HumanTimestampFrom(w.LoggedAt, now),
		})
		totalMin += w.DurationMin
		totalCal += w.Calories
	}

	var b strings.Builder
	b.WriteString(Header("History for "+name) + "\n")
	b.WriteString(RenderTable([]string{"#", "EXERCISE", "MINS", "CAL", "LOGGED"}, rows, 0, 2, 3))
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Total:"), Bold(FormatMinutes(totalMin)),
		Bold(strconv.Itoa(totalCal)), Dim("cal")))
	return b.String()
}

// UserRow is one line of the user list.
type UserRow struct {
	Name    string
	Current bool
	Summary domain.Summary
}

// FormatUserList renders the session's users; the current one is marked.
func FormatUserList(users []UserRow) string {
	if len(users) == 0 {
		return Dim("No users yet. Add one with 'user add NAME'.")
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		marker := ""
		if u.Current {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			marker,
			u.Name,
			strconv.Itoa(len(u.Summary.History)),
			strconv.Itoa(u.Summary.TotalDuration),
			strconv.Itoa(u.Summary.TotalCalories),
		})
	}
	return RenderTable([]string{"", "USER", "WORKOUTS", "MINS", "CAL"}, rows, 2, 3, 4)
}

// FormatGoalReport renders one progress bar per goal and a verdict line.
func FormatGoalReport(r domain.GoalReport) string {
	var b strings.Builder
	b.WriteString(Header("Weekly goals") + "\n")

	lines := [][]string{
		goalLine("Duration", r.Duration, "mins"),
		goalLine("Calories", r.Calories, "cal"),
	}
	b.WriteString(RenderTable([]string{"GOAL", "PROGRESS", "", "STATUS"}, lines))

	if r.AllMet() {
		b.WriteString(Success("All goals met. Great work!") + "\n")
		return b.String()
	}
	var todo []string
	if !r.Duration.Met() {
		todo = append(todo, fmt.Sprintf("%d mins", r.Duration.Goal-r.Duration.Achieved))
	}
	if !r.Calories.Met() {
		todo = append(todo, fmt.Sprintf("%d cal", r.Calories.Goal-r.Calories.Achieved))
	}
	b.WriteString(Warn("Keep going: "+strings.Join(todo, " and ")+" to go.") + "\n")
	return b.String()
}

func goalLine(label string, m domain.MetricProgress, unit string) []string {
	status := StyleRed.Render("not met")
	if m.Met() {
		status = StyleGreen.Render("met")
	}
	return []string{
		label,
		fmt.Sprintf("%d / %d %s", m.Achieved, m.Goal, unit),
		RenderProgress(m.Ratio(), 20),
		status,
	}
}

// FormatEstimate renders a single calorie estimate.
func FormatEstimate(exercise domain.ExerciseKind, minutes, calories int, factor float64, table string, known bool) string {
	line := domain.Workout{Exercise: exercise, DurationMin: minutes, Calories: calories}.String()
	note := fmt.Sprintf("MET %s, %s table", FormatFactor(factor), table)
	if !known {
		note += ", not calibrated"
	}
	return fmt.Sprintf("%s %s", Bold(line), Dim("("+note+")"))
}

// FormatMETTable lists a table's factors with the calories a 30 minute
// session would burn.
func FormatMETTable(t calorie.Table) string {
	const sample = 30
	var rows [][]string
	for _, e := range t.Entries() {
		rows = append(rows, []string{
			string(e.Exercise),
			FormatFactor(e.Factor),
			strconv.Itoa(calorie.Estimate(t, e.Exercise, sample)),
		})
	}
	var b strings.Builder
	b.WriteString(Header("MET table: "+t.Name) + "\n")
	b.WriteString(RenderTable([]string{"EXERCISE", "MET", "CAL/30MIN"}, rows, 1, 2))
	b.WriteString(Dim(fmt.Sprintf("Other exercises use MET %s. Body weight is fixed at %d kg.",
		FormatFactor(t.Default), calorie.BodyWeightKg)) + "\n")
	return b.String()
}
