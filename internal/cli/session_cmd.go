package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/export"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newSessionCmd builds the command tree the shell and replay dispatch into.
// It is never attached to the process root: every command operates on the
// in-memory session of the App.
func newSessionCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fittrack",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newUserCmd(app),
		newLogCmd(app),
		newProgressCmd(app),
		newHistoryCmd(app),
		newClearCmd(app),
		newGoalsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newChartCmd(app),
		newEstimateCmd(app),
		newMETCmd(app),
	)
	return root
}

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Add, select and list users",
	}
	cmd.AddCommand(
		newUserAddCmd(app),
		newUserUseCmd(app),
		newUserListCmd(app),
	)
	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := argOrEmpty(args, 0)
			wasSelected := hasCurrentUser(cmd, app)
			u, err := app.Session.AddUser(cmd.Context(), name)
			if err != nil {
				return err
			}
			app.logger().WithField("user", u.Name).Info("user added")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Member added: "+u.Name))
			if !wasSelected {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Current user: "+u.Name))
			}
			return nil
		},
	}
}

func newUserUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "use NAME|ID",
		Aliases: []string{"switch", "select"},
		Short:   "Make a user current",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Select(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Switched to user: "+u.Name))
			return nil
		},
	}
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users with their totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, err := app.Session.Registry().List(ctx)
			if err != nil {
				return err
			}
			currentID := ""
			if cur, err := app.Session.Current(ctx); err == nil {
				currentID = cur.ID
			}
			rows := make([]formatter.UserRow, 0, len(users))
			for _, u := range users {
				summary, err := app.Tracker.Progress(ctx, u.ID)
				if err != nil {
					return err
				}
				rows = append(rows, formatter.UserRow{Name: u.Name, Current: u.ID == currentID, Summary: summary})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUserList(rows))
			return nil
		},
	}
}

func newLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log EXERCISE MINUTES",
		Short: "Record a workout for the current user",
		Long: `Record a workout for the current user. Calories are estimated from the
active MET table. Quote exercise names that contain spaces.`,
		Args: cobra.MaximumNArgs(2),

		// Negative durations must reach validation, not the flag parser.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			w, err := app.Tracker.LogWorkout(cmd.Context(), u.ID, argOrEmpty(args, 0), argOrEmpty(args, 1))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Workout Recorded: "+w.String()))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the current user's workouts and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			text, err := app.Tracker.ProgressText(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the current user's log as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			log, err := app.Tracker.History(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(u.Name, log.Records(), time.Now()))
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every workout of the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			n, err := app.Tracker.ClearHistory(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			app.logger().WithFields(logrus.Fields{"user": u.Name, "removed": n}).Info("history cleared")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Workout history cleared."))
			return nil
		},
	}

	// Only the shell asks for confirmation; the flag is accepted everywhere
	// so scripts can be pasted into it unchanged.
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newGoalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goals DURATION CALORIES",
		Short: "Compare totals against weekly duration and calorie goals",
		Args:  cobra.MaximumNArgs(2),

		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			report, err := app.Tracker.CheckGoals(cmd.Context(), u.ID, argOrEmpty(args, 0), argOrEmpty(args, 1))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalReport(report))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current user's log to a text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			lines, err := app.Tracker.ExportHistory(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = app.exportPath()
			}
			if err := export.WriteFile(path, lines); err != nil {
				return err
			}
			app.logger().WithFields(logrus.Fields{"user": u.Name, "path": path, "lines": len(lines)}).Info("history exported")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Workout history exported to "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default from config)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Re-log the workouts of an exported history file",
		Long: `Read a file written by 'export' and log every line for the current user.
Calories are estimated again with the active MET table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			entries, err := export.Read(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for i, e := range entries {
				if _, err := app.Tracker.LogWorkout(cmd.Context(), u.ID, string(e.Exercise), strconv.Itoa(e.DurationMin)); err != nil {
					return fmt.Errorf("importing entry %d: %w", i+1, err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Imported %d workouts from %s", len(entries), args[0])))
			return nil
		},
	}
}

func newChartCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Plot workout durations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Session.Ensure(cmd.Context())
			if err != nil {
				return err
			}
			log, err := app.Tracker.History(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDurationChart(log.Records(), width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", formatter.ChartWidth, fmt.Sprintf("Length of the longest bar (at most %d)", formatter.MaxChartWidth))
	return cmd
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func hasCurrentUser(cmd *cobra.Command, app *App) bool {
	_, err := app.Session.Current(cmd.Context())
	return err == nil
}

// currentUserName returns the selected user's name, or "" when none is.
func currentUserName(app *App) string {
	u, err := app.Session.Current(context.Background())
	if err != nil {
		return ""
	}
	return u.Name
}
