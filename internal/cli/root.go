package cli

import (
	"io"

	"github.com/alexanderramin/fittrack/internal/config"
	"github.com/alexanderramin/fittrack/internal/export"
	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App holds the services and session state shared by every command.
type App struct {
	Tracker  service.TrackerService
	Estimate service.EstimateService
	Session  *registry.Session
	Config   *config.Config
	Log      logrus.FieldLogger

	// IsInteractive reports whether stdout is a terminal. Nil means never.
	IsInteractive func() bool

	// HistoryPath is the shell history file; empty disables persistence.
	HistoryPath string
}

func (a *App) logger() logrus.FieldLogger {
	if a.Log != nil {
		return a.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (a *App) exportPath() string {
	if a.Config != nil && a.Config.Export.Path != "" {
		return a.Config.Export.Path
	}
	return export.DefaultFileName
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fittrack" command. Without a
// subcommand it starts the shell on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fittrack",
		Short: "Workout log, calorie estimates and weekly goals",
		Long: `fittrack records workouts for one or more people, estimates calories
burned from MET factors and checks progress against weekly goals.

All data lives in memory for the duration of a session. Start the
interactive shell, or replay a script of session commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newShellCmd(app),
		newReplayCmd(app),
		newEstimateCmd(app),
		newMETCmd(app),
	)

	return root
}
