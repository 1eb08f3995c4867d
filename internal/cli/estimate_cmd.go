package cli

import (
	"fmt"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/spf13/cobra"
)

func newEstimateCmd(app *App) *cobra.Command {
	var exercise, minutes, table string

	cmd := &cobra.Command{
		Use:   "estimate [EXERCISE MINUTES]",
		Short: "Estimate calories without logging a workout",
		Example: `  estimate Running 30
  estimate --exercise Cycling --minutes 45 --table compendium`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exercise == "" {
				exercise = argOrEmpty(args, 0)
			}
			if minutes == "" {
				minutes = argOrEmpty(args, 1)
			}
			svc, err := estimateServiceFor(app, table)
			if err != nil {
				return err
			}
			e, err := svc.Estimate(cmd.Context(), exercise, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEstimate(e.Exercise, e.Minutes, e.Calories, e.Factor, e.Table, e.Known))
			return nil
		},
	}

	cmd.Flags().StringVar(&exercise, "exercise", "", "Exercise name")
	cmd.Flags().StringVar(&minutes, "minutes", "", "Duration in minutes")
	cmd.Flags().StringVar(&table, "table", "", "MET table (standard, compendium)")
	// Flags go before the positional arguments so "estimate Running -5"
	// reports the bad duration.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newMETCmd(app *App) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "met",
		Short: "Print the MET factors used for calorie estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := estimateServiceFor(app, table)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMETTable(svc.Table()))
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "MET table (standard, compendium)")
	return cmd
}

// estimateServiceFor returns the App's estimator, or one over the named
// built-in table with the configured overrides applied.
func estimateServiceFor(app *App, table string) (service.EstimateService, error) {
	if table == "" && app.Estimate != nil {
		return app.Estimate, nil
	}
	t, err := calorie.Lookup(table)
	if err != nil {
		return nil, err
	}
	if app.Config != nil && len(app.Config.MET.Overrides) > 0 {
		if t, err = t.WithOverrides(app.Config.MET.Overrides); err != nil {
			return nil, err
		}
	}
	return service.NewEstimateService(t, service.NewLogUseCaseObserver(app.logger())), nil
}
