package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/fittrack/internal/cli"
	"github.com/alexanderramin/fittrack/internal/config"
	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/logging"
	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	logger := logging.Setup(logging.Params{
		FileName: cfg.Log.File,
		Stderr:   cfg.Log.Stderr,
		Level:    cfg.Log.Level,
	})

	table, err := cfg.METTable()
	if err != nil {
		return fmt.Errorf("building MET table: %w", err)
	}

	// Session store: lives exactly as long as the process.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	reg := registry.New(userRepo)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Tracker:     service.NewTrackerService(reg, userRepo, workoutRepo, uow, table, observer),
		Estimate:    service.NewEstimateService(table, observer),
		Session:     registry.NewSession(reg, cfg.Session.AutoUser),
		Config:      cfg,
		Log:         logger,
		HistoryPath: cli.DefaultHistoryPath(),
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.WithField("met_table", table.Name).Debug("fittrack starting")

	return cli.NewRootCmd(app).Execute()
}
