package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/hourlog/internal/autobackup"
	"github.com/alexanderramin/hourlog/internal/cli"
	"github.com/alexanderramin/hourlog/internal/config"
	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/alexanderramin/hourlog/internal/repository"
	"github.com/alexanderramin/hourlog/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HOURLOG_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := config.SetupLogger(os.Stderr, cfg.Log.Level)

	database, err := db.OpenDB(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewStore(database)
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Reports:  service.NewReportService(store.Reports, uow, observer),
		Settings: service.NewSettingsService(store.Goals, store.PersonalInfo, store.WorkDays, observer),
		Progress: service.NewProgressService(store, observer),
		Backups:  service.NewBackupService(store, uow, observer),
		AutoBackup: autobackup.Options{
			Dir:      cfg.Backup.Dir,
			Interval: cfg.Backup.Interval(),
			Keep:     cfg.Backup.Keep,
			Logger:   logger,
		},
	}

	// Detect interactive terminal for the dashboard and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
