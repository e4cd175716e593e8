package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/pathkeeper/internal/cli"
	"github.com/alexanderramin/pathkeeper/internal/config"
	"github.com/alexanderramin/pathkeeper/internal/curriculum"
	"github.com/alexanderramin/pathkeeper/internal/db"
	"github.com/alexanderramin/pathkeeper/internal/notify"
	"github.com/alexanderramin/pathkeeper/internal/repository"
	"github.com/alexanderramin/pathkeeper/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	catalog, err := curriculum.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading curriculum: %w", err)
	}

	var notifier notify.Notifier = notify.NewStatusFileNotifier(cfg.NudgeStatusPath)
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		notifier = notify.Multi{notifier, notify.NewLogNotifier(os.Stderr)}
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	engine := service.NewEngine(
		repository.NewSQLiteProgressRepo(database),
		repository.NewSQLiteJournalRepo(database),
		db.NewSQLiteUnitOfWork(database),
		catalog,
		service.WithNotifier(notifier),
		service.WithObserver(observer),
	)
	if err := engine.Load(context.Background()); err != nil {
		return err
	}

	app := &cli.App{
		Missions:        engine,
		Gate:            engine,
		Recovery:        engine,
		Journal:         engine,
		Dev:             engine,
		DBPath:          cfg.DBPath,
		NudgeStatusPath: cfg.NudgeStatusPath,
		Reminders:       cfg.Reminders,
		ReminderHour:    cfg.ReminderHour,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
