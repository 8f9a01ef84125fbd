package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/lessonplan/internal/cli"
	"github.com/alexanderramin/lessonplan/internal/config"
	"github.com/alexanderramin/lessonplan/internal/db"
	"github.com/alexanderramin/lessonplan/internal/logging"
	"github.com/alexanderramin/lessonplan/internal/persist"
	"github.com/alexanderramin/lessonplan/internal/planner"
	"github.com/alexanderramin/lessonplan/internal/remote"
	"github.com/alexanderramin/lessonplan/internal/repository"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resources tracks what Open acquired so run can release it.
type resources struct {
	cfg      config.Config
	database *sql.DB
	logger   *zap.Logger
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{}

	// Detect interactive terminal for the agenda entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	var res resources
	app.Open = func(configPath, dbPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		res.cfg = cfg

		logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}
		res.logger = logger

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		res.database = database

		// Wire persistence and the remote endpoint client
		records := persist.New(
			repository.NewSQLiteRecordRepo(database),
			db.NewSQLiteUnitOfWork(database),
			logger,
		)
		client := remote.NewClient(cfg.HTTPTimeout, logger)

		store, err := planner.New(ctx, planner.Options{
			Persist: records,
			Remote:  client,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("loading plan: %w", err)
		}
		app.Store = store
		app.WeekStart = cfg.WeekStart
		logger.Debug("opened", zap.String("db", cfg.DBPath))
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	runErr := rootCmd.ExecuteContext(ctx)

	shutdown(app, res)
	return runErr
}

// shutdown waits for in-flight pushes, then releases the database and
// flushes the logger. Background failures are reported, not fatal: the
// local change they belong to has already been saved.
func shutdown(app *cli.App, res resources) {
	if app.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), res.cfg.ShutdownTimeout)
		defer cancel()
		if err := app.Store.Close(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	if res.database != nil {
		if err := res.database.Close(); err != nil && res.logger != nil {
			res.logger.Warn("closing database", zap.Error(err))
		}
	}
	if res.logger != nil {
		_ = res.logger.Sync()
	}
}
