package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/cmd/cli/commands"
	"github.com/bytesyntax/schedule-helper/internal/config"
	"github.com/bytesyntax/schedule-helper/pkg/clients/sheetsclient"
	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/core/services"
	"github.com/bytesyntax/schedule-helper/pkg/postgres"
	"github.com/bytesyntax/schedule-helper/pkg/utils/logging"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
	pgDB    *postgres.DB
	stop    context.CancelFunc
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedule-helper",
		Short: "Schedule helper - turn shift lists into weekly staff schedules",
		Long:  `A CLI tool that reads shift lists and writes one workbook per week with an hourly grid per day.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeApp()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects schedule_helper_config.<env>.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")

	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.PreviewCmd(app))
	rootCmd.AddCommand(commands.ImportShiftsCmd(app))
	rootCmd.AddCommand(commands.ListImportsCmd(app))
	rootCmd.AddCommand(commands.ImportEmployeesCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		closeApp()
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, employee directory and footers
func initApp() error {
	var err error
	app.Env = env
	app.Ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app.Logger, err = logging.InitLogger(env, logging.Options{Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	var store services.EmployeeLister
	if app.Cfg.Database.URL != "" {
		app.Logger.Info("Connecting to database")
		pgDB, err = postgres.NewDB(app.Ctx, app.Cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pgDB.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = pgDB
		store = pgDB
		app.Logger.Debug("Database initialized successfully")
	}

	employees, err := app.Cfg.LoadEmployeeDirectory()
	if err != nil {
		return err
	}
	settings, err := app.Cfg.LoadSettingsDirectory()
	if err != nil {
		return err
	}
	sheet, err := loadSheetDirectory()
	if err != nil {
		return err
	}
	app.Directory, err = services.BuildDirectory(app.Ctx, store, app.Logger, employees, settings, sheet)
	if err != nil {
		return err
	}

	app.Footer, err = workbook.LoadFooters(app.Cfg.FooterDir())
	if err != nil {
		return fmt.Errorf("failed to load footers: %w", err)
	}
	app.Logger.Debug("Footers loaded", zap.Int("rows", app.Footer.Rows))

	return nil
}

// loadSheetDirectory reads sheets.employeeRange when it is configured
func loadSheetDirectory() (schedule.StaticDirectory, error) {
	if app.Cfg.Sheets.SpreadsheetID == "" || app.Cfg.Sheets.EmployeeRange == "" {
		return nil, nil
	}

	client, err := app.SheetsClient()
	if err != nil {
		return nil, err
	}
	return sheetsclient.EmployeeDirectory(app.Ctx, client, app.Cfg.Sheets.SpreadsheetID, app.Cfg.Sheets.EmployeeRange)
}

func closeApp() {
	if pgDB != nil {
		pgDB.Close()
		pgDB = nil
	}
	if stop != nil {
		stop()
	}
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
}
