package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytesyntax/schedule-helper/internal/config"
	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/core/services"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

// ImportShiftsCmd creates the importShifts command
func ImportShiftsCmd(app *AppContext) *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "importShifts [files...]",
		Short: "Store shift rows in the database as new imports",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}
			if flags.fromDB {
				return fmt.Errorf("--from-db cannot be used with importShifts")
			}

			sources, err := app.shiftSources(flags, args)
			if err != nil {
				return err
			}

			imports, err := services.ImportShifts(app.Ctx, database, sources, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Stored %d imports\n\n", len(imports))
			for _, imp := range imports {
				fmt.Printf("  %s  %-30s %d rows\n", imp.ID, imp.Source, imp.RowCount)
			}
			fmt.Println()

			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// ListImportsCmd creates the listImports command
func ListImportsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listImports",
		Short: "List stored shift imports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			imports, err := database.GetShiftImports(app.Ctx)
			if err != nil {
				return err
			}

			if len(imports) == 0 {
				fmt.Println("No imports stored.")
				return nil
			}

			fmt.Printf("\nFound %d imports:\n\n", len(imports))
			for _, imp := range imports {
				fmt.Printf("  %s  %s  %-30s %d rows\n", imp.ID, imp.ImportedAt.Local().Format("2006-01-02 15:04"), imp.Source, imp.RowCount)
			}
			fmt.Println()

			return nil
		},
	}
}

// ImportEmployeesCmd creates the importEmployees command
func ImportEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importEmployees [file]",
		Short: "Store employee phone numbers and roles in the database",
		Long: `Store an employee.csv (id,phone,role) or a settings workbook (employeeId, phone, role) in the
database. Without a file the directory loaded from the configured files is stored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			directory := app.Directory
			if len(args) == 1 {
				directory, err = readDirectoryFile(args[0])
				if err != nil {
					return err
				}
			}

			count, err := services.ImportEmployees(app.Ctx, database, directory, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Stored %d employees\n\n", count)
			return nil
		},
	}
}

func readDirectoryFile(path string) (schedule.StaticDirectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open employee file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return config.ReadEmployeeDirectory(f)
	}
	return workbook.LoadSettingsDirectory(f, path)
}
