package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/services"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	var (
		flags     sourceFlags
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Create one schedule workbook per week from shift files",
		Long: `Read shifts from the given .xlsx/.xls files (every spreadsheet in paths.default when none
are given), a stored import or the configured Google sheet, and write "Vecka N.xlsx" files with
one sheet per day into the output folder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := app.shiftSources(flags, args)
			if err != nil {
				return err
			}

			load, err := services.LoadShifts(app.Ctx, sources, app.Policy(), app.Logger)
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedules(app.Ctx, load, workbook.NewWriter(app.Footer), app.Logger)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = app.Cfg.OutputDir()
			}
			paths, err := services.SaveOutputs(outputDir, result.Files)
			if err != nil {
				return err
			}

			app.Logger.Debug("generate finished", zap.Strings("files", paths))

			fmt.Printf("\n✓ Created %d schedules covering %d days\n\n", len(paths), result.Days)
			for _, path := range paths {
				fmt.Printf("  %s\n", path)
			}
			fmt.Println()

			if len(load.Failures) > 0 {
				fmt.Printf("⚠️  %d rows could not be read:\n", len(load.Failures))
				for _, f := range load.Failures {
					fmt.Printf("  ✗ %s\n", f)
				}
				fmt.Println()
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output folder (defaults to paths.output)")

	return cmd
}
