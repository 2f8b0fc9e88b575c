package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytesyntax/schedule-helper/internal/config"
	"github.com/bytesyntax/schedule-helper/pkg/clients/sheetsclient"
	"github.com/bytesyntax/schedule-helper/pkg/core/services"
	"github.com/bytesyntax/schedule-helper/pkg/postgres"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

// sourceFlags selects where shift rows are read from
type sourceFlags struct {
	fromDB    bool
	importID  string
	fromSheet bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.fromDB, "from-db", false, "Read shifts from a stored import")
	cmd.Flags().StringVar(&f.importID, "import-id", "", "Import to read with --from-db (defaults to latest)")
	cmd.Flags().BoolVar(&f.fromSheet, "from-sheet", false, "Read shifts from the configured Google sheet")
}

// shiftSources builds the row sources for a command. Files named in args are read first;
// with no args and no flags every spreadsheet in paths.default is read.
func (a *AppContext) shiftSources(flags sourceFlags, args []string) ([]services.RowSource, error) {
	layout := a.Cfg.InputFormat.Layout()
	files := args

	if len(files) == 0 && !flags.fromDB && !flags.fromSheet {
		dir := config.ParsePath(a.Cfg.Paths.Default)
		found, err := workbook.FindInputs(dir)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no input files found in %s", dir)
		}
		files = found
	}

	sources := make([]services.RowSource, 0, len(files)+2)
	for _, path := range files {
		sources = append(sources, workbook.FileSource{Path: path, Layout: layout})
	}

	if flags.fromDB {
		database, err := a.RequireDatabase()
		if err != nil {
			return nil, err
		}
		sources = append(sources, postgres.ShiftSource{Store: database, ImportID: flags.importID})
	}

	if flags.fromSheet {
		if a.Cfg.Sheets.SpreadsheetID == "" {
			return nil, fmt.Errorf("sheets.spreadsheetID is not configured")
		}
		client, err := a.SheetsClient()
		if err != nil {
			return nil, err
		}
		sources = append(sources, sheetsclient.ShiftSource{
			Reader:        client,
			SpreadsheetID: a.Cfg.Sheets.SpreadsheetID,
			Range:         a.Cfg.Sheets.Range,
			Layout:        layout,
		})
	}

	return sources, nil
}
