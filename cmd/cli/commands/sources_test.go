package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/internal/config"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

func testApp(t *testing.T) *AppContext {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Default = t.TempDir()
	return &AppContext{Cfg: &cfg, Logger: zap.NewNop(), Ctx: context.Background()}
}

func TestShiftSources_Args(t *testing.T) {
	app := testApp(t)

	sources, err := app.shiftSources(sourceFlags{}, []string{"a.xlsx", "b.xls"})
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, workbook.FileSource{Path: "a.xlsx", Layout: workbook.DefaultLayout}, sources[0])
	assert.Equal(t, "b.xls", sources[1].Name())
}

func TestShiftSources_DefaultFolder(t *testing.T) {
	app := testApp(t)

	_, err := app.shiftSources(sourceFlags{}, nil)
	assert.ErrorContains(t, err, "no input files found")

	path := filepath.Join(app.Cfg.Paths.Default, "Vecka 10.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	sources, err := app.shiftSources(sourceFlags{}, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "Vecka 10.xlsx", sources[0].Name())
}

func TestShiftSources_FromDBNeedsDatabase(t *testing.T) {
	app := testApp(t)

	_, err := app.shiftSources(sourceFlags{fromDB: true}, nil)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestShiftSources_FromSheetNeedsSpreadsheet(t *testing.T) {
	app := testApp(t)

	_, err := app.shiftSources(sourceFlags{fromSheet: true}, nil)
	assert.ErrorContains(t, err, "sheets.spreadsheetID is not configured")
}
