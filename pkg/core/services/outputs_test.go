package services

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOutputs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "schedules")
	files := []OutputFile{{Name: "Vecka 10.xlsx", Content: []byte("a")}, {Name: "Vecka 11.xlsx", Content: []byte("b")}}

	paths, err := SaveOutputs(dir, files)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	data, err := os.ReadFile(filepath.Join(dir, "Vecka 11.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestZipOutputs(t *testing.T) {
	files := []OutputFile{{Name: "Vecka 10.xlsx", Content: []byte("first")}, {Name: "Vecka 11.xlsx", Content: []byte("second")}}

	data, err := ZipOutputs(files)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "Vecka 10.xlsx", zr.File[0].Name)

	rc, err := zr.File[1].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestZipOutputs_Empty(t *testing.T) {
	data, err := ZipOutputs(nil)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
