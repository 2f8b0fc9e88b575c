package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger_WritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := InitLogger("test", Options{Dir: dir, Console: &console})
	require.NoError(t, err)

	logger.Info("Processed shift data", zap.Int("lines", 12))
	logger.Debug("Slot grid built", zap.String("date", "2024-03-04"))
	_ = logger.Sync()

	assert.Contains(t, console.String(), "Processed shift data")
	assert.NotContains(t, console.String(), "Slot grid built")

	files, err := filepath.Glob(filepath.Join(dir, "test_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Processed shift data", entry["msg"])
	assert.Equal(t, float64(12), entry["lines"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitLogger_Verbose(t *testing.T) {
	var console bytes.Buffer

	logger, err := InitLogger("", Options{Dir: t.TempDir(), Console: &console, Verbose: true})
	require.NoError(t, err)

	logger.Debug("Slot grid built")
	_ = logger.Sync()

	assert.Contains(t, console.String(), "Slot grid built")
}
