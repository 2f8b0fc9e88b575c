package workbook

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// FileSource reads shifts from a spreadsheet on disk
type FileSource struct {
	Path   string
	Layout Layout
}

// Name returns the file name without its folder
func (s FileSource) Name() string {
	return filepath.Base(s.Path)
}

// ReadRows reads the file and extracts its shift rows
func (s FileSource) ReadRows(ctx context.Context) ([]schedule.RawShift, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f, s.Path)
	if err != nil {
		return nil, err
	}
	return s.Layout.Shifts(rows), nil
}

// UploadSource reads shifts from spreadsheet content already in memory, such as an upload
type UploadSource struct {
	Filename string
	Data     []byte
	Layout   Layout
}

// Name returns the uploaded file name
func (s UploadSource) Name() string {
	return s.Filename
}

// ReadRows extracts the shift rows from the uploaded content
func (s UploadSource) ReadRows(ctx context.Context) ([]schedule.RawShift, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := ReadRows(bytes.NewReader(s.Data), s.Filename)
	if err != nil {
		return nil, err
	}
	return s.Layout.Shifts(rows), nil
}

// FindInputs lists the .xlsx and .xls files directly inside dir in name order,
// skipping the lock files Excel leaves next to open workbooks
func FindInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".xlsx", ".xls":
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
