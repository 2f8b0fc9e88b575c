package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// SaveOutputs writes files into dir, creating it if needed, and returns the written paths
func SaveOutputs(dir string, files []OutputFile) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ZipOutputs packs files into a single zip archive in order
func ZipOutputs(files []OutputFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", f.Name, err)
		}
		if _, err := w.Write(f.Content); err != nil {
			return nil, fmt.Errorf("failed to write %s to archive: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive: %w", err)
	}
	return buf.Bytes(), nil
}
