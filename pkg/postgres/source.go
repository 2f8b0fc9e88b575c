package postgres

import (
	"context"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// ShiftRowReader is the store operation a ShiftSource needs
type ShiftRowReader interface {
	GetShiftRows(ctx context.Context, importID string) ([]db.ShiftRow, error)
}

// ShiftSource reads a stored import as shift input. An empty ImportID reads the latest import.
type ShiftSource struct {
	Store    ShiftRowReader
	ImportID string
}

// Name identifies the import in logs and row errors
func (s ShiftSource) Name() string {
	if s.ImportID == "" {
		return "import:latest"
	}
	return "import:" + s.ImportID
}

// ReadRows loads the stored rows
func (s ShiftSource) ReadRows(ctx context.Context) ([]schedule.RawShift, error) {
	rows, err := s.Store.GetShiftRows(ctx, s.ImportID)
	if err != nil {
		return nil, err
	}

	raws := make([]schedule.RawShift, len(rows))
	for i, r := range rows {
		raws[i] = r.Raw()
	}
	return raws, nil
}
