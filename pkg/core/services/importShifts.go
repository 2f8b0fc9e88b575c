package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// ImportShiftsStore defines the database operations needed to import shifts
type ImportShiftsStore interface {
	InsertShiftImport(ctx context.Context, imp *db.ShiftImport, rows []db.ShiftRow) error
}

// ImportShifts stores the raw rows of every source as a separate import. Rows are stored
// unvalidated so a later run can apply a different lunch policy.
func ImportShifts(ctx context.Context, store ImportShiftsStore, sources []RowSource, logger *zap.Logger) ([]db.ShiftImport, error) {
	imports := make([]db.ShiftImport, 0, len(sources))

	for _, src := range sources {
		raws, err := src.ReadRows(ctx)
		if err != nil {
			return imports, fmt.Errorf("failed to read shifts from %s: %w", src.Name(), err)
		}

		imp := db.ShiftImport{
			ID:         uuid.New().String(),
			Source:     src.Name(),
			ImportedAt: time.Now().UTC(),
		}
		rows := db.ShiftRowsFromRaw(imp.ID, raws)
		imp.RowCount = len(rows)

		if err := store.InsertShiftImport(ctx, &imp, rows); err != nil {
			return imports, fmt.Errorf("failed to store shifts from %s: %w", src.Name(), err)
		}

		logger.Info("Imported shift data",
			zap.String("source", imp.Source),
			zap.String("importID", imp.ID),
			zap.Int("rows", imp.RowCount))
		imports = append(imports, imp)
	}

	return imports, nil
}
