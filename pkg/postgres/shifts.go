package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// ErrNoImports is returned when the latest import is requested from an empty store
var ErrNoImports = errors.New("no shift imports stored")

// InsertShiftImport stores an import and its rows in one transaction
func (d *DB) InsertShiftImport(ctx context.Context, imp *db.ShiftImport, rows []db.ShiftRow) error {
	id, err := parseImportID(imp.ID)
	if err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO shift_import (id, source, imported_at, row_count)
		VALUES ($1, $2, $3, $4)
	`, id, imp.Source, imp.ImportedAt.UTC(), len(rows))
	if err != nil {
		return fmt.Errorf("failed to insert shift import: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"shift_row"},
		[]string{"import_id", "position", "employee_id", "last_name", "first_name", "shift_date", "shift_time"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{id, r.Position, r.EmployeeID, r.LastName, r.FirstName, r.ShiftDate, r.ShiftTime}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert shift rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	imp.RowCount = len(rows)
	return nil
}

// GetShiftImports returns all imports, newest first
func (d *DB) GetShiftImports(ctx context.Context) ([]db.ShiftImport, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, source, imported_at, row_count
		FROM shift_import
		ORDER BY imported_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift imports: %w", err)
	}
	defer rows.Close()

	var imports []db.ShiftImport
	for rows.Next() {
		var imp db.ShiftImport
		if err := rows.Scan(&imp.ID, &imp.Source, &imp.ImportedAt, &imp.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan shift import: %w", err)
		}
		imports = append(imports, imp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift imports: %w", err)
	}

	return imports, nil
}

// GetShiftRows returns the rows of importID in their original order.
// An empty importID selects the most recent import.
func (d *DB) GetShiftRows(ctx context.Context, importID string) ([]db.ShiftRow, error) {
	if importID == "" {
		err := d.pool.QueryRow(ctx, `
			SELECT id::text FROM shift_import ORDER BY imported_at DESC, id LIMIT 1
		`).Scan(&importID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoImports
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find latest shift import: %w", err)
		}
	}

	id, err := parseImportID(importID)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT import_id::text, position, employee_id, last_name, first_name, shift_date, shift_time
		FROM shift_row
		WHERE import_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift rows: %w", err)
	}
	defer rows.Close()

	var shiftRows []db.ShiftRow
	for rows.Next() {
		var r db.ShiftRow
		if err := rows.Scan(&r.ImportID, &r.Position, &r.EmployeeID, &r.LastName, &r.FirstName, &r.ShiftDate, &r.ShiftTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shiftRows = append(shiftRows, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift rows: %w", err)
	}

	return shiftRows, nil
}

func parseImportID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid import id %q: %w", id, err)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}
