package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// GetEmployees retrieves all stored employees
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `SELECT id, phone, role FROM employee ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.Phone, &e.Role); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// UpsertEmployees inserts employees or updates phone and role of existing ids
func (d *DB) UpsertEmployees(ctx context.Context, employees []db.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range employees {
		batch.Queue(`
			INSERT INTO employee (id, phone, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET phone = EXCLUDED.phone, role = EXCLUDED.role, updated_at = NOW()
		`, e.ID, e.Phone, e.Role)
	}

	if err := d.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert employees: %w", err)
	}
	return nil
}
