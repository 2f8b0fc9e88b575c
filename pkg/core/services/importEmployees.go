package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// EmployeeUpserter defines the database operation needed to store a directory
type EmployeeUpserter interface {
	UpsertEmployees(ctx context.Context, employees []db.Employee) error
}

// ImportEmployees stores every directory entry, ordered by id, and returns how many were written
func ImportEmployees(ctx context.Context, store EmployeeUpserter, directory schedule.StaticDirectory, logger *zap.Logger) (int, error) {
	ids := make([]string, 0, len(directory))
	for id := range directory {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	employees := make([]db.Employee, len(ids))
	for i, id := range ids {
		c := directory[id]
		employees[i] = db.Employee{ID: id, Phone: c.Phone, Role: c.Role}
	}

	if err := store.UpsertEmployees(ctx, employees); err != nil {
		return 0, fmt.Errorf("failed to store employees: %w", err)
	}

	logger.Info("Imported employees", zap.Int("count", len(employees)))
	return len(employees), nil
}
