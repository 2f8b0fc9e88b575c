package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// EmployeeLister defines the database operation needed to extend the directory
type EmployeeLister interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
}

// BuildDirectory merges directories in order, later entries overriding earlier ones for the
// same id, then applies the stored employees from store when one is given
func BuildDirectory(ctx context.Context, store EmployeeLister, logger *zap.Logger, dirs ...schedule.StaticDirectory) (schedule.StaticDirectory, error) {
	merged := schedule.StaticDirectory{}
	for _, d := range dirs {
		merged.Merge(d)
	}

	if store != nil {
		employees, err := store.GetEmployees(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch employees: %w", err)
		}
		merged.Merge(db.EmployeesToDirectory(employees))
		logger.Debug("Loaded stored employees", zap.Int("count", len(employees)))
	}

	logger.Debug("Employee directory ready", zap.Int("employees", len(merged)))
	return merged, nil
}
