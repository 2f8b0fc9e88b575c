package db

import "context"

// ShiftStore defines the shift import operations
type ShiftStore interface {
	InsertShiftImport(ctx context.Context, imp *ShiftImport, rows []ShiftRow) error
	GetShiftImports(ctx context.Context) ([]ShiftImport, error)
	GetShiftRows(ctx context.Context, importID string) ([]ShiftRow, error)
}

// EmployeeStore defines the employee directory operations
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	UpsertEmployees(ctx context.Context, employees []Employee) error
}

// Database defines all database operations. postgres.DB implements it.
type Database interface {
	ShiftStore
	EmployeeStore
}
