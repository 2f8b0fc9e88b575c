//go:build integration_pg

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/db"
)

func startPostgres(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, port.Port())

	var store *DB
	require.Eventually(t, func() bool {
		store, err = NewDB(ctx, dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)
	t.Cleanup(store.Close)

	require.NoError(t, store.RunMigrations(ctx))
	// Second run is a no-op
	require.NoError(t, store.RunMigrations(ctx))
	return store
}

func TestPostgres_ShiftImportRoundTrip(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	_, err := store.GetShiftRows(ctx, "")
	require.ErrorIs(t, err, ErrNoImports)

	older := &db.ShiftImport{ID: uuid.NewString(), Source: "week9.xlsx", ImportedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, store.InsertShiftImport(ctx, older, db.ShiftRowsFromRaw(older.ID, []schedule.RawShift{
		{EmployeeID: "101", Date: "2024-02-26", ShiftTime: "08:00 - 16:00"},
	})))

	newer := &db.ShiftImport{ID: uuid.NewString(), Source: "week10.xlsx", ImportedAt: time.Now()}
	rows := db.ShiftRowsFromRaw(newer.ID, []schedule.RawShift{
		{EmployeeID: "101", LastName: "Svensson", FirstName: "Anna", Date: "2024-03-04", ShiftTime: "08:00 - 16:00"},
		{},
		{EmployeeID: "102.0", Date: "2024-03-04", ShiftTime: "09:00 - 13:00"},
	})
	require.NoError(t, store.InsertShiftImport(ctx, newer, rows))
	assert.Equal(t, 2, newer.RowCount)

	imports, err := store.GetShiftImports(ctx)
	require.NoError(t, err)
	require.Len(t, imports, 2)
	assert.Equal(t, newer.ID, imports[0].ID)
	assert.Equal(t, "week10.xlsx", imports[0].Source)
	assert.Equal(t, 2, imports[0].RowCount)

	latest, err := store.GetShiftRows(ctx, "")
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "Anna", latest[0].FirstName)
	assert.Equal(t, "102", latest[1].EmployeeID)
	assert.Equal(t, 1, latest[1].Position)

	first, err := store.GetShiftRows(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "2024-02-26", first[0].ShiftDate)
}

func TestPostgres_UpsertEmployees(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertEmployees(ctx, nil))
	require.NoError(t, store.UpsertEmployees(ctx, []db.Employee{
		{ID: "101", Phone: "070-111", Role: "Kassa"},
		{ID: "102", Phone: "070-222", Role: "Lager"},
	}))
	require.NoError(t, store.UpsertEmployees(ctx, []db.Employee{
		{ID: "102", Phone: "070-999", Role: "Kassa"},
	}))

	employees, err := store.GetEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []db.Employee{
		{ID: "101", Phone: "070-111", Role: "Kassa"},
		{ID: "102", Phone: "070-999", Role: "Kassa"},
	}, employees)
}
