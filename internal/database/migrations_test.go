package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := setupTestDBFile(t)

	db, err := InitDB(ctx, path, Options{})
	require.NoError(t, err)
	_, err = NewRepository(db).AddClient(ctx, "Kept", "555", "k@x.com")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path, Options{})
	require.NoError(t, err)
	defer db.Close()

	clients, err := NewRepository(db).ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Kept", clients[0].Name)
}

func TestInitDB_CreatesParentDirectory(t *testing.T) {
	t.Parallel()
	path := t.TempDir() + "/nested/dir/crm.db"

	db, err := InitDB(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestInitDB_SetsUserVersion(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	var version int
	require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA user_version").Scan(&version))
	assert.Equal(t, schemaVersion, version)
}

func TestMigrate_AddsDescriptionToOldInvoices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := setupTestDBFile(t)

	old, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = old.ExecContext(ctx, `CREATE TABLE invoices (
		invoice_id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id INTEGER,
		amount REAL,
		due_date TEXT,
		paid INTEGER
	)`)
	require.NoError(t, err)
	_, err = old.ExecContext(ctx, `INSERT INTO invoices (job_id, amount, due_date, paid) VALUES (1, 250.0, '2024-12-01', 0)`)
	require.NoError(t, err)
	require.NoError(t, old.Close())

	db, err := InitDB(ctx, path, Options{})
	require.NoError(t, err)
	defer db.Close()

	hasDescription, err := columnExists(ctx, db, "invoices", "description")
	require.NoError(t, err)
	assert.True(t, hasDescription)

	invoices, err := NewRepository(db).ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "", invoices[0].Description)
	assert.InDelta(t, 250.0, invoices[0].Amount, 0.001)
	assert.False(t, invoices[0].Paid)
}

func TestColumnExists(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		table  string
		column string
		want   bool
	}{
		{"clients", "contact_number", true},
		{"jobs", "status", true},
		{"time_tracking", "date_logged", true},
		{"invoices", "notes", false},
	}

	for _, tt := range tests {
		t.Run(tt.table+"."+tt.column, func(t *testing.T) {
			got, err := columnExists(ctx, db, tt.table, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
