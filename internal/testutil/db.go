package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema.
// Foreign keys are off, as they are by default in production.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath, database.Options{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestClient inserts a client directly and returns its ID
func CreateTestClient(t *testing.T, db *sql.DB, name string) types.ClientID {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO clients (name, contact_number, email) VALUES (?, ?, ?)`,
		name, "555-0100", "office@example.com")
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return types.ClientIDFromInt(lastID(t, result))
}

// CreateTestJob inserts a Scheduled job for clientID and returns its ID
func CreateTestJob(t *testing.T, db *sql.DB, clientID types.ClientID, jobType string) types.JobID {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO jobs (client_id, job_type, start_date, end_date, status) VALUES (?, ?, ?, ?, 'Scheduled')`,
		clientID, jobType, "2025-05-01", "2025-05-09")
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return types.JobIDFromInt(lastID(t, result))
}

// CreateTestInvoice inserts an unpaid invoice for jobID and returns its ID
func CreateTestInvoice(t *testing.T, db *sql.DB, jobID types.JobID, amount float64) types.InvoiceID {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO invoices (job_id, amount, due_date, description, paid) VALUES (?, ?, ?, ?, 0)`,
		jobID, amount, "2025-06-01", "Progress billing")
	if err != nil {
		t.Fatalf("Failed to create test invoice: %v", err)
	}
	return types.InvoiceIDFromInt(lastID(t, result))
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	// table names come from test code only
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func lastID(t *testing.T, result sql.Result) int {
	t.Helper()
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get inserted id: %v", err)
	}
	return int(id)
}
