package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database with the current schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath, Options{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile returns a path to a fresh database file inside t.TempDir
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "excavation_crm.db")
}

// fixedClock returns a clock that always reports ts
func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

// createTestJob inserts a client and a job and returns the job id
func createTestJob(t *testing.T, repo *Repository) int {
	t.Helper()
	ctx := context.Background()
	client, err := repo.AddClient(ctx, "Acme Grading", "555-0100", "ops@acme.test")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	job, err := repo.AddJob(ctx, client.ID, "Trenching", "2025-03-01", "2025-03-05")
	if err != nil {
		t.Fatalf("Failed to create job: %v", err)
	}
	return job.ID.ToInt()
}
