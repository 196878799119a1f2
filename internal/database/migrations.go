package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version.
// 0 - created by the first release (invoices without description)
// 1 - invoices.description present
const schemaVersion = 1

// Column names match the excavation_crm.db files written by earlier
// versions of the tool, so existing databases open unchanged.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		client_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		contact_number TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		job_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER,
		job_type TEXT,
		start_date TEXT,
		end_date TEXT,
		status TEXT,
		FOREIGN KEY(client_id) REFERENCES clients(client_id)
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		invoice_id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id INTEGER,
		amount REAL,
		due_date TEXT,
		description TEXT,
		paid INTEGER,
		FOREIGN KEY(job_id) REFERENCES jobs(job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS time_tracking (
		time_id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id INTEGER,
		hours_worked REAL,
		date_logged TEXT,
		FOREIGN KEY(job_id) REFERENCES jobs(job_id)
	)`,
}

// Migrate ensures the schema exists and is current. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db)
}

// runMigrations creates missing tables, then upgrades older layouts
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	// The first release created invoices without a description column.
	// CREATE TABLE IF NOT EXISTS leaves such a table alone, so add it here.
	hasDescription, err := columnExists(ctx, db, "invoices", "description")
	if err != nil {
		return err
	}
	if !hasDescription {
		if _, err := db.ExecContext(ctx, `ALTER TABLE invoices ADD COLUMN description TEXT`); err != nil {
			return fmt.Errorf("failed to add invoices.description: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// columnExists reports whether table has a column with the given name
func columnExists(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("failed to scan %s column info: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
