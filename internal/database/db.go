// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Options tunes how InitDB prepares the connection
type Options struct {
	// ForeignKeys turns on SQLite foreign key enforcement. Off by default:
	// job and invoice references are declared in the schema but never checked.
	ForeignKeys bool
}

// InitDB opens (creating if needed) the SQLite database at path, applies
// connection pragmas and makes sure the schema exists. The caller owns the
// returned handle and must Close it.
func InitDB(ctx context.Context, path string, opts Options) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer; one connection also keeps :memory: databases
	// from splitting into one database per pooled connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(ctx, db, opts); err != nil {
		closeQuietly(db)
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Debug("database ready", "path", path, "foreign_keys", opts.ForeignKeys)
	return db, nil
}

func applyPragmas(ctx context.Context, db *sql.DB, opts Options) error {
	foreignKeys := "OFF"
	if opts.ForeignKeys {
		foreignKeys = "ON"
	}

	pragmas := []string{
		"PRAGMA foreign_keys = " + foreignKeys,
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this long when the file is locked
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func closeQuietly(db *sql.DB) {
	if closeErr := db.Close(); closeErr != nil {
		slog.Error("error closing db", "error", closeErr)
	}
}
