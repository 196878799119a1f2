// Package logging sends slog output to ~/.trench/logs/trench.log so the
// terminal stays free for the shells
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/thenoetrevino/trench/internal/user"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultDir returns ~/.trench/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".trench", "logs"), nil
}

// Init opens dir/trench.log in append mode and makes it the destination of
// both slog and the standard log package. Every record carries this run's
// id and the operator. The returned file must be closed on exit.
func Init(dir string) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(dir, "trench.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	Logger = New(file)
	slog.SetDefault(Logger)

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// New builds a debug-level text logger on w, tagged with a fresh run id
func New(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler).With(
		"run_id", uuid.NewString(),
		"user", user.Operator(),
	)
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
