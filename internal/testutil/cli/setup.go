// Package cli provides helpers for command tests. It is separate from
// testutil so service tests can import testutil without pulling in app.
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/app"
	trenchcli "github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/logging"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App owns the DB and is closed on test cleanup.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath, database.Options{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	appInstance := app.New(db, app.WithLogger(logging.Discard()))
	t.Cleanup(func() { _ = appInstance.Close() })

	return db, appInstance
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app travels in the context, the way the root command passes it.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandFull(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandFull is ExecuteCLICommand that also returns stderr
func ExecuteCLICommandFull(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := trenchcli.WithCLI(context.Background(), trenchcli.New(testApp))
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}
