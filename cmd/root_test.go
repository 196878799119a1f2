package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/config"
)

// isolate points config, logs and the database at a temp directory and
// returns the database path
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvThemeFile, "")

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	return filepath.Join(dir, "crm.db")
}

type result struct {
	code   int
	stdout string
	stderr string
}

func trench(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestRun_ClientRoundTrip(t *testing.T) {
	db := isolate(t)

	res := trench(t, "", "--db", db, "client", "add", "--name", "A", "--contact", "1", "--email", "a@x.com", "--quiet")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "1\n", res.stdout)

	res = trench(t, "", "--db", db, "client", "list")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "1   A     1        a@x.com")
}

func TestRun_EnvSelectsDatabase(t *testing.T) {
	db := isolate(t)
	t.Setenv(config.EnvDB, db)

	res := trench(t, "", "client", "add", "--name", "A", "--contact", "1", "--email", "a@x.com", "--quiet")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	other := filepath.Join(filepath.Dir(db), "other.db")
	res = trench(t, "", "--db", other, "client", "list", "--quiet")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout, "--db wins over "+config.EnvDB)

	res = trench(t, "", "client", "list", "--quiet")
	assert.Equal(t, "1\n", res.stdout)
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "validation failure",
			args:       []string{"invoice", "generate", "--job", "1", "--amount", "-5", "--due", "2025-01-01", "--description", "desc"},
			wantCode:   cli.ExitValidation,
			wantStderr: "Error: invalid input",
		},
		{
			name:       "missing flag",
			args:       []string{"time", "log", "--job", "1"},
			wantCode:   cli.ExitUsage,
			wantStderr: "Suggestion: Run 'trench time log --help' for usage.",
		},
		{
			name:       "unknown flag",
			args:       []string{"job", "list", "--bogus"},
			wantCode:   cli.ExitUsage,
			wantStderr: "unknown flag: --bogus",
		},
		{
			name:       "non numeric id",
			args:       []string{"invoice", "pay", "--id", "abc"},
			wantCode:   cli.ExitUsage,
			wantStderr: "invalid argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := isolate(t)
			res := trench(t, "", append([]string{"--db", db}, tt.args...)...)
			assert.Equal(t, tt.wantCode, res.code)
			assert.Contains(t, res.stderr, tt.wantStderr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRun_JSONErrorGoesToStdout(t *testing.T) {
	db := isolate(t)

	res := trench(t, "", "--db", db, "client", "add", "--name", "", "--contact", "1", "--email", "a@x.com", "--json")
	assert.Equal(t, cli.ExitValidation, res.code)
	assert.Contains(t, res.stdout, `"VALIDATION_ERROR"`)
	assert.Empty(t, res.stderr)
}

func TestRun_PayUnknownInvoiceSucceeds(t *testing.T) {
	db := isolate(t)

	res := trench(t, "", "--db", db, "invoice", "pay", "--id", "7")
	assert.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "No invoice with ID 7")
}

func TestRun_Menu(t *testing.T) {
	db := isolate(t)

	res := trench(t, "1\nAcme\n555-0100\nops@acme.test\nq\n0\n", "--db", db, "menu")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Client added successfully (ID 1).")
	assert.Contains(t, res.stdout, "Invalid option. Please try again.")
	assert.True(t, strings.HasSuffix(res.stdout, "Exiting CRM...\n"))

	res = trench(t, "", "--db", db, "client", "list", "--quiet")
	assert.Equal(t, "1\n", res.stdout)
}

func TestRun_Seed(t *testing.T) {
	db := isolate(t)

	res := trench(t, "", "--db", db, "seed")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	res = trench(t, "", "--db", db, "invoice", "list", "--quiet")
	assert.Equal(t, "1\n2\n3\n", res.stdout)
}

func TestRun_BadDatabasePath(t *testing.T) {
	dir := filepath.Dir(isolate(t))

	res := trench(t, "", "--db", dir, "client", "list")
	assert.Equal(t, cli.ExitError, res.code)
	assert.Contains(t, res.stderr, "Error:")
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()
	for _, name := range []string{"client", "job", "invoice", "time", "seed", "menu", "forms"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}
