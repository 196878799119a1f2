package client

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/testutil"
	cliutil "github.com/thenoetrevino/trench/internal/testutil/cli"
)

// TestAddClientCommand tests the client add command
func TestAddClientCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "add client with quiet output",
			args: []string{"--name", "Acme", "--contact", "555-0100", "--email", "ops@acme.test", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				id, err := strconv.Atoi(strings.TrimSpace(output))
				require.NoError(t, err, "expected numeric client ID, got %q", output)
				assert.Positive(t, id)
			},
		},
		{
			name: "add client with JSON output",
			args: []string{"--name", "Acme", "--contact", "555-0100", "--email", "ops@acme.test", "--json"},
			checkFunc: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				data := result["data"].(map[string]any)
				client := data["client"].(map[string]any)
				assert.Equal(t, "Acme", client["name"])
				assert.Equal(t, "555-0100", client["contact_number"])
				assert.Equal(t, "ops@acme.test", client["email"])
			},
		},
		{
			name: "add client with human-readable output",
			args: []string{"--name", "Acme", "--contact", "555-0100", "--email", "ops@acme.test"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Client added successfully")
				assert.Contains(t, output, "Acme")
			},
		},
		{
			name:     "add client missing email",
			args:     []string{"--name", "Acme", "--contact", "555-0100"},
			wantCode: cli.ExitUsage,
		},
		{
			name:     "add client with blank name",
			args:     []string{"--name", "  ", "--contact", "555-0100", "--email", "ops@acme.test"},
			wantCode: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, testApp := cliutil.SetupCLITest(t)

			output, err := cliutil.ExecuteCLICommand(t, testApp, AddCmd(), tt.args)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, cli.GetExitCode(err))
				return
			}
			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestAddClientCommand_BlankNameInsertsNothing(t *testing.T) {
	db, testApp := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testApp, AddCmd(),
		[]string{"--name", "", "--contact", "1", "--email", "a@x.com"})
	require.Error(t, err)
	assert.Equal(t, 0, testutil.CountRows(t, db, "clients"))
}

// TestListClientsCommand tests the client list command
func TestListClientsCommand(t *testing.T) {
	db, testApp := cliutil.SetupCLITest(t)
	first := testutil.CreateTestClient(t, db, "Acme")
	second := testutil.CreateTestClient(t, db, "Birch Lane HOA")

	t.Run("quiet lists ids in order", func(t *testing.T) {
		output, err := cliutil.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(first.ToInt())+"\n"+strconv.Itoa(second.ToInt())+"\n", output)
	})

	t.Run("human output is a table", func(t *testing.T) {
		output, err := cliutil.ExecuteCLICommand(t, testApp, ListCmd(), nil)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.Contains(t, lines[2], "Acme")
		assert.Contains(t, lines[3], "Birch Lane HOA")
	})

	t.Run("json", func(t *testing.T) {
		output, err := cliutil.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Len(t, data["clients"], 2)
	})
}

func TestListClientsCommand_Empty(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, ListCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, "No clients found.\n", output)
}

func TestCommandsRequireCLI(t *testing.T) {
	_, _, err := testutil.ExecuteCommand(t, ListCmd())
	assert.ErrorIs(t, err, cli.ErrNotInitialized)
}
