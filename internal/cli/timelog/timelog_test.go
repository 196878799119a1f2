package timelog

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/testutil"
	cliutil "github.com/thenoetrevino/trench/internal/testutil/cli"
)

// TestLogTimeCommand tests the time log command
func TestLogTimeCommand(t *testing.T) {
	db, testApp := cliutil.SetupCLITest(t)
	clientID := testutil.CreateTestClient(t, db, "Acme")
	jobID := strconv.Itoa(testutil.CreateTestJob(t, db, clientID, "Trenching").ToInt())

	before := time.Now().Truncate(time.Second)
	output, err := cliutil.ExecuteCLICommand(t, testApp, LogCmd(), []string{"--job", jobID, "--hours", "7.5", "--json"})
	require.NoError(t, err)
	after := time.Now()

	entry := testutil.ParseJSON(t, output)["data"].(map[string]any)["time_entry"].(map[string]any)
	assert.InDelta(t, 7.5, entry["hours_worked"], 0)

	logged, err := time.ParseInLocation(models.DateLoggedLayout, entry["date_logged"].(string), time.Local)
	require.NoError(t, err)
	assert.False(t, logged.Before(before))
	assert.False(t, logged.After(after))

	output, err = cliutil.ExecuteCLICommand(t, testApp, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "7.5")
}

func TestLogTimeCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"zero hours", []string{"--job", "1", "--hours", "0"}, cli.ExitValidation},
		{"negative hours", []string{"--job", "1", "--hours", "-2"}, cli.ExitValidation},
		{"missing hours", []string{"--job", "1"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, testApp := cliutil.SetupCLITest(t)

			_, err := cliutil.ExecuteCLICommand(t, testApp, LogCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.GetExitCode(err))
			assert.Equal(t, 0, testutil.CountRows(t, db, "time_tracking"))
		})
	}
}

func TestListTimeCommand_Quiet(t *testing.T) {
	db, testApp := cliutil.SetupCLITest(t)
	clientID := testutil.CreateTestClient(t, db, "Acme")
	jobID := strconv.Itoa(testutil.CreateTestJob(t, db, clientID, "Trenching").ToInt())

	for _, h := range []string{"5", "2.25"} {
		_, err := cliutil.ExecuteCLICommand(t, testApp, LogCmd(), []string{"--job", jobID, "--hours", h})
		require.NoError(t, err)
	}

	output, err := cliutil.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, strings.Fields(output))
}
