package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/validation"
)

type idResult struct {
	ID int `json:"id"`
}

func (r idResult) GetID() int { return r.ID }

func runCommand(t *testing.T, h Handler, parse func(*cobra.Command) error, args ...string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: Command(h, parse)}
	cmd.Flags().String("name", "", "")
	cmd.Flags().Float64("amount", 0, "")
	AddOutputFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func noParse(*cobra.Command) error { return nil }

func TestCommand_PassesFlags(t *testing.T) {
	var got *Arguments
	h := HandlerFunc(func(_ context.Context, args *Arguments) (any, error) {
		got = args
		return idResult{ID: 9}, nil
	})

	out, err := runCommand(t, h, noParse, "--name", "Acme", "--amount", "12.5", "--quiet", "extra")
	require.NoError(t, err)

	assert.Equal(t, "9\n", out)
	assert.Equal(t, "Acme", got.GetString("name", ""))
	assert.InDelta(t, 12.5, got.GetFloat64("amount", 0), 0)
	assert.True(t, got.GetBool("quiet"))
	assert.False(t, got.GetBool("json"))
	assert.Equal(t, 3, got.GetInt("missing", 3))
	assert.Equal(t, []string{"extra"}, got.Args)
	assert.NotNil(t, got.GetCmd())
}

func TestCommand_ParseErrorIsUsage(t *testing.T) {
	h := HandlerFunc(func(context.Context, *Arguments) (any, error) {
		t.Fatal("handler must not run")
		return nil, nil
	})

	_, err := runCommand(t, h, func(*cobra.Command) error { return errors.New("bad flags") })
	assert.Equal(t, cli.ExitUsage, cli.GetExitCode(err))
}

func TestCommand_JSONErrorDocument(t *testing.T) {
	verr := validation.Violations{"name": errors.New("name cannot be empty")}.Err()
	h := HandlerFunc(func(context.Context, *Arguments) (any, error) { return nil, verr })

	out, err := runCommand(t, h, noParse, "--json")
	require.ErrorIs(t, err, validation.ErrInvalid)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, false, doc["success"])
	errDoc := doc["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errDoc["code"])
	assert.Contains(t, errDoc["message"], "name cannot be empty")
}

func TestCommand_HumanErrorWritesNothing(t *testing.T) {
	h := HandlerFunc(func(context.Context, *Arguments) (any, error) { return nil, errors.New("boom") })

	out, err := runCommand(t, h, noParse)
	assert.EqualError(t, err, "boom")
	assert.Empty(t, out)
}
