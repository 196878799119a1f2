// Package cli holds what every trench subcommand shares: the application
// handle carried in the command context, output formatting and exit codes.
package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/trench/internal/app"
	"github.com/thenoetrevino/trench/internal/config/colors"
	"github.com/thenoetrevino/trench/internal/render"
)

// ErrNotInitialized is returned when a command runs without a CLI in its context
var ErrNotInitialized = errors.New("trench is not initialized")

// CLI represents the CLI application context. The root command builds it
// once per process and closes App on exit; subcommands only borrow it.
type CLI struct {
	App        *app.App // Application container with services
	Money      render.Money
	Theme      colors.ColorScheme
	Accessible bool // plain prompts instead of interactive forms
}

// New builds a CLI around a with default presentation settings
func New(a *app.App) *CLI {
	return &CLI{
		App:   a,
		Money: render.NewMoney("$"),
		Theme: *colors.Default(),
	}
}

type contextKey struct{}

// WithCLI returns a copy of ctx carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNotInitialized
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil || c.App == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}
