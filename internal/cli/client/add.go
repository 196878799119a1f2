package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/handler"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/models"
	clientservice "github.com/thenoetrevino/trench/internal/services/client"
)

// AddCmd returns the client add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new client",
		Long: `Add a client with a name, contact number and email.

Examples:
  # Add client (human-readable output)
  trench client add --name="Acme Grading" --contact="555-0100" --email="ops@acme.test"

  # JSON output for agents
  trench client add --name="Acme Grading" --contact="555-0100" --email="ops@acme.test" --json

  # Quiet mode for bash capture
  CLIENT_ID=$(trench client add --name="Acme Grading" --contact="555-0100" --email="ops@acme.test" --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "Client name (required)")
	cmd.Flags().String("contact", "", "Contact phone number (required)")
	cmd.Flags().String("email", "", "Email address (required)")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for client creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	c, err := cliInstance.App.ClientService.AddClient(ctx, clientservice.AddClientRequest{
		Name:          args.GetString("name", ""),
		ContactNumber: args.GetString("contact", ""),
		Email:         args.GetString("email", ""),
	})
	if err != nil {
		return nil, err
	}

	return &addResult{Client: c}, nil
}

// addResult represents the result of client creation
type addResult struct {
	Client *models.Client `json:"client"`
}

// GetID implements the GetID interface for quiet mode output
func (r *addResult) GetID() int {
	return r.Client.ID.ToInt()
}

// WriteHuman implements cli.HumanWriter
func (r *addResult) WriteHuman(w io.Writer) error {
	msg := fmt.Sprintf("Client added successfully (ID %d): %s", r.Client.ID, r.Client.Name)
	_, err := fmt.Fprintln(w, styles.Apply(w, styles.SuccessStyle, msg))
	return err
}

func parseAddFlags(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "name", "contact", "email")
}
