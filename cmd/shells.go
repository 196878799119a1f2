package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/shell/menu"
	"github.com/thenoetrevino/trench/internal/tui/shell"
)

// MenuCmd returns the numbered text menu command
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Numbered text menu",
		Long: `Run the line-oriented menu. Options 1-9 add and view records,
0 exits. Lists are shown before asking for an ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialization error: %w", err)
			}
			return menu.New(cliInstance.App, cliInstance.Money, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}

// FormsCmd returns the interactive form shell command
func FormsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forms",
		Short: "Interactive form shell",
		Long: `Run the form shell: pick Client Management or Job Management,
then fill in forms. Clients, jobs and invoices are picked from lists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialization error: %w", err)
			}
			accessible, _ := cmd.Flags().GetBool("accessible")
			s := shell.New(cliInstance.App, cliInstance.Money, cliInstance.Theme,
				shell.WithAccessible(accessible || cliInstance.Accessible),
				shell.WithOutput(cmd.OutOrStdout()),
			)
			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().Bool("accessible", false, "Plain prompts instead of interactive widgets")

	return cmd
}
