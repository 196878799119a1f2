// Package cmd assembles the trench command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/app"
	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/client"
	"github.com/thenoetrevino/trench/internal/cli/invoice"
	"github.com/thenoetrevino/trench/internal/cli/job"
	"github.com/thenoetrevino/trench/internal/cli/seed"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/cli/timelog"
	"github.com/thenoetrevino/trench/internal/config"
	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/logging"
	"github.com/thenoetrevino/trench/internal/render"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	DBPath string
}

// session owns what PersistentPreRunE opens, so it can be released after
// the command finishes whether or not it failed
type session struct {
	app       *app.App
	logCloser io.Closer
}

func (s *session) open(cmd *cobra.Command, opts *RootOptions) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}

	s.initLogging()
	styles.Init(cfg.ColorScheme)

	a, err := app.Open(cmd.Context(), cfg.Database.Path, database.Options{ForeignKeys: cfg.Database.ForeignKeys})
	if err != nil {
		return err
	}
	s.app = a

	c := cli.New(a)
	c.Money = render.NewMoney(cfg.Currency)
	c.Theme = cfg.ColorScheme
	c.Accessible = cfg.Forms.Accessible
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))

	slog.Debug("command started", "command", cmd.CommandPath(), "db", cfg.Database.Path)
	return nil
}

// initLogging sends slog to the log file. Logging problems never stop a
// command; records are dropped instead.
func (s *session) initLogging() {
	dir, err := logging.DefaultDir()
	if err == nil {
		s.logCloser, err = logging.Init(dir)
	}
	if err != nil {
		slog.SetDefault(logging.Discard())
	}
}

func (s *session) close() error {
	var errs []error
	if s.app != nil {
		errs = append(errs, s.app.Close())
		s.app = nil
	}
	if s.logCloser != nil {
		errs = append(errs, s.logCloser.Close())
		s.logCloser = nil
	}
	return errors.Join(errs...)
}

// NewRootCommand creates the root command for the trench CLI
func NewRootCommand() *cobra.Command {
	return newRootCommand(&session{})
}

func newRootCommand(s *session) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "trench",
		Short: "trench - a CRM for an excavation business",
		Long: `trench keeps track of clients, jobs, invoices and hours worked
in a local SQLite database.

Use 'trench menu' for the numbered menu, 'trench forms' for the form shell,
or the subcommands below for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd, opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "database file (overrides config and "+config.EnvDB+")")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	// Add subcommands
	cmd.AddCommand(client.ClientCmd())
	cmd.AddCommand(job.JobCmd())
	cmd.AddCommand(invoice.InvoiceCmd())
	cmd.AddCommand(timelog.TimeCmd())
	cmd.AddCommand(seed.SeedCmd())
	cmd.AddCommand(MenuCmd())
	cmd.AddCommand(FormsCmd())

	return cmd
}

// Execute runs trench with the process arguments and returns the exit code.
// SIGINT and SIGTERM cancel the command's context.
func Execute() int {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s := &session{}
	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	executed, err := root.ExecuteContextC(ctx)
	if closeErr := s.close(); closeErr != nil {
		slog.Error("failed to close trench", "error", closeErr)
		if err == nil {
			err = closeErr
		}
	}
	if err == nil {
		return cli.ExitSuccess
	}

	code := cli.GetExitCode(err)
	if !jsonOutput(executed) {
		reportError(executed, stderr, code, err)
	}
	return code
}

// jsonOutput reports whether the JSON error document was already written
func jsonOutput(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("json")
	return f != nil && f.Value.String() == "true"
}

func reportError(cmd *cobra.Command, w io.Writer, code int, err error) {
	formatter := &cli.OutputFormatter{ErrOut: w}
	suggestion := ""
	if code == cli.ExitUsage && cmd != nil {
		suggestion = fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())
	}
	if fmtErr := formatter.ErrorWithSuggestion(cli.ErrorCode(err), err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error", "error", fmtErr)
	}
}
