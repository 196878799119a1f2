// Package shell implements the form-driven shell: menus and forms built
// with huh, results printed as markdown tables
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/trench/internal/app"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/config/colors"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/render"
	"github.com/thenoetrevino/trench/internal/tui/components"
	"github.com/thenoetrevino/trench/internal/tui/huhforms"
	"github.com/thenoetrevino/trench/internal/validation"
)

// FormRunner shows form until the user submits it. target is the input
// struct the form writes into.
type FormRunner func(ctx context.Context, form *huh.Form, target any) error

// Option configures a Shell
type Option func(*Shell)

// WithRunner replaces the interactive form runner
func WithRunner(run FormRunner) Option {
	return func(s *Shell) {
		s.run = run
	}
}

// WithAccessible switches forms to plain line prompts for screen readers
func WithAccessible(accessible bool) Option {
	return func(s *Shell) {
		s.accessible = accessible
	}
}

// WithOutput sets where tables and notices are written (default stdout)
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// Shell is the form shell
type Shell struct {
	app        *app.App
	money      render.Money
	theme      huh.Theme
	accessible bool
	width      int
	out        io.Writer
	run        FormRunner
}

// New creates a form shell over a
func New(a *app.App, money render.Money, scheme colors.ColorScheme, opts ...Option) *Shell {
	s := &Shell{
		app:   a,
		money: money,
		theme: huhforms.CreateTrenchTheme(scheme),
		width: 100,
		out:   os.Stdout,
		run:   runInteractive,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func runInteractive(ctx context.Context, form *huh.Form, _ any) error {
	return form.RunWithContext(ctx)
}

const (
	choiceClients = "clients"
	choiceJobs    = "jobs"
	choiceQuit    = "quit"
	choiceBack    = "back"

	choiceAddClient   = "add-client"
	choiceViewClients = "view-clients"

	choiceAddJob          = "add-job"
	choiceViewJobs        = "view-jobs"
	choiceGenerateInvoice = "generate-invoice"
	choiceViewInvoices    = "view-invoices"
	choiceMarkPaid        = "mark-paid"
	choiceLogTime         = "log-time"
	choiceViewTime        = "view-time"
)

var topChoices = []huhforms.Choice{
	{Label: "Client Management", Value: choiceClients},
	{Label: "Job Management", Value: choiceJobs},
	{Label: "Quit", Value: choiceQuit},
}

var clientChoices = []huhforms.Choice{
	{Label: "Add Client", Value: choiceAddClient},
	{Label: "View Clients", Value: choiceViewClients},
	{Label: "Back", Value: choiceBack},
}

var jobChoices = []huhforms.Choice{
	{Label: "Add Job", Value: choiceAddJob},
	{Label: "View Jobs", Value: choiceViewJobs},
	{Label: "Generate Invoice", Value: choiceGenerateInvoice},
	{Label: "View Invoices", Value: choiceViewInvoices},
	{Label: "Mark Invoice as Paid", Value: choiceMarkPaid},
	{Label: "Log Time Worked", Value: choiceLogTime},
	{Label: "View Time Tracking", Value: choiceViewTime},
	{Label: "Back", Value: choiceBack},
}

// Run shows the top menu until the user quits or aborts it
func (s *Shell) Run(ctx context.Context) error {
	for {
		choice, err := s.choose(ctx, "Excavation CRM", topChoices)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case choiceClients:
			err = s.submenu(ctx, "Client Management", clientChoices, map[string]func(context.Context) error{
				choiceAddClient:   s.addClient,
				choiceViewClients: s.viewClients,
			})
		case choiceJobs:
			err = s.submenu(ctx, "Job Management", jobChoices, map[string]func(context.Context) error{
				choiceAddJob:          s.addJob,
				choiceViewJobs:        s.viewJobs,
				choiceGenerateInvoice: s.generateInvoice,
				choiceViewInvoices:    s.viewInvoices,
				choiceMarkPaid:        s.markInvoicePaid,
				choiceLogTime:         s.logTime,
				choiceViewTime:        s.viewTimeEntries,
			})
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// submenu loops over one management menu until Back
func (s *Shell) submenu(ctx context.Context, title string, choices []huhforms.Choice, actions map[string]func(context.Context) error) error {
	for {
		choice, err := s.choose(ctx, title, choices)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		action, ok := actions[choice]
		if !ok {
			return nil
		}
		if err := s.handle(action(ctx)); err != nil {
			return err
		}
	}
}

// handle turns input problems into notices. Only storage failures remain.
func (s *Shell) handle(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted):
		s.notice(styles.WarningStyle, "Cancelled.")
		return nil
	case errors.Is(err, validation.ErrInvalid),
		errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrInvalidNumber):
		slog.Debug("form input rejected", "error", err)
		s.notice(styles.ErrorStyle, "Error: "+err.Error())
		return nil
	default:
		return err
	}
}

func (s *Shell) choose(ctx context.Context, title string, choices []huhforms.Choice) (string, error) {
	var choice string
	err := s.show(ctx, huhforms.CreateMenuForm(title, choices, &choice), &choice)
	return choice, err
}

func (s *Shell) show(ctx context.Context, form *huh.Form, target any) error {
	form = form.WithTheme(s.theme).WithAccessible(s.accessible)
	return s.run(ctx, form, target)
}

func (s *Shell) table(t render.Table) {
	s.write(components.RenderMarkdown(components.MarkdownProps{
		Markdown: t.Markdown(),
		Width:    s.width,
		Styled:   styles.IsTerminal(s.out),
	}))
}

func (s *Shell) success(msg string) {
	s.notice(styles.SuccessStyle, msg)
}

func (s *Shell) notice(style lipgloss.Style, msg string) {
	s.write(styles.Apply(s.out, style, msg))
}

func (s *Shell) write(text string) {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		slog.Warn("failed to write shell output", "error", err)
	}
}
