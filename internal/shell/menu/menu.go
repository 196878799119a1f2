// Package menu implements the numbered, line-oriented shell: a prompt loop
// over any reader and writer, driving the same services as the CLI.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/trench/internal/app"
	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/render"
	clientservice "github.com/thenoetrevino/trench/internal/services/client"
	invoiceservice "github.com/thenoetrevino/trench/internal/services/invoice"
	jobservice "github.com/thenoetrevino/trench/internal/services/job"
	"github.com/thenoetrevino/trench/internal/services/timelog"
	"github.com/thenoetrevino/trench/internal/types"
	"github.com/thenoetrevino/trench/internal/validation"
)

// errEOF ends the loop when input runs out mid-prompt
var errEOF = errors.New("end of input")

const menuText = `
Excavation CRM Menu:
1. Add Client
2. View Clients
3. Add Job
4. View Jobs
5. Generate Invoice
6. View Invoices
7. Mark Invoice as Paid
8. Log Time Worked
9. View Time Tracking
0. Exit
`

// Menu is the numbered text shell
type Menu struct {
	app   *app.App
	money render.Money
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a menu reading answers from in and writing to out
func New(a *app.App, money render.Money, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app:   a,
		money: money,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run shows the menu until the user picks 0 or input ends. Invalid input
// is reported and the loop continues; storage failures end it with an
// error.
func (m *Menu) Run(ctx context.Context) error {
	actions := map[string]func(context.Context) error{
		"1": m.addClient,
		"2": m.viewClients,
		"3": m.addJob,
		"4": m.viewJobs,
		"5": m.generateInvoice,
		"6": m.viewInvoices,
		"7": m.markInvoicePaid,
		"8": m.logTime,
		"9": m.viewTimeEntries,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.print(menuText)
		choice, err := m.prompt("Choose an option: ")
		if errors.Is(err, errEOF) {
			m.println("")
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == "0" {
			m.println("Exiting CRM...")
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			m.println("Invalid option. Please try again.")
			continue
		}

		err = action(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errEOF):
			m.println("")
			return nil
		case errors.Is(err, validation.ErrInvalid),
			errors.Is(err, models.ErrInvalidID),
			errors.Is(err, models.ErrInvalidNumber):
			slog.Debug("menu input rejected", "option", choice, "error", err)
			m.println(styles.Apply(m.out, styles.ErrorStyle, "Error: "+err.Error()))
		default:
			return err
		}
	}
}

func (m *Menu) addClient(ctx context.Context) error {
	name, err := m.prompt("Enter client name: ")
	if err != nil {
		return err
	}
	contact, err := m.prompt("Enter client contact number: ")
	if err != nil {
		return err
	}
	email, err := m.prompt("Enter client email: ")
	if err != nil {
		return err
	}

	c, err := m.app.ClientService.AddClient(ctx, clientservice.AddClientRequest{
		Name:          name,
		ContactNumber: contact,
		Email:         email,
	})
	if err != nil {
		return err
	}
	m.success(fmt.Sprintf("Client added successfully (ID %d).", c.ID))
	return nil
}

func (m *Menu) viewClients(ctx context.Context) error {
	clients, err := m.app.ClientService.ListClients(ctx)
	if err != nil {
		return err
	}
	return m.table(render.Clients(clients))
}

func (m *Menu) addJob(ctx context.Context) error {
	if err := m.viewClients(ctx); err != nil {
		return err
	}
	clientID, err := m.promptID("Enter client ID: ")
	if err != nil {
		return err
	}
	jobType, err := m.prompt("Enter job type: ")
	if err != nil {
		return err
	}
	start, err := m.prompt("Enter job start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := m.prompt("Enter job end date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	j, err := m.app.JobService.AddJob(ctx, jobservice.AddJobRequest{
		ClientID:  types.ClientIDFromInt(clientID),
		JobType:   jobType,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}
	m.success(fmt.Sprintf("Job added successfully (ID %d).", j.ID))
	return nil
}

func (m *Menu) viewJobs(ctx context.Context) error {
	jobs, err := m.app.JobService.ListJobs(ctx)
	if err != nil {
		return err
	}
	return m.table(render.Jobs(jobs))
}

func (m *Menu) generateInvoice(ctx context.Context) error {
	if err := m.viewJobs(ctx); err != nil {
		return err
	}
	jobID, err := m.promptID("Enter job ID for the invoice: ")
	if err != nil {
		return err
	}
	amount, err := m.promptNumber("Enter amount for the invoice: ")
	if err != nil {
		return err
	}
	due, err := m.prompt("Enter due date for the invoice (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	description, err := m.prompt("Enter description for the invoice: ")
	if err != nil {
		return err
	}

	inv, err := m.app.InvoiceService.GenerateInvoice(ctx, invoiceservice.GenerateInvoiceRequest{
		JobID:       types.JobIDFromInt(jobID),
		Amount:      amount,
		DueDate:     due,
		Description: description,
	})
	if err != nil {
		return err
	}
	m.success(fmt.Sprintf("Invoice generated successfully (ID %d, %s).", inv.ID, m.money.Format(inv.Amount)))
	return nil
}

func (m *Menu) viewInvoices(ctx context.Context) error {
	invoices, err := m.app.InvoiceService.ListInvoices(ctx)
	if err != nil {
		return err
	}
	return m.table(render.Invoices(invoices, m.money))
}

func (m *Menu) markInvoicePaid(ctx context.Context) error {
	if err := m.viewInvoices(ctx); err != nil {
		return err
	}
	id, err := m.promptID("Enter invoice ID to mark as paid: ")
	if err != nil {
		return err
	}

	matched, err := m.app.InvoiceService.MarkPaid(ctx, types.InvoiceIDFromInt(id))
	if err != nil {
		return err
	}
	if !matched {
		m.println(styles.Apply(m.out, styles.WarningStyle, fmt.Sprintf("No invoice with ID %d.", id)))
		return nil
	}
	m.success(fmt.Sprintf("Invoice %d marked as paid.", id))
	return nil
}

func (m *Menu) logTime(ctx context.Context) error {
	if err := m.viewJobs(ctx); err != nil {
		return err
	}
	jobID, err := m.promptID("Enter job ID to log time for: ")
	if err != nil {
		return err
	}
	hours, err := m.promptNumber("Enter number of hours worked: ")
	if err != nil {
		return err
	}

	entry, err := m.app.TimeService.LogTime(ctx, timelog.LogTimeRequest{
		JobID:       types.JobIDFromInt(jobID),
		HoursWorked: hours,
	})
	if err != nil {
		return err
	}
	m.success(fmt.Sprintf("Time logged successfully (%sh at %s).", render.Hours(entry.HoursWorked), entry.DateLogged))
	return nil
}

func (m *Menu) viewTimeEntries(ctx context.Context) error {
	entries, err := m.app.TimeService.ListTimeEntries(ctx)
	if err != nil {
		return err
	}
	return m.table(render.TimeEntries(entries))
}

// prompt writes label and returns the next input line without its newline
func (m *Menu) prompt(label string) (string, error) {
	m.print(label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errEOF
	}
	return m.in.Text(), nil
}

func (m *Menu) promptID(label string) (int, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return cli.ParseID(s)
}

func (m *Menu) promptNumber(label string) (float64, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return cli.ParseNumber(s)
}

func (m *Menu) table(t render.Table) error {
	m.println("")
	return styles.WriteTable(m.out, t)
}

func (m *Menu) success(msg string) {
	m.println(styles.Apply(m.out, styles.SuccessStyle, msg))
}

func (m *Menu) print(s string) {
	if _, err := io.WriteString(m.out, s); err != nil {
		slog.Warn("failed to write menu output", "error", err)
	}
}

func (m *Menu) println(s string) {
	m.print(s + "\n")
}
