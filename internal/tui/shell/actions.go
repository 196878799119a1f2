package shell

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/render"
	clientservice "github.com/thenoetrevino/trench/internal/services/client"
	invoiceservice "github.com/thenoetrevino/trench/internal/services/invoice"
	jobservice "github.com/thenoetrevino/trench/internal/services/job"
	"github.com/thenoetrevino/trench/internal/services/timelog"
	"github.com/thenoetrevino/trench/internal/tui/huhforms"
)

func (s *Shell) addClient(ctx context.Context) error {
	var in huhforms.ClientInput
	if err := s.show(ctx, huhforms.CreateClientForm(&in), &in); err != nil {
		return err
	}
	if !in.Confirm {
		s.notice(styles.WarningStyle, "Client not added.")
		return nil
	}
	return s.submitClient(ctx, in)
}

func (s *Shell) submitClient(ctx context.Context, in huhforms.ClientInput) error {
	c, err := s.app.ClientService.AddClient(ctx, clientservice.AddClientRequest{
		Name:          in.Name,
		ContactNumber: in.Contact,
		Email:         in.Email,
	})
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("Client added successfully (ID %d).", c.ID))
	return nil
}

func (s *Shell) viewClients(ctx context.Context) error {
	clients, err := s.app.ClientService.ListClients(ctx)
	if err != nil {
		return err
	}
	s.table(render.Clients(clients))
	return nil
}

func (s *Shell) addJob(ctx context.Context) error {
	clients, err := s.app.ClientService.ListClients(ctx)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		s.notice(styles.WarningStyle, "No clients yet. Add a client first.")
		return nil
	}

	var in huhforms.JobInput
	if err := s.show(ctx, huhforms.CreateJobForm(&in, clients), &in); err != nil {
		return err
	}
	return s.submitJob(ctx, in)
}

func (s *Shell) submitJob(ctx context.Context, in huhforms.JobInput) error {
	j, err := s.app.JobService.AddJob(ctx, jobservice.AddJobRequest{
		ClientID:  in.ClientID,
		JobType:   in.JobType,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("Job added successfully (ID %d, %s).", j.ID, j.Status))
	return nil
}

func (s *Shell) viewJobs(ctx context.Context) error {
	jobs, err := s.app.JobService.ListJobs(ctx)
	if err != nil {
		return err
	}
	s.table(render.Jobs(jobs))
	return nil
}

func (s *Shell) generateInvoice(ctx context.Context) error {
	jobs, err := s.app.JobService.ListJobs(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		s.notice(styles.WarningStyle, "No jobs yet. Add a job first.")
		return nil
	}

	var in huhforms.InvoiceInput
	if err := s.show(ctx, huhforms.CreateInvoiceForm(&in, jobs), &in); err != nil {
		return err
	}
	return s.submitInvoice(ctx, in)
}

func (s *Shell) submitInvoice(ctx context.Context, in huhforms.InvoiceInput) error {
	amount, err := cli.ParseNumber(in.Amount)
	if err != nil {
		return err
	}

	inv, err := s.app.InvoiceService.GenerateInvoice(ctx, invoiceservice.GenerateInvoiceRequest{
		JobID:       in.JobID,
		Amount:      amount,
		DueDate:     in.DueDate,
		Description: in.Description,
	})
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("Invoice generated successfully (ID %d, %s).", inv.ID, s.money.Format(inv.Amount)))
	return nil
}

func (s *Shell) viewInvoices(ctx context.Context) error {
	invoices, err := s.app.InvoiceService.ListInvoices(ctx)
	if err != nil {
		return err
	}
	s.table(render.Invoices(invoices, s.money))
	return nil
}

func (s *Shell) markInvoicePaid(ctx context.Context) error {
	invoices, err := s.app.InvoiceService.ListInvoices(ctx)
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		s.notice(styles.WarningStyle, "No invoices yet.")
		return nil
	}

	var in huhforms.PayInput
	if err := s.show(ctx, huhforms.CreatePayForm(&in, invoices, s.money), &in); err != nil {
		return err
	}
	if !in.Confirm {
		s.notice(styles.WarningStyle, "Invoice not changed.")
		return nil
	}

	matched, err := s.app.InvoiceService.MarkPaid(ctx, in.InvoiceID)
	if err != nil {
		return err
	}
	if !matched {
		s.notice(styles.WarningStyle, fmt.Sprintf("No invoice with ID %d.", in.InvoiceID))
		return nil
	}
	s.success(fmt.Sprintf("Invoice %d marked as paid.", in.InvoiceID))
	return nil
}

func (s *Shell) logTime(ctx context.Context) error {
	jobs, err := s.app.JobService.ListJobs(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		s.notice(styles.WarningStyle, "No jobs yet. Add a job first.")
		return nil
	}

	var in huhforms.TimeInput
	if err := s.show(ctx, huhforms.CreateTimeForm(&in, jobs), &in); err != nil {
		return err
	}
	return s.submitTime(ctx, in)
}

func (s *Shell) submitTime(ctx context.Context, in huhforms.TimeInput) error {
	hours, err := cli.ParseNumber(in.Hours)
	if err != nil {
		return err
	}

	entry, err := s.app.TimeService.LogTime(ctx, timelog.LogTimeRequest{
		JobID:       in.JobID,
		HoursWorked: hours,
	})
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("Logged %sh on job %d at %s.", render.Hours(entry.HoursWorked), entry.JobID, entry.DateLogged))
	return nil
}

func (s *Shell) viewTimeEntries(ctx context.Context) error {
	entries, err := s.app.TimeService.ListTimeEntries(ctx)
	if err != nil {
		return err
	}
	s.table(render.TimeEntries(entries))
	return nil
}
