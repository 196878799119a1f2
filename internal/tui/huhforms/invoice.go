package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/render"
	"github.com/thenoetrevino/trench/internal/types"
)

// InvoiceInput holds the values collected by the generate invoice form.
// Amount is kept as typed and parsed on submit.
type InvoiceInput struct {
	JobID       types.JobID
	Amount      string
	DueDate     string
	Description string
}

// CreateInvoiceForm creates a huh form for generating an invoice against one of jobs
func CreateInvoiceForm(in *InvoiceInput, jobs []*models.Job) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[types.JobID]().
			Key("job").
			Title("Job").
			Options(JobOptions(jobs)...).
			Value(&in.JobID),

		huh.NewInput().
			Key("amount").
			Title("Amount").
			Placeholder("850.00").
			Validate(validateNumber).
			Value(&in.Amount),

		huh.NewInput().
			Key("due").
			Title("Due Date").
			Placeholder("YYYY-MM-DD").
			Value(&in.DueDate),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is being billed...").
			CharLimit(500).
			Lines(3).
			Value(&in.Description),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}

// PayInput holds the invoice picked by the mark paid form
type PayInput struct {
	InvoiceID types.InvoiceID
	Confirm   bool
}

// CreatePayForm creates a huh form for marking one of invoices as paid
func CreatePayForm(in *PayInput, invoices []*models.Invoice, money render.Money) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[types.InvoiceID]().
			Key("invoice").
			Title("Invoice").
			Options(InvoiceOptions(invoices, money)...).
			Value(&in.InvoiceID),

		huh.NewConfirm().
			Key("confirm").
			Title("Mark this invoice as paid?").
			Affirmative("Yes").
			Negative("No").
			Value(&in.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// InvoiceOptions returns one select option per invoice
func InvoiceOptions(invoices []*models.Invoice, money render.Money) []huh.Option[types.InvoiceID] {
	options := make([]huh.Option[types.InvoiceID], len(invoices))
	for i, inv := range invoices {
		label := fmt.Sprintf("#%d job %d, %s due %s [%s]", inv.ID, inv.JobID, money.Format(inv.Amount), inv.DueDate, inv.PaidLabel())
		options[i] = huh.NewOption(label, inv.ID)
	}
	return options
}
