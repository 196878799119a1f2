package models

import "github.com/thenoetrevino/trench/internal/types"

// Invoice is a billing record tied to a job.
// Description is empty for invoices written by older databases that
// had no description column.
type Invoice struct {
	ID          types.InvoiceID `json:"id"`
	JobID       types.JobID     `json:"job_id"`
	Amount      float64         `json:"amount"`
	DueDate     string          `json:"due_date"`
	Description string          `json:"description"`
	Paid        bool            `json:"paid"`
}

// PaidLabel returns the status word shown for the paid flag
func (i *Invoice) PaidLabel() string {
	if i.Paid {
		return InvoicePaid
	}
	return InvoiceUnpaid
}
