package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// InvoiceRepo is pure data access for the invoices table
type InvoiceRepo struct {
	db querier
}

// Create inserts an unpaid invoice. An empty description is stored as ''.
func (r *InvoiceRepo) Create(ctx context.Context, jobID types.JobID, amount float64, dueDate, description string) (*models.Invoice, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (job_id, amount, due_date, description, paid) VALUES (?, ?, ?, ?, 0)`,
		jobID, amount, dueDate, description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	id, err := insertedID(result)
	if err != nil {
		return nil, err
	}

	return &models.Invoice{
		ID:          types.InvoiceIDFromInt(id),
		JobID:       jobID,
		Amount:      amount,
		DueDate:     dueDate,
		Description: description,
		Paid:        false,
	}, nil
}

// GetAll returns every invoice in insertion order
func (r *InvoiceRepo) GetAll(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT invoice_id, job_id, amount, due_date, description, paid
		FROM invoices
		ORDER BY invoice_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []*models.Invoice{}
	for rows.Next() {
		var (
			inv                  models.Invoice
			jobID, paid          sql.NullInt64
			amount               sql.NullFloat64
			dueDate, description sql.NullString
		)
		if err := rows.Scan(&inv.ID, &jobID, &amount, &dueDate, &description, &paid); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		inv.JobID = types.JobID(jobID.Int64)
		inv.Amount = NullFloatToFloat(amount)
		inv.DueDate = NullStringToString(dueDate)
		inv.Description = NullStringToString(description)
		inv.Paid = paid.Valid && paid.Int64 != 0
		invoices = append(invoices, &inv)
	}

	return invoices, rows.Err()
}

// MarkPaid sets paid = 1 on the invoice. It reports whether a row matched;
// an unknown id is not an error.
func (r *InvoiceRepo) MarkPaid(ctx context.Context, id types.InvoiceID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE invoices SET paid = 1 WHERE invoice_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark invoice %d paid: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
