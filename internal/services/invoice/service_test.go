package invoice

import (
	"context"
	"database/sql"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/events"
	"github.com/thenoetrevino/trench/internal/testutil"
	"github.com/thenoetrevino/trench/internal/types"
	"github.com/thenoetrevino/trench/internal/validation"
)

func setupJob(t *testing.T) (Service, *sql.DB, types.JobID) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	jobID := testutil.CreateTestJob(t, db, testutil.CreateTestClient(t, db, "Acme"), "Excavation")
	return NewService(database.NewRepository(db), nil), db, jobID
}

func TestGenerateInvoice(t *testing.T) {
	t.Parallel()
	svc, _, jobID := setupJob(t)
	ctx := context.Background()

	inv, err := svc.GenerateInvoice(ctx, GenerateInvoiceRequest{
		JobID: jobID, Amount: 4200.75, DueDate: "2025-08-01", Description: "Foundation dig",
	})
	require.NoError(t, err)
	assert.False(t, inv.Paid)

	invoices, err := svc.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, jobID, invoices[0].JobID)
	assert.InDelta(t, 4200.75, invoices[0].Amount, 0.0001)
	assert.Equal(t, "2025-08-01", invoices[0].DueDate)
	assert.Equal(t, "Foundation dig", invoices[0].Description)
	assert.False(t, invoices[0].Paid)
}

func TestGenerateInvoice_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     GenerateInvoiceRequest
		wantErr error
	}{
		{"negative amount", GenerateInvoiceRequest{JobID: 1, Amount: -5, DueDate: "2025-01-01", Description: "desc"}, ErrNonPositiveAmount},
		{"zero amount", GenerateInvoiceRequest{JobID: 1, Amount: 0, DueDate: "2025-01-01", Description: "desc"}, ErrNonPositiveAmount},
		{"NaN amount", GenerateInvoiceRequest{JobID: 1, Amount: math.NaN(), DueDate: "2025-01-01", Description: "desc"}, ErrNonPositiveAmount},
		{"empty due date", GenerateInvoiceRequest{JobID: 1, Amount: 10, Description: "desc"}, ErrEmptyDueDate},
		{"empty description", GenerateInvoiceRequest{JobID: 1, Amount: 10, DueDate: "2025-01-01", Description: "  "}, ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, db, _ := setupJob(t)

			_, err := svc.GenerateInvoice(context.Background(), tt.req)
			assert.ErrorIs(t, err, validation.ErrInvalid)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, testutil.CountRows(t, db, "invoices"), "validation failure must insert nothing")
		})
	}
}

func TestMarkPaid(t *testing.T) {
	t.Parallel()
	svc, _, jobID := setupJob(t)
	ctx := context.Background()

	inv, err := svc.GenerateInvoice(ctx, GenerateInvoiceRequest{JobID: jobID, Amount: 10, DueDate: "2025-01-01", Description: "d"})
	require.NoError(t, err)

	matched, err := svc.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, matched)

	invoices, err := svc.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.True(t, invoices[0].Paid)
	assert.Equal(t, "d", invoices[0].Description)
}

func TestMarkPaid_UnknownID(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	bus := events.NewBus()
	published := 0
	require.NoError(t, bus.SubscribeAll(func(events.Event) { published++ }))
	svc := NewService(database.NewRepository(db), bus)

	matched, err := svc.MarkPaid(context.Background(), types.InvoiceID(999))
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Zero(t, published)
}

func TestInvoiceEvents(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	bus := events.NewBus()
	var got []events.EventType
	require.NoError(t, bus.SubscribeAll(func(e events.Event) { got = append(got, e.Type) }))
	svc := NewService(database.NewRepository(db), bus)
	ctx := context.Background()

	inv, err := svc.GenerateInvoice(ctx, GenerateInvoiceRequest{JobID: 1, Amount: 99.5, DueDate: "2025-01-01", Description: "d"})
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, []events.EventType{events.EventInvoiceGenerated, events.EventInvoicePaid}, got)
}
