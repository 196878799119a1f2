package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/config/colors"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/render"
	"github.com/thenoetrevino/trench/internal/types"
)

func TestOptions(t *testing.T) {
	clients := []*models.Client{{ID: 1, Name: "Acme"}, {ID: 4, Name: "Birch Lane HOA"}}
	opts := ClientOptions(clients)
	require.Len(t, opts, 2)
	assert.Equal(t, "#4 Birch Lane HOA", opts[1].Key)
	assert.Equal(t, types.ClientID(4), opts[1].Value)

	jobs := []*models.Job{{ID: 2, ClientID: 1, JobType: "Trenching", StartDate: "2025-05-01", EndDate: "2025-05-09"}}
	jobOpts := JobOptions(jobs)
	require.Len(t, jobOpts, 1)
	assert.Equal(t, "#2 Trenching (client 1, 2025-05-01 to 2025-05-09)", jobOpts[0].Key)

	invoices := []*models.Invoice{{ID: 3, JobID: 2, Amount: 12500, DueDate: "2025-07-01", Paid: true}}
	invOpts := InvoiceOptions(invoices, render.NewMoney("$"))
	require.Len(t, invOpts, 1)
	assert.Equal(t, "#3 job 2, $12,500.00 due 2025-07-01 [Paid]", invOpts[0].Key)
	assert.Equal(t, types.InvoiceID(3), invOpts[0].Value)
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, validateNumber("7.5"))
	assert.NoError(t, validateNumber("-5"))
	assert.Error(t, validateNumber("seven"))
	assert.Error(t, validateNumber(""))
}

func TestFormsBuild(t *testing.T) {
	clients := []*models.Client{{ID: 1, Name: "Acme"}}
	jobs := []*models.Job{{ID: 1, ClientID: 1, JobType: "Grading"}}
	invoices := []*models.Invoice{{ID: 1, JobID: 1, Amount: 10}}

	var choice string
	assert.NotNil(t, CreateMenuForm("Pick", []Choice{{Label: "A", Value: "a"}}, &choice))
	assert.NotNil(t, CreateClientForm(&ClientInput{}))
	assert.NotNil(t, CreateJobForm(&JobInput{}, clients))
	assert.NotNil(t, CreateInvoiceForm(&InvoiceInput{}, jobs))
	assert.NotNil(t, CreatePayForm(&PayInput{}, invoices, render.NewMoney("$")))
	assert.NotNil(t, CreateTimeForm(&TimeInput{}, jobs))
	assert.NotNil(t, CreateTrenchTheme(*colors.Default()))
	assert.NotNil(t, CreateKeyMapWithShiftEnter())
}
