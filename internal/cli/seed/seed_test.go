package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/testutil"
	cliutil "github.com/thenoetrevino/trench/internal/testutil/cli"
)

func TestSeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)

	counts, err := Seed(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, &Counts{Clients: 2, Jobs: 3, Invoices: 3, TimeEntries: 4}, counts)

	assert.Equal(t, 2, testutil.CountRows(t, db, "clients"))
	assert.Equal(t, 3, testutil.CountRows(t, db, "jobs"))
	assert.Equal(t, 4, testutil.CountRows(t, db, "time_tracking"))

	invoices, err := repo.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.True(t, invoices[0].Paid)
	assert.False(t, invoices[1].Paid)
}

func TestSeed_RollsBackOnFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, err := db.Exec("DROP TABLE time_tracking")
	require.NoError(t, err)

	_, err = Seed(context.Background(), database.NewRepository(db))
	require.Error(t, err)
	assert.Equal(t, 0, testutil.CountRows(t, db, "clients"))
	assert.Equal(t, 0, testutil.CountRows(t, db, "invoices"))
}

func TestSeedCmd(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, SeedCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Seeded 2 clients, 3 jobs, 3 invoices, 4 time entries\n", output)
}
