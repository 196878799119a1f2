// Package seed holds the development command that fills a database with
// sample rows
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/handler"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/database"
)

type sampleJob struct {
	jobType    string
	start, end string
	invoices   []sampleInvoice
	hours      []float64
}

type sampleInvoice struct {
	amount      float64
	due         string
	description string
	paid        bool
}

type sampleClient struct {
	name, contact, email string
	jobs                 []sampleJob
}

var samples = []sampleClient{
	{
		name: "Acme Grading", contact: "555-0100", email: "ops@acme.test",
		jobs: []sampleJob{
			{
				jobType: "Trenching", start: "2025-05-01", end: "2025-05-09",
				invoices: []sampleInvoice{
					{850, "2025-06-01", "Progress billing", true},
					{1200.5, "2025-07-01", "Final billing", false},
				},
				hours: []float64{8, 7.5, 6},
			},
		},
	},
	{
		name: "Birch Lane HOA", contact: "555-0142", email: "board@birchlane.test",
		jobs: []sampleJob{
			{
				jobType: "Drainage", start: "2025-06-02", end: "2025-06-04",
				invoices: []sampleInvoice{{2400, "2025-07-15", "Culvert replacement", false}},
				hours:    []float64{9},
			},
			{jobType: "Site clearing", start: "2025-08-11", end: "2025-08-13"},
		},
	},
}

// Counts reports how many rows of each kind were inserted
type Counts struct {
	Clients     int `json:"clients"`
	Jobs        int `json:"jobs"`
	Invoices    int `json:"invoices"`
	TimeEntries int `json:"time_entries"`
}

// WriteHuman implements cli.HumanWriter
func (c *Counts) WriteHuman(w io.Writer) error {
	msg := fmt.Sprintf("Seeded %d clients, %d jobs, %d invoices, %d time entries",
		c.Clients, c.Jobs, c.Invoices, c.TimeEntries)
	_, err := fmt.Fprintln(w, styles.Apply(w, styles.SuccessStyle, msg))
	return err
}

// Seed inserts the sample rows in one transaction. Nothing is written if
// any insert fails.
func Seed(ctx context.Context, repo *database.Repository) (*Counts, error) {
	counts := &Counts{}
	err := repo.RunInTx(ctx, func(tx *database.Repository) error {
		*counts = Counts{}
		for _, sc := range samples {
			c, err := tx.AddClient(ctx, sc.name, sc.contact, sc.email)
			if err != nil {
				return err
			}
			counts.Clients++

			for _, sj := range sc.jobs {
				j, err := tx.AddJob(ctx, c.ID, sj.jobType, sj.start, sj.end)
				if err != nil {
					return err
				}
				counts.Jobs++

				for _, si := range sj.invoices {
					inv, err := tx.GenerateInvoice(ctx, j.ID, si.amount, si.due, si.description)
					if err != nil {
						return err
					}
					if si.paid {
						if _, err := tx.MarkInvoicePaid(ctx, inv.ID); err != nil {
							return err
						}
					}
					counts.Invoices++
				}

				for _, h := range sj.hours {
					if _, err := tx.LogTime(ctx, j.ID, h); err != nil {
						return err
					}
					counts.TimeEntries++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed sample data: %w", err)
	}

	slog.Info("seeded sample data", "clients", counts.Clients, "jobs", counts.Jobs,
		"invoices", counts.Invoices, "time_entries", counts.TimeEntries)
	return counts, nil
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample clients, jobs, invoices and hours",
		Long: `Insert a small set of sample rows for trying out the shells.
Rows are appended; running it twice inserts the samples twice.`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, _ *handler.Arguments) (any, error) {
			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return nil, fmt.Errorf("initialization error: %w", err)
			}
			return Seed(ctx, cliInstance.App.Repo())
		})),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}
