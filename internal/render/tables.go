package render

import (
	"strconv"

	"github.com/thenoetrevino/trench/internal/models"
)

// HeaderStatus is the header of the column Styled colours by value
const HeaderStatus = "Status"

// Clients builds the client list table
func Clients(clients []*models.Client) Table {
	t := Table{
		Title:     "Clients",
		EmptyText: "No clients found.",
		Headers:   []string{"ID", "Name", "Contact", "Email"},
	}
	for _, c := range clients {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(c.ID.ToInt()),
			c.Name,
			c.ContactNumber,
			c.Email,
		})
	}
	return t
}

// Jobs builds the job list table
func Jobs(jobs []*models.Job) Table {
	t := Table{
		Title:     "Jobs",
		EmptyText: "No jobs found.",
		Headers:   []string{"ID", "Client", "Type", "Start", "End", HeaderStatus},
	}
	for _, j := range jobs {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(j.ID.ToInt()),
			strconv.Itoa(j.ClientID.ToInt()),
			j.JobType,
			j.StartDate,
			j.EndDate,
			j.Status,
		})
	}
	return t
}

// Invoices builds the invoice list table
func Invoices(invoices []*models.Invoice, money Money) Table {
	t := Table{
		Title:     "Invoices",
		EmptyText: "No invoices found.",
		Headers:   []string{"ID", "Job", "Amount", "Due", "Description", HeaderStatus},
	}
	for _, inv := range invoices {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(inv.ID.ToInt()),
			strconv.Itoa(inv.JobID.ToInt()),
			money.Format(inv.Amount),
			inv.DueDate,
			inv.Description,
			inv.PaidLabel(),
		})
	}
	return t
}

// TimeEntries builds the time tracking table
func TimeEntries(entries []*models.TimeEntry) Table {
	t := Table{
		Title:     "Time Tracking",
		EmptyText: "No time entries found.",
		Headers:   []string{"ID", "Job", "Hours", "Logged"},
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.ID.ToInt()),
			strconv.Itoa(e.JobID.ToInt()),
			Hours(e.HoursWorked),
			e.DateLogged,
		})
	}
	return t
}
