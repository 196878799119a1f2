package types

// ID types give each integer key a domain meaning so a job id can't be
// passed where a client id is expected without an explicit conversion.

// ClientID identifies a row in the clients table (clients.client_id)
type ClientID int

// JobID identifies a row in the jobs table (jobs.job_id)
type JobID int

// InvoiceID identifies a row in the invoices table (invoices.invoice_id)
type InvoiceID int

// TimeEntryID identifies a row in the time_tracking table (time_tracking.time_id)
type TimeEntryID int

// ToInt converts the ID back to a plain int
func (id ClientID) ToInt() int {
	return int(id)
}

func (id JobID) ToInt() int {
	return int(id)
}

func (id InvoiceID) ToInt() int {
	return int(id)
}

func (id TimeEntryID) ToInt() int {
	return int(id)
}

// ClientIDFromInt creates a ClientID from an int value
func ClientIDFromInt(i int) ClientID {
	return ClientID(i)
}

func JobIDFromInt(i int) JobID {
	return JobID(i)
}

func InvoiceIDFromInt(i int) InvoiceID {
	return InvoiceID(i)
}

func TimeEntryIDFromInt(i int) TimeEntryID {
	return TimeEntryID(i)
}
