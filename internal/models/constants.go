package models

// ============================================================================
// JOB STATUS
// ============================================================================

// JobStatusScheduled is the status every job is created with
const JobStatusScheduled = "Scheduled"

// ============================================================================
// INVOICE STATUS LABELS
// ============================================================================

const (
	InvoicePaid   = "Paid"
	InvoiceUnpaid = "Unpaid"
)

// ============================================================================
// DATE FORMATS
// ============================================================================

// DateLoggedLayout is the layout of time_tracking.date_logged (YYYY-MM-DD HH:MM:SS)
const DateLoggedLayout = "2006-01-02 15:04:05"

// DateLayout is the layout the shells ask for when prompting for dates
const DateLayout = "2006-01-02"
