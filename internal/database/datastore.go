// Package database defines repository interfaces for data access
package database

// DataStore defines the unified interface for all data operations.
// Services depend on the narrower Reader/Writer pairs; DataStore is what
// the application container hands around.
type DataStore interface {
	ClientReader
	ClientWriter
	JobReader
	JobWriter
	InvoiceReader
	InvoiceWriter
	TimeEntryReader
	TimeEntryWriter
}

var _ DataStore = (*Repository)(nil)
