package events

import "time"

// EventType indicates what kind of change occurred. The value doubles as the
// bus topic.
type EventType string

const (
	EventClientAdded      EventType = "client:added"
	EventJobAdded         EventType = "job:added"
	EventInvoiceGenerated EventType = "invoice:generated"
	EventInvoicePaid      EventType = "invoice:paid"
	EventTimeLogged       EventType = "time:logged"
)

// topicAll receives every event regardless of type
const topicAll = "*"

// Event represents a committed write to the store
type Event struct {
	Type       EventType
	EntityID   int       // id of the row that was written
	Summary    string    // short human description, e.g. the client name
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// Handler receives published events
type Handler func(Event)
