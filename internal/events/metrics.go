package events

import (
	"sync/atomic"
	"time"
)

// Metrics counts the events seen on a publisher during one run
type Metrics struct {
	clientsAdded      atomic.Int64
	jobsAdded         atomic.Int64
	invoicesGenerated atomic.Int64
	invoicesPaid      atomic.Int64
	timeLogged        atomic.Int64
	StartTime         time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// AttachMetrics subscribes m to every event on publisher
func AttachMetrics(publisher EventPublisher, m *Metrics) error {
	return publisher.SubscribeAll(m.Observe)
}

// Observe counts e. Unknown event types are ignored.
func (m *Metrics) Observe(e Event) {
	switch e.Type {
	case EventClientAdded:
		m.clientsAdded.Add(1)
	case EventJobAdded:
		m.jobsAdded.Add(1)
	case EventInvoiceGenerated:
		m.invoicesGenerated.Add(1)
	case EventInvoicePaid:
		m.invoicesPaid.Add(1)
	case EventTimeLogged:
		m.timeLogged.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	ClientsAdded      int64         `json:"clients_added"`
	JobsAdded         int64         `json:"jobs_added"`
	InvoicesGenerated int64         `json:"invoices_generated"`
	InvoicesPaid      int64         `json:"invoices_paid"`
	TimeLogged        int64         `json:"time_logged"`
	Uptime            time.Duration `json:"uptime"`
}

// Total returns the number of writes in the snapshot
func (s MetricsSnapshot) Total() int64 {
	return s.ClientsAdded + s.JobsAdded + s.InvoicesGenerated + s.InvoicesPaid + s.TimeLogged
}

// Snapshot returns a point-in-time snapshot of all metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ClientsAdded:      m.clientsAdded.Load(),
		JobsAdded:         m.jobsAdded.Load(),
		InvoicesGenerated: m.invoicesGenerated.Load(),
		InvoicesPaid:      m.invoicesPaid.Load(),
		TimeLogged:        m.timeLogged.Load(),
		Uptime:            time.Since(m.StartTime),
	}
}
