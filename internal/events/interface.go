package events

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this rather than on *Bus so they can run without one.
type EventPublisher interface {
	// SendEvent delivers an event to every subscriber of its type
	SendEvent(event Event) error

	// Subscribe registers fn for one event type
	Subscribe(eventType EventType, fn Handler) error

	// SubscribeAll registers fn for every event type
	SubscribeAll(fn Handler) error

	// Close stops delivery; later sends fail with ErrBusClosed
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
