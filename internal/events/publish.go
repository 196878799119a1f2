package events

import "log/slog"

// Publish sends event if a publisher is configured. Failures are logged and
// swallowed: the write the event describes has already committed, so the
// caller's operation must not fail because of it.
func Publish(publisher EventPublisher, event Event) {
	if publisher == nil {
		return // Silently skip if no bus (e.g., in tests)
	}

	if err := publisher.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"entity_id", event.EntityID,
			"error", err)
	}
}
