package events

import "log/slog"

// AttachAuditLog writes every event on publisher to logger at info level
func AttachAuditLog(publisher EventPublisher, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	return publisher.SubscribeAll(func(e Event) {
		logger.Info("audit",
			"event", string(e.Type),
			"entity_id", e.EntityID,
			"summary", e.Summary,
			"seq", e.SequenceID)
	})
}
