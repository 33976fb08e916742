package events

import (
	"context"

	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, event.Event) error { return nil }

// LogPublisher writes events to the structured log.
type LogPublisher struct {
	logger *logging.Logger
}

func NewLogPublisher(logger *logging.Logger) *LogPublisher {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, e event.Event) error {
	p.logger.InfoContext(ctx, "domain event",
		"event_id", e.ID,
		"event_type", string(e.Type),
		"event_key", e.Key,
		"occurred_at", e.OccurredAt,
		"payload", e.Payload,
	)
	return nil
}
