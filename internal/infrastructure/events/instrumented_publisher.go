package events

import (
	"context"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("champions-tracker/internal/infrastructure/events")

// Recorder receives one observation per publish attempt.
type Recorder interface {
	ObserveEventPublish(eventType, driver string, elapsed time.Duration, err error)
}

// InstrumentedPublisher wraps a publisher with a span and metrics.
type InstrumentedPublisher struct {
	next     event.Publisher
	driver   string
	recorder Recorder
}

func NewInstrumentedPublisher(next event.Publisher, driver string, recorder Recorder) *InstrumentedPublisher {
	return &InstrumentedPublisher{next: next, driver: driver, recorder: recorder}
}

func (p *InstrumentedPublisher) Publish(ctx context.Context, e event.Event) error {
	ctx, span := tracer.Start(ctx, "events.Publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("event.type", string(e.Type)),
			attribute.String("event.id", e.ID),
			attribute.String("event.driver", p.driver),
		),
	)
	defer span.End()

	start := time.Now()
	err := p.next.Publish(ctx, e)
	if p.recorder != nil {
		p.recorder.ObserveEventPublish(string(e.Type), p.driver, time.Since(start), err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}
