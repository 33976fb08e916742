package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	idgen "github.com/riskibarqy/champions-tracker/internal/platform/id"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEventEmitter_BuildsEnvelope(t *testing.T) {
	publisher := &recordingPublisher{}
	emitter := NewEventEmitter(publisher, &idgen.SequenceGenerator{Prefix: "evt-"}, logging.NewNop())
	emitter.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("WIB", 7*3600)) }

	emitter.emit(t.Context(), event.TypeGuessPlaced, 42, map[string]any{"guess_id": 42})

	if len(publisher.events) != 1 {
		t.Fatalf("expected one event, got %d", len(publisher.events))
	}
	got := publisher.events[0]
	if got.ID != "evt-1" || got.Key != "42" || got.Type != event.TypeGuessPlaced {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.OccurredAt.Location() != time.UTC || got.OccurredAt.Hour() != 2 {
		t.Fatalf("expected UTC timestamp, got %s", got.OccurredAt)
	}
}

func TestEventEmitter_PublishFailureIsOnlyLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	publisher := &recordingPublisher{err: errors.New("broker down")}
	emitter := NewEventEmitter(publisher, nil, logging.FromZap(zap.New(core)))

	env := newTestEnv(t)
	env.users.events = emitter

	if _, err := env.users.Register(t.Context(), RegisterUserInput{
		Email:    "quiet@example.com",
		Password: "password123",
		Name:     "Quiet",
		Nickname: "quiet",
	}); err != nil {
		t.Fatalf("register must succeed when publishing fails: %v", err)
	}

	entries := logs.FilterMessage("publish event failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
}

func TestEventEmitter_NilIsNoop(t *testing.T) {
	var emitter *EventEmitter
	emitter.emit(t.Context(), event.TypeUserRegistered, 1, nil)
}
