package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	idgen "github.com/riskibarqy/champions-tracker/internal/platform/id"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, userID int64) (string, error)
}

// EventEmitter publishes domain events after successful writes.
// Publish failures are logged and never fail the write that caused them.
type EventEmitter struct {
	publisher event.Publisher
	ids       idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewEventEmitter(publisher event.Publisher, ids idgen.Generator, logger *logging.Logger) *EventEmitter {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &EventEmitter{
		publisher: publisher,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

func (e *EventEmitter) emit(ctx context.Context, typ event.Type, key int64, payload any) {
	if e == nil || e.publisher == nil {
		return
	}

	id, err := e.ids.NewID()
	if err != nil {
		e.logger.WarnContext(ctx, "generate event id failed", "event_type", typ, "error", err)
		return
	}

	evt := event.Event{
		ID:         id,
		Type:       typ,
		Key:        strconv.FormatInt(key, 10),
		OccurredAt: e.now().UTC(),
		Payload:    payload,
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.WarnContext(ctx, "publish event failed", "event_type", typ, "event_id", id, "error", err)
	}
}
