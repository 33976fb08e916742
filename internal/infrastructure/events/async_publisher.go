package events

import (
	"context"
	"errors"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

// queuedPerWorker bounds how many Publish calls may wait for a free worker.
const queuedPerWorker = 64

var ErrPublisherClosed = errors.New("event publisher is closed")

// AsyncPublisher hands events to a bounded worker pool. When every worker is
// busy Publish waits for one to free up; it fails only once the wait queue
// is full or the publisher is closed. Delivery errors are logged.
type AsyncPublisher struct {
	next    event.Publisher
	pool    *ants.Pool
	timeout time.Duration
	logger  *logging.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewAsyncPublisher(next event.Publisher, workers int, timeout time.Duration, logger *logging.Logger) (*AsyncPublisher, error) {
	if workers < 1 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	pool, err := ants.NewPool(workers, ants.WithMaxBlockingTasks(workers*queuedPerWorker))
	if err != nil {
		return nil, crerr.Wrap(err, "create event worker pool")
	}

	return &AsyncPublisher{
		next:    next,
		pool:    pool,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (p *AsyncPublisher) Publish(ctx context.Context, e event.Event) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return crerr.Wrapf(ErrPublisherClosed, "queue event type=%s", e.Type)
	}
	p.wg.Add(1)
	p.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	err := p.pool.Submit(func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(detached, p.timeout)
		defer cancel()

		if err := p.next.Publish(ctx, e); err != nil {
			p.logger.WarnContext(ctx, "async event publish failed",
				"event_id", e.ID,
				"event_type", string(e.Type),
				"error", err,
			)
		}
	})
	if err != nil {
		p.wg.Done()
		return crerr.Wrapf(err, "queue event type=%s", e.Type)
	}

	return nil
}

// Close stops accepting events, waits for queued ones up to ctx's deadline
// and releases the pool.
func (p *AsyncPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	defer p.pool.Release()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return crerr.Wrap(ctx.Err(), "drain event publisher")
	}
}
