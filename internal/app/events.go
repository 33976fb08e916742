package app

import (
	"context"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/config"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/events"
	"github.com/riskibarqy/champions-tracker/internal/observability"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	"github.com/riskibarqy/champions-tracker/internal/platform/resilience"
)

// buildPublisher assembles driver -> instrumentation -> async worker pool.
// The returned close func drains queued events before closing the driver.
func buildPublisher(ctx context.Context, cfg config.Config, metrics *observability.Metrics, logger *logging.Logger) (event.Publisher, func(context.Context) error, error) {
	noClose := func(context.Context) error { return nil }

	breakerCfg := resilience.CircuitBreakerConfig{
		Enabled:          cfg.EventsCircuitEnabled,
		FailureThreshold: cfg.EventsCircuitFailureCount,
		OpenTimeout:      cfg.EventsCircuitOpenTimeout,
	}

	var (
		driver      event.Publisher
		closeDriver = func() error { return nil }
		breaker     *resilience.CircuitBreaker
	)
	switch cfg.EventsDriver {
	case config.EventsNone:
		return events.NoopPublisher{}, noClose, nil
	case config.EventsKafka:
		p, err := events.NewKafkaPublisher(events.KafkaConfig{
			Brokers:        cfg.KafkaBrokers,
			Topic:          cfg.KafkaTopic,
			WriteTimeout:   cfg.EventsPublishTimeout,
			CircuitBreaker: breakerCfg,
		})
		if err != nil {
			return nil, nil, err
		}
		driver, closeDriver, breaker = p, p.Close, p.Breaker()
	case config.EventsRedis:
		p, err := events.NewRedisPublisher(ctx, events.RedisConfig{
			Addr:           cfg.RedisAddr,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			Channel:        cfg.RedisChannel,
			DialTimeout:    5 * time.Second,
			CircuitBreaker: breakerCfg,
		})
		if err != nil {
			return nil, nil, err
		}
		driver, closeDriver, breaker = p, p.Close, p.Breaker()
	case config.EventsWebhook:
		p, err := events.NewWebhookPublisher(events.WebhookConfig{
			URL:            cfg.WebhookURL,
			Token:          cfg.WebhookToken,
			Timeout:        cfg.EventsPublishTimeout,
			CircuitBreaker: breakerCfg,
		})
		if err != nil {
			return nil, nil, err
		}
		driver, closeDriver, breaker = p, p.Close, p.Breaker()
	default:
		driver = events.NewLogPublisher(logger)
	}

	if breaker != nil && metrics != nil {
		breaker.OnStateChange(metrics.ObserveCircuitState)
	}

	var recorder events.Recorder
	if metrics != nil {
		recorder = metrics
	}
	async, err := events.NewAsyncPublisher(
		events.NewInstrumentedPublisher(driver, cfg.EventsDriver, recorder),
		cfg.EventsWorkers,
		cfg.EventsPublishTimeout,
		logger,
	)
	if err != nil {
		_ = closeDriver()
		return nil, nil, err
	}

	closeFn := func(ctx context.Context) error {
		drainErr := async.Close(ctx)
		if err := closeDriver(); err != nil {
			return err
		}
		return drainErr
	}

	return async, closeFn, nil
}
