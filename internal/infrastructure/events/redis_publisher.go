package events

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/platform/resilience"
)

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	Channel        string
	DialTimeout    time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// RedisPublisher broadcasts events on a pub/sub channel, one sub-channel
// per event type: "<channel>:<type>".
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
	breaker *resilience.CircuitBreaker
}

func NewRedisPublisher(ctx context.Context, cfg RedisConfig) (*RedisPublisher, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, crerr.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        strings.TrimSpace(cfg.Addr),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, crerr.Wrap(err, "ping redis")
	}

	return newRedisPublisher(client, cfg.Channel, cfg.CircuitBreaker), nil
}

func newRedisPublisher(client redis.UniversalClient, channel string, breakerCfg resilience.CircuitBreakerConfig) *RedisPublisher {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = "champions-tracker.events"
	}
	return &RedisPublisher{
		client:  client,
		channel: channel,
		breaker: resilience.NewNamedCircuitBreaker("redis", breakerCfg),
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, e event.Event) error {
	payload, err := Encode(e)
	if err != nil {
		return err
	}

	channel := p.ChannelFor(e.Type)
	err = p.breaker.Do(ctx, func(ctx context.Context) error {
		return p.client.Publish(ctx, channel, payload).Err()
	})
	if err != nil {
		return crerr.Wrapf(err, "publish redis channel=%s", channel)
	}

	return nil
}

func (p *RedisPublisher) ChannelFor(t event.Type) string {
	return p.channel + ":" + string(t)
}

func (p *RedisPublisher) Breaker() *resilience.CircuitBreaker {
	return p.breaker
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
