package events

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/platform/resilience"
	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers        []string
	Topic          string
	WriteTimeout   time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to one topic keyed by aggregate id, so events
// of the same aggregate land on the same partition.
type KafkaPublisher struct {
	writer  messageWriter
	breaker *resilience.CircuitBreaker
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, crerr.New("kafka brokers are required")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, crerr.New("kafka topic is required")
	}

	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  strings.TrimSpace(cfg.Topic),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		ReadTimeout:            timeout,
		WriteTimeout:           timeout,
		AllowAutoTopicCreation: true,
	}

	return newKafkaPublisher(writer, cfg.CircuitBreaker), nil
}

func newKafkaPublisher(writer messageWriter, breakerCfg resilience.CircuitBreakerConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  writer,
		breaker: resilience.NewNamedCircuitBreaker("kafka", breakerCfg),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e event.Event) error {
	payload, err := Encode(e)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(e.Key),
		Value: payload,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
			{Key: "event_id", Value: []byte(e.ID)},
		},
	}

	err = p.breaker.Do(ctx, func(ctx context.Context) error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return crerr.Wrapf(err, "write kafka message type=%s", e.Type)
	}

	return nil
}

func (p *KafkaPublisher) Breaker() *resilience.CircuitBreaker {
	return p.breaker
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
