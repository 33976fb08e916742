package events

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrWebhookTransient = crerr.New("webhook transient failure")

type WebhookConfig struct {
	URL            string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookPublisher POSTs each event as JSON to a single endpoint.
// Only network errors, 429 and 5xx responses count against the breaker.
type WebhookPublisher struct {
	client  *http.Client
	url     string
	token   string
	breaker *resilience.CircuitBreaker
}

func NewWebhookPublisher(cfg WebhookConfig) (*WebhookPublisher, error) {
	target, err := validateHTTPURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid EVENTS_WEBHOOK_URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebhookPublisher{
		client:  &http.Client{Timeout: timeout},
		url:     target,
		token:   strings.TrimSpace(cfg.Token),
		breaker: resilience.NewNamedCircuitBreaker("webhook", cfg.CircuitBreaker),
	}, nil
}

func (p *WebhookPublisher) Publish(ctx context.Context, e event.Event) error {
	if err := p.breaker.Allow(); err != nil {
		return crerr.Wrapf(err, "webhook is temporarily unavailable type=%s", e.Type)
	}

	err := p.post(ctx, e)
	switch {
	case err == nil:
		p.breaker.RecordSuccess()
	case crerr.Is(err, ErrWebhookTransient):
		p.breaker.RecordFailure()
	default:
		p.breaker.RecordSuccess()
	}
	return err
}

func (p *WebhookPublisher) post(ctx context.Context, e event.Event) error {
	body, err := Encode(e)
	if err != nil {
		return err
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.url", p.url),
			attribute.String("event.type", string(e.Type)),
			attribute.String("event.id", e.ID),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", string(e.Type))
	req.Header.Set("X-Event-Id", e.ID)
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: post event type=%s: %v", ErrWebhookTransient, e.Type, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 == 2 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(raw))
	if isRetryableStatus(resp.StatusCode) {
		return fmt.Errorf("%w: post event type=%s status=%d body=%s", ErrWebhookTransient, e.Type, resp.StatusCode, detail)
	}
	return crerr.Newf("post event type=%s status=%d body=%s", e.Type, resp.StatusCode, detail)
}

func (p *WebhookPublisher) Breaker() *resilience.CircuitBreaker {
	return p.breaker
}

func (p *WebhookPublisher) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}
