package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/champions-tracker/internal/platform/resilience"
)

func TestMetrics_Settlement(t *testing.T) {
	m := NewMetrics()

	m.ObserveSettlement(3, 400)
	m.ObserveSettlement(0, 0)

	if got := testutil.ToFloat64(m.settlements); got != 2 {
		t.Fatalf("unexpected settlements count: %v", got)
	}
	if got := testutil.ToFloat64(m.guessesSettled); got != 3 {
		t.Fatalf("unexpected guesses settled: %v", got)
	}
	if got := testutil.ToFloat64(m.payoutTotal); got != 400 {
		t.Fatalf("unexpected payout total: %v", got)
	}
}

func TestMetrics_RequestsAndEvents(t *testing.T) {
	m := NewMetrics()

	m.RequestStarted()
	m.ObserveRequest(http.MethodPost, "POST /v1/guesses", http.StatusCreated, 15*time.Millisecond)
	m.ObserveEventPublish("guess.placed", "kafka", time.Millisecond, nil)
	m.ObserveEventPublish("guess.placed", "kafka", time.Millisecond, errors.New("broker down"))

	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "POST /v1/guesses", "201")); got != 1 {
		t.Fatalf("unexpected request count: %v", got)
	}
	if got := testutil.ToFloat64(m.requestsInFlight); got != 0 {
		t.Fatalf("unexpected in flight gauge: %v", got)
	}
	if got := testutil.ToFloat64(m.eventsPublished.WithLabelValues("guess.placed", "kafka", "error")); got != 1 {
		t.Fatalf("unexpected failed publish count: %v", got)
	}
}

func TestMetrics_CacheAndCircuit(t *testing.T) {
	m := NewMetrics()

	m.ObserveCacheLookup("team", true)
	m.ObserveCacheLookup("team", false)
	m.ObserveCacheLookup("team", true)
	m.ObserveCircuitState("events-kafka", resilience.CircuitStateClosed, resilience.CircuitStateOpen)

	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("team", "hit")); got != 2 {
		t.Fatalf("unexpected cache hits: %v", got)
	}
	if got := testutil.ToFloat64(m.circuitState.WithLabelValues("events-kafka")); got != 2 {
		t.Fatalf("unexpected circuit state: %v", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveSettlement(1, 20)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "champions_tracker_settlement_matches_total 1") {
		t.Fatalf("expected settlement counter in exposition:\n%s", body)
	}
}
