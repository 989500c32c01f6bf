package metrics

import (
	"testing"
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	return NewCollector(&config.MetricsConfig{Enabled: true}, prometheus.NewRegistry())
}

// TestRecordDecision tests decision counting by reason and outcome
func TestRecordDecision(t *testing.T) {
	c := newTestCollector(t)

	c.RecordDecision("sampling", true)
	c.RecordDecision("sampling", true)
	c.RecordDecision("health_check", false)

	if got := testutil.ToFloat64(c.decisionsTotal.WithLabelValues("sampling", "true")); got != 2 {
		t.Errorf("sampling/true = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.decisionsTotal.WithLabelValues("health_check", "false")); got != 1 {
		t.Errorf("health_check/false = %v, want 1", got)
	}
}

// TestRecordSpans tests span lifecycle counters
func TestRecordSpans(t *testing.T) {
	c := newTestCollector(t)

	c.RecordSpanStarted()
	c.RecordSpanStarted()
	c.RecordSpanFinished()

	if got := testutil.ToFloat64(c.spansStarted); got != 2 {
		t.Errorf("spans started = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.spansFinished); got != 1 {
		t.Errorf("spans finished = %v, want 1", got)
	}
}

// TestRecordRequest tests status class labeling
func TestRecordRequest(t *testing.T) {
	c := newTestCollector(t)

	c.RecordRequest(200, 10*time.Millisecond)
	c.RecordRequest(204, 10*time.Millisecond)
	c.RecordRequest(503, 20*time.Millisecond)
	c.RecordRequest(0, 5*time.Millisecond)

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("2xx")); got != 2 {
		t.Errorf("2xx = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("5xx")); got != 1 {
		t.Errorf("5xx = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("0xx")); got != 1 {
		t.Errorf("0xx = %v, want 1", got)
	}
}

// TestStatusClass tests the status class mapping
func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "0xx"},
		{101, "1xx"},
		{200, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
		{700, "unknown"},
		{-1, "unknown"},
	}

	for _, tt := range tests {
		if got := statusClass(tt.code); got != tt.want {
			t.Errorf("statusClass(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
