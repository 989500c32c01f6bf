package tracing

import (
	"net/http"
	"testing"
	"time"

	"mercator-hq/callisto/pkg/config"
)

// TestStartSpanNaming tests ingress and egress span names
func TestStartSpanNaming(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		host      *string
		wantName  string
	}{
		{
			name:      "ingress",
			operation: OperationIngress,
			host:      strPtr("api.example.com"),
			wantName:  "ingress",
		},
		{
			name:      "egress appends host",
			operation: OperationEgress,
			host:      strPtr("api.example.com"),
			wantName:  "egress api.example.com",
		},
		{
			name:      "egress without host",
			operation: OperationEgress,
			host:      nil,
			wantName:  "egress ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := &recordingDriver{}
			tracer := NewTracer(driver, config.NodeConfig{ID: "node-1", Zone: "us-east-1a"})
			cfg := &config.TracingConfig{OperationName: tt.operation}
			info := &fakeStream{startTime: time.Now()}
			req := &fakeRequest{host: tt.host}

			span := tracer.StartSpan(cfg, http.Header{}, req, info, Decision{Reason: ReasonSampling, Traced: true})

			if span == nil {
				t.Fatal("StartSpan returned nil")
			}
			if driver.lastName != tt.wantName {
				t.Errorf("span name = %q, want %q", driver.lastName, tt.wantName)
			}
		})
	}
}

// TestStartSpanIdentityTags tests the identity tags stamped at creation
func TestStartSpanIdentityTags(t *testing.T) {
	driver := &recordingDriver{}
	tracer := NewTracer(driver, config.NodeConfig{ID: "proxy-7", Zone: "eu-west-1b"})
	cfg := &config.TracingConfig{OperationName: OperationIngress}
	info := &fakeStream{startTime: time.Now()}

	tracer.StartSpan(cfg, http.Header{}, &fakeRequest{}, info, Decision{Reason: ReasonSampling, Traced: true})

	want := map[string]string{
		TagComponent: "proxy",
		TagNodeID:    "proxy-7",
		TagZone:      "eu-west-1b",
	}
	for key, value := range want {
		if got := driver.span.tags[key]; got != value {
			t.Errorf("tag %q = %q, want %q", key, got, value)
		}
	}
}

// TestStartSpanStartTime tests the stream start time is handed to the driver
func TestStartSpanStartTime(t *testing.T) {
	driver := &recordingDriver{}
	tracer := NewTracer(driver, config.NodeConfig{})
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	info := &fakeStream{startTime: start}

	tracer.StartSpan(&config.TracingConfig{OperationName: OperationIngress}, http.Header{}, &fakeRequest{}, info, Decision{Traced: true})

	if !driver.lastStart.Equal(start) {
		t.Errorf("start time = %v, want %v", driver.lastStart, start)
	}
}

// TestStartSpanDriverDeclines tests a nil driver span is a valid outcome
func TestStartSpanDriverDeclines(t *testing.T) {
	driver := &recordingDriver{decline: true}
	tracer := NewTracer(driver, config.NodeConfig{ID: "node-1"})
	info := &fakeStream{startTime: time.Now()}

	span := tracer.StartSpan(&config.TracingConfig{OperationName: OperationIngress}, http.Header{}, &fakeRequest{}, info, Decision{Traced: true})

	if span != nil {
		t.Errorf("StartSpan = %v, want nil when driver declines", span)
	}
}
