package tracing

import "testing"

// TestIsTracing tests the decision precedence and the status mapping
func TestIsTracing(t *testing.T) {
	tests := []struct {
		name        string
		healthCheck bool
		requestID   *string
		want        Decision
	}{
		{
			name:        "health check excluded",
			healthCheck: true,
			requestID:   strPtr("01234567-89ab-adef-0123-456789abcdef"),
			want:        Decision{Reason: ReasonHealthCheck, Traced: false},
		},
		{
			name:        "health check excluded even with forced id",
			healthCheck: true,
			requestID:   strPtr("01234567-89ab-bdef-0123-456789abcdef"),
			want:        Decision{Reason: ReasonHealthCheck, Traced: false},
		},
		{
			name:      "no request id",
			requestID: nil,
			want:      Decision{Reason: ReasonNotTraceableRequestID, Traced: false},
		},
		{
			name:      "client forced",
			requestID: strPtr("01234567-89ab-9def-0123-456789abcdef"),
			want:      Decision{Reason: ReasonClientForced, Traced: true},
		},
		{
			name:      "service forced",
			requestID: strPtr("01234567-89ab-bdef-0123-456789abcdef"),
			want:      Decision{Reason: ReasonServiceForced, Traced: true},
		},
		{
			name:      "sampled",
			requestID: strPtr("01234567-89ab-adef-0123-456789abcdef"),
			want:      Decision{Reason: ReasonSampling, Traced: true},
		},
		{
			name:      "untraced uuid",
			requestID: strPtr("01234567-89ab-4def-0123-456789abcdef"),
			want:      Decision{Reason: ReasonNotTraceableRequestID, Traced: false},
		},
		{
			name:      "malformed id",
			requestID: strPtr("not-a-uuid"),
			want:      Decision{Reason: ReasonNotTraceableRequestID, Traced: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &fakeStream{healthCheck: tt.healthCheck}
			req := &fakeRequest{requestID: tt.requestID}

			if got := IsTracing(info, req); got != tt.want {
				t.Errorf("IsTracing() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestReasonString tests the metrics label rendering of reasons
func TestReasonString(t *testing.T) {
	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonHealthCheck, "health_check"},
		{ReasonNotTraceableRequestID, "not_traceable_request_id"},
		{ReasonClientForced, "client_forced"},
		{ReasonServiceForced, "service_forced"},
		{ReasonSampling, "sampling"},
		{Reason(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("Reason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
