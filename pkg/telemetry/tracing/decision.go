package tracing

import "mercator-hq/callisto/pkg/requestid"

// Reason explains why a request was or was not selected for tracing.
type Reason int

const (
	// ReasonHealthCheck excludes health check requests unconditionally.
	ReasonHealthCheck Reason = iota
	// ReasonNotTraceableRequestID covers requests with no request id or an
	// id that does not carry a traceable status.
	ReasonNotTraceableRequestID
	// ReasonClientForced traces because the client requested it.
	ReasonClientForced
	// ReasonServiceForced traces because service configuration forced it.
	ReasonServiceForced
	// ReasonSampling traces because the request was sampled.
	ReasonSampling
)

// String returns the reason name for logs and metrics labels.
func (r Reason) String() string {
	switch r {
	case ReasonHealthCheck:
		return "health_check"
	case ReasonNotTraceableRequestID:
		return "not_traceable_request_id"
	case ReasonClientForced:
		return "client_forced"
	case ReasonServiceForced:
		return "service_forced"
	case ReasonSampling:
		return "sampling"
	default:
		return "unknown"
	}
}

// Decision is the tracing disposition for one request. It is produced once
// by IsTracing and never mutated.
type Decision struct {
	Reason Reason
	Traced bool
}

// IsTracing decides whether a request should be traced. It is a pure
// function of the stream's health-check flag and the trace status embedded
// in the request id, evaluated in strict precedence order: health checks
// are excluded first, then requests with no request id, then the id's
// embedded status is classified.
func IsTracing(info StreamInfo, headers RequestHeaders) Decision {
	// Exclude health check requests immediately.
	if info.HealthCheck() {
		return Decision{Reason: ReasonHealthCheck, Traced: false}
	}

	id, ok := headers.RequestID()
	if !ok {
		return Decision{Reason: ReasonNotTraceableRequestID, Traced: false}
	}

	switch requestid.StatusOf(id) {
	case requestid.Client:
		return Decision{Reason: ReasonClientForced, Traced: true}
	case requestid.Forced:
		return Decision{Reason: ReasonServiceForced, Traced: true}
	case requestid.Sampled:
		return Decision{Reason: ReasonSampling, Traced: true}
	default:
		return Decision{Reason: ReasonNotTraceableRequestID, Traced: false}
	}
}
