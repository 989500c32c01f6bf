package tracing

import (
	"net/http"
	"time"

	"mercator-hq/callisto/pkg/config"
)

// Span is a live trace span owned by a Driver. A span is mutated by exactly
// one request's flow of control for its entire lifetime. FinishSpan is
// terminal: no method may be called after it.
type Span interface {
	// SetTag records a string tag on the span.
	SetTag(key, value string)

	// Log appends a timestamped named event to the span.
	Log(timestamp time.Time, event string)

	// FinishSpan completes the span and hands it to the backend for
	// transmission.
	FinishSpan()
}

// Driver creates spans for a tracing backend. A nil span return means the
// driver declined to create one (backend unavailable, tracing shut down);
// callers treat that as a valid untraced outcome, not an error.
//
// The header map is borrowed for the duration of the call: the driver may
// inject propagation context into it but must not retain it.
type Driver interface {
	StartSpan(cfg *config.TracingConfig, headers http.Header, name string, startTime time.Time, decision Decision) Span
}

// HostInfo describes a selected upstream host.
type HostInfo struct {
	// Address is the resolved host address.
	Address string

	// Cluster is the name of the cluster that owns the host.
	Cluster string
}

// StreamInfo is a read-only view of the facts accumulated over one request
// stream. All accessors are synchronous reads of in-memory state. Accessors
// returning (value, bool) report absence with false.
type StreamInfo interface {
	// StartTime is when the request was received.
	StartTime() time.Time

	// BytesReceived is the total bytes received from the downstream client.
	BytesReceived() uint64

	// BytesSent is the total bytes sent to the downstream client.
	BytesSent() uint64

	// ResponseCode is the final response status, absent when the stream
	// ended before any response was recorded.
	ResponseCode() (int, bool)

	// Protocol is the textual HTTP protocol version (e.g., "HTTP/1.1").
	Protocol() string

	// UpstreamHost is the selected upstream host, absent when no host was
	// chosen.
	UpstreamHost() (HostInfo, bool)

	// HealthCheck reports whether the request was flagged as a health check.
	HealthCheck() bool

	// ResponseFlags is a short encoded summary of abnormal termination and
	// response conditions, "-" when none.
	ResponseFlags() string

	// Byte-transfer milestones as offsets from StartTime.
	LastDownstreamRxByteReceived() (time.Duration, bool)
	FirstUpstreamTxByteSent() (time.Duration, bool)
	LastUpstreamTxByteSent() (time.Duration, bool)
	FirstUpstreamRxByteReceived() (time.Duration, bool)
	LastUpstreamRxByteReceived() (time.Duration, bool)
	FirstDownstreamTxByteSent() (time.Duration, bool)
	LastDownstreamTxByteSent() (time.Duration, bool)
}

// RequestHeaders is a read-only view of the request line and headers.
// Accessors returning (value, bool) report absence with false.
type RequestHeaders interface {
	// RequestID is the x-request-id header value.
	RequestID() (string, bool)

	// Path is the request path as received.
	Path() string

	// OriginalPath is the path before any proxy rewrite.
	OriginalPath() (string, bool)

	// ForwardedProto is the x-forwarded-proto header value.
	ForwardedProto() (string, bool)

	// Host is the request authority.
	Host() (string, bool)

	// Method is the HTTP method.
	Method() string

	// DownstreamCluster is the cluster name advertised by the calling proxy.
	DownstreamCluster() (string, bool)

	// UserAgent is the user-agent header value.
	UserAgent() (string, bool)

	// ClientTraceID is the x-client-trace-id header value.
	ClientTraceID() (string, bool)

	// Get returns the value of an arbitrary header by lowercase name.
	Get(name string) (string, bool)
}
