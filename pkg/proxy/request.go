package proxy

import (
	"net/http"
	"strings"
)

// Well-known header names read by the proxy.
const (
	// HeaderRequestID carries the traceable request id.
	HeaderRequestID = "x-request-id"

	// HeaderClientTraceID joins a client-provided trace id with the
	// request id on emitted spans.
	HeaderClientTraceID = "x-client-trace-id"

	// HeaderForwardedProto is the originating scheme of the request.
	HeaderForwardedProto = "x-forwarded-proto"

	// HeaderOriginalPath preserves the request path before a rewrite.
	HeaderOriginalPath = "x-callisto-original-path"

	// HeaderDownstreamCluster names the cluster of the calling proxy.
	HeaderDownstreamCluster = "x-callisto-downstream-service-cluster"
)

// RequestView is a read-only view of a request's line and headers.
// It implements tracing.RequestHeaders. The view borrows the request; it
// must not outlive the request's handler.
type RequestView struct {
	r *http.Request
}

// NewRequestView wraps r.
func NewRequestView(r *http.Request) *RequestView {
	return &RequestView{r: r}
}

func (v *RequestView) header(name string) (string, bool) {
	values := v.r.Header.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// RequestID returns the x-request-id header value.
func (v *RequestView) RequestID() (string, bool) {
	return v.header(HeaderRequestID)
}

// Path returns the request path including any query string.
func (v *RequestView) Path() string {
	return v.r.URL.RequestURI()
}

// OriginalPath returns the pre-rewrite path when the proxy recorded one.
func (v *RequestView) OriginalPath() (string, bool) {
	return v.header(HeaderOriginalPath)
}

// ForwardedProto returns the x-forwarded-proto header value.
func (v *RequestView) ForwardedProto() (string, bool) {
	return v.header(HeaderForwardedProto)
}

// Host returns the request authority.
func (v *RequestView) Host() (string, bool) {
	if v.r.Host == "" {
		return "", false
	}
	return v.r.Host, true
}

// Method returns the HTTP method.
func (v *RequestView) Method() string {
	return v.r.Method
}

// DownstreamCluster returns the calling proxy's cluster name header.
func (v *RequestView) DownstreamCluster() (string, bool) {
	return v.header(HeaderDownstreamCluster)
}

// UserAgent returns the user-agent header value.
func (v *RequestView) UserAgent() (string, bool) {
	return v.header("user-agent")
}

// ClientTraceID returns the x-client-trace-id header value.
func (v *RequestView) ClientTraceID() (string, bool) {
	return v.header(HeaderClientTraceID)
}

// Get returns the value of an arbitrary header by lowercase name.
func (v *RequestView) Get(name string) (string, bool) {
	return v.header(strings.ToLower(name))
}
