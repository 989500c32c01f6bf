package tracing

import (
	"net/http"
	"time"

	"mercator-hq/callisto/pkg/config"
)

// recordingSpan captures tags and logs for assertions.
type recordingSpan struct {
	tags     map[string]string
	tagOrder []string
	logs     []spanLog
	finished bool
}

type spanLog struct {
	timestamp time.Time
	event     string
}

func newRecordingSpan() *recordingSpan {
	return &recordingSpan{tags: make(map[string]string)}
}

func (s *recordingSpan) SetTag(key, value string) {
	if _, seen := s.tags[key]; !seen {
		s.tagOrder = append(s.tagOrder, key)
	}
	s.tags[key] = value
}

func (s *recordingSpan) Log(timestamp time.Time, event string) {
	s.logs = append(s.logs, spanLog{timestamp: timestamp, event: event})
}

func (s *recordingSpan) FinishSpan() {
	s.finished = true
}

// recordingDriver hands out recording spans, or declines when decline is set.
type recordingDriver struct {
	decline   bool
	lastName  string
	lastStart time.Time
	span      *recordingSpan
}

func (d *recordingDriver) StartSpan(cfg *config.TracingConfig, headers http.Header, name string, startTime time.Time, decision Decision) Span {
	d.lastName = name
	d.lastStart = startTime
	if d.decline {
		return nil
	}
	d.span = newRecordingSpan()
	return d.span
}

// fakeStream is a StreamInfo with settable fields. Optional values are
// pointers; nil means absent.
type fakeStream struct {
	startTime     time.Time
	bytesReceived uint64
	bytesSent     uint64
	responseCode  *int
	protocol      string
	upstreamHost  *HostInfo
	healthCheck   bool
	responseFlags string

	lastDownstreamRx  *time.Duration
	firstUpstreamTx   *time.Duration
	lastUpstreamTx    *time.Duration
	firstUpstreamRx   *time.Duration
	lastUpstreamRx    *time.Duration
	firstDownstreamTx *time.Duration
	lastDownstreamTx  *time.Duration
}

func (f *fakeStream) StartTime() time.Time  { return f.startTime }
func (f *fakeStream) BytesReceived() uint64 { return f.bytesReceived }
func (f *fakeStream) BytesSent() uint64     { return f.bytesSent }
func (f *fakeStream) Protocol() string      { return f.protocol }
func (f *fakeStream) HealthCheck() bool     { return f.healthCheck }
func (f *fakeStream) ResponseFlags() string { return f.responseFlags }

func (f *fakeStream) ResponseCode() (int, bool) {
	if f.responseCode == nil {
		return 0, false
	}
	return *f.responseCode, true
}

func (f *fakeStream) UpstreamHost() (HostInfo, bool) {
	if f.upstreamHost == nil {
		return HostInfo{}, false
	}
	return *f.upstreamHost, true
}

func optDuration(d *time.Duration) (time.Duration, bool) {
	if d == nil {
		return 0, false
	}
	return *d, true
}

func (f *fakeStream) LastDownstreamRxByteReceived() (time.Duration, bool) {
	return optDuration(f.lastDownstreamRx)
}
func (f *fakeStream) FirstUpstreamTxByteSent() (time.Duration, bool) {
	return optDuration(f.firstUpstreamTx)
}
func (f *fakeStream) LastUpstreamTxByteSent() (time.Duration, bool) {
	return optDuration(f.lastUpstreamTx)
}
func (f *fakeStream) FirstUpstreamRxByteReceived() (time.Duration, bool) {
	return optDuration(f.firstUpstreamRx)
}
func (f *fakeStream) LastUpstreamRxByteReceived() (time.Duration, bool) {
	return optDuration(f.lastUpstreamRx)
}
func (f *fakeStream) FirstDownstreamTxByteSent() (time.Duration, bool) {
	return optDuration(f.firstDownstreamTx)
}
func (f *fakeStream) LastDownstreamTxByteSent() (time.Duration, bool) {
	return optDuration(f.lastDownstreamTx)
}

// fakeRequest is a RequestHeaders with settable fields. Optional values are
// pointers; nil means absent.
type fakeRequest struct {
	requestID         *string
	path              string
	originalPath      *string
	forwardedProto    *string
	host              *string
	method            string
	downstreamCluster *string
	userAgent         *string
	clientTraceID     *string
	extra             map[string]string
}

func optString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func (f *fakeRequest) RequestID() (string, bool)         { return optString(f.requestID) }
func (f *fakeRequest) Path() string                      { return f.path }
func (f *fakeRequest) OriginalPath() (string, bool)      { return optString(f.originalPath) }
func (f *fakeRequest) ForwardedProto() (string, bool)    { return optString(f.forwardedProto) }
func (f *fakeRequest) Host() (string, bool)              { return optString(f.host) }
func (f *fakeRequest) Method() string                    { return f.method }
func (f *fakeRequest) DownstreamCluster() (string, bool) { return optString(f.downstreamCluster) }
func (f *fakeRequest) UserAgent() (string, bool)         { return optString(f.userAgent) }
func (f *fakeRequest) ClientTraceID() (string, bool)     { return optString(f.clientTraceID) }

func (f *fakeRequest) Get(name string) (string, bool) {
	v, ok := f.extra[name]
	return v, ok
}

func strPtr(s string) *string               { return &s }
func intPtr(i int) *int                     { return &i }
func durPtr(d time.Duration) *time.Duration { return &d }
