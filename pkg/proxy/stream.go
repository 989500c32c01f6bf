package proxy

import (
	"time"

	"mercator-hq/callisto/pkg/telemetry/tracing"
)

// Stream accumulates the facts of one proxied request: byte counts, the
// response code, the selected upstream host, response flags, and
// byte-transfer milestones. It implements tracing.StreamInfo.
//
// A Stream is owned by the single flow of control handling its request;
// it is not safe for concurrent use.
type Stream struct {
	startTime     time.Time
	protocol      string
	healthCheck   bool
	bytesReceived uint64
	bytesSent     uint64
	responseCode  *int
	upstreamHost  *tracing.HostInfo
	flags         Flags

	lastDownstreamRx  *time.Duration
	firstUpstreamTx   *time.Duration
	lastUpstreamTx    *time.Duration
	firstUpstreamRx   *time.Duration
	lastUpstreamRx    *time.Duration
	firstDownstreamTx *time.Duration
	lastDownstreamTx  *time.Duration
}

// NewStream creates a Stream for a request received at startTime over the
// given protocol version (e.g., "HTTP/1.1").
func NewStream(startTime time.Time, protocol string) *Stream {
	return &Stream{
		startTime: startTime,
		protocol:  protocol,
	}
}

// SetHealthCheck flags the request as a health check.
func (s *Stream) SetHealthCheck(v bool) { s.healthCheck = v }

// SetResponseCode records the final response status.
func (s *Stream) SetResponseCode(code int) { s.responseCode = &code }

// SetUpstreamHost records the selected upstream host.
func (s *Stream) SetUpstreamHost(host tracing.HostInfo) { s.upstreamHost = &host }

// AddFlags merges response flags into the stream.
func (s *Stream) AddFlags(f Flags) { s.flags |= f }

// AddBytesReceived adds to the downstream receive byte count and advances
// the last-downstream-rx milestone.
func (s *Stream) AddBytesReceived(n uint64) {
	s.bytesReceived += n
	s.lastDownstreamRx = s.offset()
}

// AddBytesSent adds to the downstream send byte count and advances the
// downstream-tx milestones.
func (s *Stream) AddBytesSent(n uint64) {
	s.bytesSent += n
	now := s.offset()
	if s.firstDownstreamTx == nil {
		s.firstDownstreamTx = now
	}
	s.lastDownstreamTx = now
}

// MarkUpstreamTxStart records the first byte sent upstream.
func (s *Stream) MarkUpstreamTxStart() {
	if s.firstUpstreamTx == nil {
		s.firstUpstreamTx = s.offset()
	}
}

// MarkUpstreamTxEnd records the last byte sent upstream.
func (s *Stream) MarkUpstreamTxEnd() { s.lastUpstreamTx = s.offset() }

// MarkUpstreamRxStart records the first byte received from upstream.
func (s *Stream) MarkUpstreamRxStart() {
	if s.firstUpstreamRx == nil {
		s.firstUpstreamRx = s.offset()
	}
}

// MarkUpstreamRxEnd records the last byte received from upstream.
func (s *Stream) MarkUpstreamRxEnd() { s.lastUpstreamRx = s.offset() }

func (s *Stream) offset() *time.Duration {
	d := time.Since(s.startTime)
	return &d
}

// StartTime implements tracing.StreamInfo.
func (s *Stream) StartTime() time.Time { return s.startTime }

// BytesReceived implements tracing.StreamInfo.
func (s *Stream) BytesReceived() uint64 { return s.bytesReceived }

// BytesSent implements tracing.StreamInfo.
func (s *Stream) BytesSent() uint64 { return s.bytesSent }

// Protocol implements tracing.StreamInfo.
func (s *Stream) Protocol() string { return s.protocol }

// HealthCheck implements tracing.StreamInfo.
func (s *Stream) HealthCheck() bool { return s.healthCheck }

// ResponseCode implements tracing.StreamInfo.
func (s *Stream) ResponseCode() (int, bool) {
	if s.responseCode == nil {
		return 0, false
	}
	return *s.responseCode, true
}

// UpstreamHost implements tracing.StreamInfo.
func (s *Stream) UpstreamHost() (tracing.HostInfo, bool) {
	if s.upstreamHost == nil {
		return tracing.HostInfo{}, false
	}
	return *s.upstreamHost, true
}

// ResponseFlags implements tracing.StreamInfo.
func (s *Stream) ResponseFlags() string { return s.flags.ShortString() }

func opt(d *time.Duration) (time.Duration, bool) {
	if d == nil {
		return 0, false
	}
	return *d, true
}

// LastDownstreamRxByteReceived implements tracing.StreamInfo.
func (s *Stream) LastDownstreamRxByteReceived() (time.Duration, bool) { return opt(s.lastDownstreamRx) }

// FirstUpstreamTxByteSent implements tracing.StreamInfo.
func (s *Stream) FirstUpstreamTxByteSent() (time.Duration, bool) { return opt(s.firstUpstreamTx) }

// LastUpstreamTxByteSent implements tracing.StreamInfo.
func (s *Stream) LastUpstreamTxByteSent() (time.Duration, bool) { return opt(s.lastUpstreamTx) }

// FirstUpstreamRxByteReceived implements tracing.StreamInfo.
func (s *Stream) FirstUpstreamRxByteReceived() (time.Duration, bool) { return opt(s.firstUpstreamRx) }

// LastUpstreamRxByteReceived implements tracing.StreamInfo.
func (s *Stream) LastUpstreamRxByteReceived() (time.Duration, bool) { return opt(s.lastUpstreamRx) }

// FirstDownstreamTxByteSent implements tracing.StreamInfo.
func (s *Stream) FirstDownstreamTxByteSent() (time.Duration, bool) { return opt(s.firstDownstreamTx) }

// LastDownstreamTxByteSent implements tracing.StreamInfo.
func (s *Stream) LastDownstreamTxByteSent() (time.Duration, bool) { return opt(s.lastDownstreamTx) }
