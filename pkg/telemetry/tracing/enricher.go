package tracing

import (
	"fmt"
	"strconv"

	"mercator-hq/callisto/pkg/config"
)

// maxPathLength bounds the path component of the http.url tag. Longer paths
// are cut at this byte length with no truncation marker.
const maxPathLength = 128

func buildResponseCode(info StreamInfo) string {
	if code, ok := info.ResponseCode(); ok {
		return strconv.Itoa(code)
	}
	return "0"
}

func valueOrDefault(value string, present bool, def string) string {
	if present {
		return value
	}
	return def
}

func buildURL(req RequestHeaders) string {
	path := req.Path()
	if original, ok := req.OriginalPath(); ok {
		path = original
	}
	if len(path) > maxPathLength {
		path = path[:maxPathLength]
	}

	proto, _ := req.ForwardedProto()
	host, _ := req.Host()
	return fmt.Sprintf("%s://%s%s", proto, host, path)
}

func is5xx(code int) bool {
	return code >= 500 && code < 600
}

// annotateVerbose appends one timestamped log per recorded byte-transfer
// milestone. Milestones with no recorded offset are omitted. The order is
// fixed regardless of which subset is present.
func annotateVerbose(span Span, info StreamInfo) {
	startTime := info.StartTime()
	if offset, ok := info.LastDownstreamRxByteReceived(); ok {
		span.Log(startTime.Add(offset), LogLastDownstreamRxByteReceived)
	}
	if offset, ok := info.FirstUpstreamTxByteSent(); ok {
		span.Log(startTime.Add(offset), LogFirstUpstreamTxByteSent)
	}
	if offset, ok := info.LastUpstreamTxByteSent(); ok {
		span.Log(startTime.Add(offset), LogLastUpstreamTxByteSent)
	}
	if offset, ok := info.FirstUpstreamRxByteReceived(); ok {
		span.Log(startTime.Add(offset), LogFirstUpstreamRxByteReceived)
	}
	if offset, ok := info.LastUpstreamRxByteReceived(); ok {
		span.Log(startTime.Add(offset), LogLastUpstreamRxByteReceived)
	}
	if offset, ok := info.FirstDownstreamTxByteSent(); ok {
		span.Log(startTime.Add(offset), LogFirstDownstreamTxByteSent)
	}
	if offset, ok := info.LastDownstreamTxByteSent(); ok {
		span.Log(startTime.Add(offset), LogLastDownstreamTxByteSent)
	}
}

// FinalizeSpan writes the canonical tag set onto span from the request and
// stream metadata, then finishes the span. It must be called exactly once
// per started span, after the response (or failure) is known.
//
// req may be nil when the request headers were unavailable; the
// request-derived tags are skipped in that case. Absent metadata is handled
// per field by default substitution or omission, never by error.
func FinalizeSpan(span Span, req RequestHeaders, info StreamInfo, cfg *config.TracingConfig) {
	// Pre response data.
	if req != nil {
		if id, ok := req.RequestID(); ok {
			span.SetTag(TagGuidXRequestID, id)
		}
		span.SetTag(TagHTTPURL, buildURL(req))
		span.SetTag(TagHTTPMethod, req.Method())

		cluster, ok := req.DownstreamCluster()
		span.SetTag(TagDownstreamCluster, valueOrDefault(cluster, ok, "-"))

		agent, ok := req.UserAgent()
		span.SetTag(TagUserAgent, valueOrDefault(agent, ok, "-"))

		span.SetTag(TagHTTPProtocol, info.Protocol())

		if id, ok := req.ClientTraceID(); ok {
			span.SetTag(TagGuidXClientTrace, id)
		}

		// Build tags based on the custom headers.
		for _, header := range cfg.RequestHeadersForTags {
			if value, ok := req.Get(header); ok {
				span.SetTag(header, value)
			}
		}
	}
	span.SetTag(TagRequestSize, strconv.FormatUint(info.BytesReceived(), 10))

	if host, ok := info.UpstreamHost(); ok {
		span.SetTag(TagUpstreamCluster, host.Cluster)
	}

	// Post response data.
	span.SetTag(TagHTTPStatusCode, buildResponseCode(info))
	span.SetTag(TagResponseSize, strconv.FormatUint(info.BytesSent(), 10))
	span.SetTag(TagResponseFlags, info.ResponseFlags())

	if cfg.Verbose {
		annotateVerbose(span, info)
	}

	if code, ok := info.ResponseCode(); !ok || is5xx(code) {
		span.SetTag(TagError, TagValueTrue)
	}

	span.FinishSpan()
}
