package proxy

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/requestid"
	"mercator-hq/callisto/pkg/telemetry/metrics"
	"mercator-hq/callisto/pkg/telemetry/tracing"
)

// Handler proxies requests to the configured upstream and runs the tracing
// lifecycle around each one: decide, start, forward, finalize.
type Handler struct {
	store     *config.Store
	tracer    *tracing.Tracer
	collector *metrics.Collector
	logger    *slog.Logger
	client    *http.Client
}

// NewHandler creates a proxy handler. The configuration is re-read from the
// store on every request so hot reloads take effect without a restart.
func NewHandler(store *config.Store, tracer *tracing.Tracer, collector *metrics.Collector, logger *slog.Logger) *Handler {
	return &Handler{
		store:     store,
		tracer:    tracer,
		collector: collector,
		logger:    logger,
		client: &http.Client{
			// No automatic redirects: responses pass through verbatim.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Load()
	start := time.Now()

	stream := NewStream(start, r.Proto)
	if r.URL.Path == cfg.Proxy.HealthCheckPath {
		stream.SetHealthCheck(true)
	}

	// Every request carries an id; generated ids start untraced.
	if r.Header.Get(HeaderRequestID) == "" {
		r.Header.Set(HeaderRequestID, requestid.New())
	}

	view := NewRequestView(r)
	decision := tracing.IsTracing(stream, view)
	h.collector.RecordDecision(decision.Reason.String(), decision.Traced)

	tracingCfg := &cfg.Telemetry.Tracing
	var span tracing.Span
	if tracingCfg.Enabled && decision.Traced {
		span = h.tracer.StartSpan(tracingCfg, r.Header, view, stream, decision)
		if span != nil {
			h.collector.RecordSpanStarted()
		}
	}

	rw := newResponseWriter(w, stream)
	if stream.HealthCheck() {
		rw.WriteHeader(http.StatusOK)
		io.WriteString(rw, "ok")
	} else {
		h.forward(rw, r, stream, cfg)
	}

	if span != nil {
		tracing.FinalizeSpan(span, view, stream, tracingCfg)
		h.collector.RecordSpanFinished()
	}

	h.collector.RecordRequest(rw.status, time.Since(start))
	h.logger.Debug("request complete",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rw.status,
		"traced", decision.Traced,
		"reason", decision.Reason.String(),
		"response_flags", stream.ResponseFlags(),
	)
}

// forward sends the request to the upstream and copies the response back,
// recording byte counts and transfer milestones on the stream.
func (h *Handler) forward(rw *responseWriter, r *http.Request, stream *Stream, cfg *config.Config) {
	upstream, err := url.Parse(cfg.Proxy.UpstreamURL)
	if err != nil || upstream.Host == "" {
		stream.AddFlags(FlagNoRouteFound)
		http.Error(rw, "no upstream configured", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		stream.AddFlags(FlagDownstreamConnectionTermination)
		http.Error(rw, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		stream.AddBytesReceived(uint64(len(body)))
	}

	stream.SetUpstreamHost(tracing.HostInfo{
		Address: upstream.Host,
		Cluster: cfg.Proxy.UpstreamCluster,
	})

	ctx, cancel := context.WithTimeout(r.Context(), cfg.Proxy.UpstreamTimeout)
	defer cancel()

	target := *upstream
	target.Path = r.URL.Path
	target.RawQuery = r.URL.RawQuery

	req, err := http.NewRequestWithContext(ctx, r.Method, target.String(), bytes.NewReader(body))
	if err != nil {
		stream.AddFlags(FlagNoRouteFound)
		http.Error(rw, "failed to build upstream request", http.StatusInternalServerError)
		return
	}
	req.Header = r.Header.Clone()

	stream.MarkUpstreamTxStart()
	resp, err := h.client.Do(req)
	stream.MarkUpstreamTxEnd()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			stream.AddFlags(FlagUpstreamRequestTimeout)
			http.Error(rw, "upstream timeout", http.StatusGatewayTimeout)
		} else {
			stream.AddFlags(FlagUpstreamConnectionFailure)
			http.Error(rw, "upstream unavailable", http.StatusServiceUnavailable)
		}
		h.logger.Warn("upstream request failed",
			"upstream", upstream.Host,
			"error", err,
		)
		return
	}
	defer resp.Body.Close()
	stream.MarkUpstreamRxStart()

	copyHeaders(rw.Header(), resp.Header)
	rw.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(rw, resp.Body); err != nil {
		stream.AddFlags(FlagUpstreamConnectionTermination)
	}
	stream.MarkUpstreamRxEnd()
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
