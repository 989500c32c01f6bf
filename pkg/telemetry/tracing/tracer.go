package tracing

import (
	"net/http"

	"mercator-hq/callisto/pkg/config"
)

// Canonical operation names used for span naming.
const (
	OperationIngress = "ingress"
	OperationEgress  = "egress"
)

// Tracer starts spans for traced requests. It is a thin layer over a
// Driver that owns span naming and process identity tags; span content is
// written later by FinalizeSpan.
type Tracer struct {
	driver Driver
	node   config.NodeConfig
}

// NewTracer creates a Tracer backed by driver. The node identity is stamped
// on every span the tracer starts.
func NewTracer(driver Driver, node config.NodeConfig) *Tracer {
	return &Tracer{
		driver: driver,
		node:   node,
	}
}

// StartSpan asks the driver for a span named after the configured
// operation. Egress spans carry the destination host in the name
// ("egress api.example.com"). The returned span is nil when the driver
// declined to create one; that is a valid untraced outcome, not an error.
//
// headers is the live request header map, borrowed for the duration of the
// call so the driver can inject propagation context.
func (t *Tracer) StartSpan(cfg *config.TracingConfig, headers http.Header, req RequestHeaders, info StreamInfo, decision Decision) Span {
	name := cfg.OperationName
	if cfg.OperationName == OperationEgress {
		host, _ := req.Host()
		name += " " + host
	}

	span := t.driver.StartSpan(cfg, headers, name, info.StartTime(), decision)
	if span != nil {
		span.SetTag(TagComponent, TagValueProxy)
		span.SetTag(TagNodeID, t.node.ID)
		span.SetTag(TagZone, t.node.Zone)
	}

	return span
}
