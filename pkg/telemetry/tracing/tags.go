package tracing

// Span tag keys. These names are part of the contract with downstream trace
// analysis tooling and must not change.
const (
	TagComponent         = "component"
	TagNodeID            = "node_id"
	TagZone              = "zone"
	TagGuidXRequestID    = "guid:x-request-id"
	TagGuidXClientTrace  = "guid:x-client-trace-id"
	TagHTTPURL           = "http.url"
	TagHTTPMethod        = "http.method"
	TagHTTPProtocol      = "http.protocol"
	TagHTTPStatusCode    = "http.status_code"
	TagDownstreamCluster = "downstream_cluster"
	TagUpstreamCluster   = "upstream_cluster"
	TagUserAgent         = "user_agent"
	TagRequestSize       = "request_size"
	TagResponseSize      = "response_size"
	TagResponseFlags     = "response_flags"
	TagError             = "error"
)

// Fixed tag values.
const (
	TagValueProxy = "proxy"
	TagValueTrue  = "true"
)

// Span log event names for verbose byte-transfer milestones.
const (
	LogLastDownstreamRxByteReceived = "last_downstream_rx_byte_received"
	LogFirstUpstreamTxByteSent      = "first_upstream_tx_byte_sent"
	LogLastUpstreamTxByteSent       = "last_upstream_tx_byte_sent"
	LogFirstUpstreamRxByteReceived  = "first_upstream_rx_byte_received"
	LogLastUpstreamRxByteReceived   = "last_upstream_rx_byte_received"
	LogFirstDownstreamTxByteSent    = "first_downstream_tx_byte_sent"
	LogLastDownstreamTxByteSent     = "last_downstream_tx_byte_sent"
)
