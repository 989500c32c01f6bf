package proxy

import "strings"

// Flags is a bitmask of abnormal conditions accumulated over a request
// stream. The short string rendering is recorded on spans and access logs.
type Flags uint16

const (
	// FlagFailedLocalHealthCheck (LH): local service failed its health check.
	FlagFailedLocalHealthCheck Flags = 1 << iota
	// FlagNoHealthyUpstream (UH): no healthy upstream host was available.
	FlagNoHealthyUpstream
	// FlagUpstreamRequestTimeout (UT): the upstream request timed out.
	FlagUpstreamRequestTimeout
	// FlagLocalReset (LR): the connection was reset locally.
	FlagLocalReset
	// FlagUpstreamRemoteReset (UR): the upstream reset the connection.
	FlagUpstreamRemoteReset
	// FlagUpstreamConnectionFailure (UF): connecting upstream failed.
	FlagUpstreamConnectionFailure
	// FlagUpstreamConnectionTermination (UC): the upstream connection
	// terminated mid-stream.
	FlagUpstreamConnectionTermination
	// FlagUpstreamOverflow (UO): an upstream circuit breaker overflowed.
	FlagUpstreamOverflow
	// FlagNoRouteFound (NR): no route matched the request.
	FlagNoRouteFound
	// FlagRateLimited (RL): the request was rate limited.
	FlagRateLimited
	// FlagDownstreamConnectionTermination (DC): the downstream connection
	// terminated before the response completed.
	FlagDownstreamConnectionTermination
)

// shortNames lists every flag with its two-letter code, in the fixed order
// used for rendering.
var shortNames = []struct {
	flag Flags
	code string
}{
	{FlagFailedLocalHealthCheck, "LH"},
	{FlagNoHealthyUpstream, "UH"},
	{FlagUpstreamRequestTimeout, "UT"},
	{FlagLocalReset, "LR"},
	{FlagUpstreamRemoteReset, "UR"},
	{FlagUpstreamConnectionFailure, "UF"},
	{FlagUpstreamConnectionTermination, "UC"},
	{FlagUpstreamOverflow, "UO"},
	{FlagNoRouteFound, "NR"},
	{FlagRateLimited, "RL"},
	{FlagDownstreamConnectionTermination, "DC"},
}

// ShortString renders the set flags as comma-separated two-letter codes in
// a fixed order, or "-" when no flag is set.
func (f Flags) ShortString() string {
	if f == 0 {
		return "-"
	}

	var codes []string
	for _, entry := range shortNames {
		if f&entry.flag != 0 {
			codes = append(codes, entry.code)
		}
	}
	return strings.Join(codes, ",")
}
