// Mercator Callisto is a tracing edge proxy.
//
// It forwards HTTP traffic to a configured upstream and decides, per
// request, whether the request should be traced, enriching each span with
// a canonical set of request, response, and timing tags before export.
//
// Usage:
//
//	# Start the proxy with default configuration
//	callisto run
//
//	# Start with a custom configuration file
//	callisto run --config /etc/callisto/config.yaml
//
//	# Validate a configuration file
//	callisto validate --config /etc/callisto/config.yaml
//
//	# Show version information
//	callisto version
package main

func main() {
	Execute()
}
