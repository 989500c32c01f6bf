// Package health provides liveness and readiness probes for the proxy's
// admin surface.
//
// Liveness is a constant-time "are we running" answer. Readiness runs the
// registered component checks (upstream reachability, for example) with a
// per-check timeout and degrades to 503 when any component fails.
//
// The probes live on the same mux as the proxied traffic; their paths are
// served directly and never forwarded upstream.
package health
