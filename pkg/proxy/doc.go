// Package proxy implements the HTTP forwarding path and the per-request
// state the tracing core consumes.
//
// Each request is handled on a single flow of control: the handler builds a
// Stream (the request's accumulated facts), wraps the headers in a
// RequestView, asks the tracing package for a decision, forwards the
// request upstream while recording byte counts, response flags, and
// transfer milestones, and finalizes the span exactly once when the
// response (or failure) is known.
//
// Stream implements tracing.StreamInfo and RequestView implements
// tracing.RequestHeaders; the tracing package never sees net/http types
// beyond the borrowed header map it injects propagation context into.
package proxy
