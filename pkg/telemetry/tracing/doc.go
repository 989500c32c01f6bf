// Package tracing decides which proxied requests are traced and enriches
// the resulting spans with a canonical tag set.
//
// # Overview
//
// The package has two halves. IsTracing is the sampling decision: a pure
// function of the stream's health-check flag and the trace status embedded
// in the request id (see package requestid). FinalizeSpan is the
// enrichment: it maps request, response, and connection metadata onto a
// fixed tag vocabulary and finishes the span.
//
// Span transport is behind the Driver interface; the package never depends
// on a concrete backend. The OpenTelemetry-backed driver lives in the
// oteldriver subpackage.
//
// # Decision Precedence
//
// IsTracing evaluates in strict order, first match wins:
//
//  1. Health check requests are never traced.
//  2. Requests without a request id are never traced.
//  3. The id's embedded status decides: client-forced, service-forced, and
//     sampled ids are traced; anything else is not.
//
// # Lifecycle
//
// Each request's tracing lifecycle is decide → start → finalize, executed
// on the single flow of control handling that request. The span is
// exclusively owned by that flow; FinalizeSpan must be called exactly once
// per started span, including when the request is aborted.
//
//	decision := tracing.IsTracing(info, view)
//	var span tracing.Span
//	if decision.Traced {
//	    span = tracer.StartSpan(cfg, r.Header, view, info, decision)
//	}
//	// ... proxy the request ...
//	if span != nil {
//	    tracing.FinalizeSpan(span, view, info, cfg)
//	}
package tracing
