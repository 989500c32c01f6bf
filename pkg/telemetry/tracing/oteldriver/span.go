package oteldriver

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// span adapts an OpenTelemetry span to the tracing.Span interface.
type span struct {
	span trace.Span
}

func (s *span) SetTag(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

func (s *span) Log(timestamp time.Time, event string) {
	s.span.AddEvent(event, trace.WithTimestamp(timestamp))
}

func (s *span) FinishSpan() {
	s.span.End()
}
