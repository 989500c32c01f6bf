// Package oteldriver implements the tracing.Driver interface on the
// OpenTelemetry SDK with an OTLP gRPC exporter.
package oteldriver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials/insecure"
)

// Driver creates spans through an OpenTelemetry tracer provider and exports
// them over OTLP. It implements tracing.Driver.
//
// Sampling is not delegated to the SDK: the caller has already made the
// trace decision, so the provider always records. W3C trace context is
// extracted from and re-injected into the request headers around span
// creation.
type Driver struct {
	provider   *sdktrace.TracerProvider
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	closed     atomic.Bool
}

// New creates a Driver from the tracing configuration. The caller must
// Shutdown the driver to flush pending spans:
//
//	defer driver.Shutdown(context.Background())
func New(cfg *config.TracingConfig) (*Driver, error) {
	if cfg == nil {
		return nil, errors.New("tracing config is nil")
	}

	exporter, err := createExporter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return &Driver{
		provider: provider,
		tracer:   provider.Tracer("mercator-callisto"),
		propagator: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	}, nil
}

// StartSpan implements tracing.Driver. It returns nil after Shutdown.
func (d *Driver) StartSpan(cfg *config.TracingConfig, headers http.Header, name string, startTime time.Time, decision tracing.Decision) tracing.Span {
	if d.closed.Load() {
		return nil
	}

	ctx := d.propagator.Extract(context.Background(), propagation.HeaderCarrier(headers))

	ctx, otelSpan := d.tracer.Start(ctx, name,
		trace.WithTimestamp(startTime),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("sampling.reason", decision.Reason.String()),
		),
	)

	// Make the new span the parent of whatever the request spawns upstream.
	d.propagator.Inject(ctx, propagation.HeaderCarrier(headers))

	return &span{span: otelSpan}
}

// Shutdown flushes pending spans and stops the provider. StartSpan declines
// all requests afterwards.
func (d *Driver) Shutdown(ctx context.Context) error {
	if d.closed.Swap(true) {
		return nil
	}
	return d.provider.Shutdown(ctx)
}

func createExporter(cfg *config.TracingConfig) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case "otlp":
		return createOTLPExporter(cfg)
	default:
		return nil, fmt.Errorf("unsupported exporter: %s", cfg.Exporter)
	}
}

func createOTLPExporter(cfg *config.TracingConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
	}

	if cfg.OTLP.Insecure {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()))
	}

	if cfg.OTLP.Timeout > 0 {
		opts = append(opts, otlptracegrpc.WithTimeout(cfg.OTLP.Timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := otlptracegrpc.NewClient(opts...)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	return exporter, nil
}
