// Package telemetry sets up OpenTelemetry tracing for fitdash.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// EndpointEnv enables OTLP/HTTP export when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Provider hands out tracers. Without an endpoint it is a no-op.
type Provider struct {
	sdk  *sdktrace.TracerProvider
	noop oteltrace.TracerProvider
}

// NewProvider creates an OTLP-exporting provider if OTEL_EXPORTER_OTLP_ENDPOINT
// is set, otherwise a disabled one. serviceName is overridden by OTEL_SERVICE_NAME.
func NewProvider(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return &Provider{noop: noop.NewTracerProvider()}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collector
	)
	if err != nil {
		return nil, err
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		serviceName = name
	}
	if serviceName == "" {
		serviceName = "fitdash"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return &Provider{sdk: sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Tracer returns a named tracer.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	if p.sdk != nil {
		return p.sdk.Tracer(name)
	}
	return p.noop.Tracer(name)
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
