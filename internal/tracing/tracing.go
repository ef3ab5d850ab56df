package tracing

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Environment variables honored alongside the config file. Both follow the
// OpenTelemetry SDK conventions so an existing collector setup just works.
const (
	EnvServiceName = "OTEL_SERVICE_NAME"
	EnvEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Config describes span export. Environment variables take precedence over
// both fields.
type Config struct {
	// Enabled turns on export even without OTEL_EXPORTER_OTLP_ENDPOINT,
	// using Endpoint as the collector address.
	Enabled     bool
	ServiceName string
	Endpoint    string
}

// Provider owns the tracer provider lifecycle for one CLI run.
type Provider struct {
	tp      *sdktrace.TracerProvider
	enabled bool
}

// Init builds a Provider from config and environment. When export is
// disabled the returned Provider hands out no-op tracers and Shutdown is
// free.
func Init(ctx context.Context, cfg Config) (*Provider, error) {
	endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint))
	fromEnv := endpoint != ""
	if !fromEnv {
		endpoint = strings.TrimSpace(cfg.Endpoint)
	}
	if !fromEnv && (!cfg.Enabled || endpoint == "") {
		return &Provider{}, nil
	}

	serviceName := strings.TrimSpace(os.Getenv(EnvServiceName))
	if serviceName == "" {
		serviceName = cfg.ServiceName
	}
	if serviceName == "" {
		serviceName = "namesim"
	}

	opts := []otlptracehttp.Option{}
	if !fromEnv {
		// The exporter reads OTEL_EXPORTER_OTLP_ENDPOINT itself; only a
		// config-sourced endpoint needs passing explicitly.
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return &Provider{tp: tp, enabled: true}, nil
}

// Enabled reports whether spans are actually exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Tracer returns a tracer for the given instrumentation name, no-op when
// export is disabled.
func (p *Provider) Tracer(name string) trace.Tracer {
	if !p.Enabled() {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.tp.Tracer(name)
}

// Shutdown flushes any buffered spans. Safe to call on a disabled provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
