// Package tracing wires optional OpenTelemetry span export for the CLI.
//
// Export is enabled when the configuration asks for it or when
// OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise every tracer handed out is a
// no-op and the run is unaffected. Spans travel over OTLP/HTTP, which is what
// a local Jaeger collector accepts out of the box.
package tracing
