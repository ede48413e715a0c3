// Package tracing exposes the tracer used for dispatch spans.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer in exported spans.
const InstrumentationName = "github.com/kkutopiaa/tdd-restful-service"

// Tracer returns a tracer from the global provider, or a no-op tracer when
// tracing is disabled. Exporter setup is left to the global provider.
func Tracer(enabled bool) trace.Tracer {
	if !enabled {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return otel.Tracer(InstrumentationName)
}
