package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Default tracer name for Wayfind applications.
const defaultTracerName = "wayfind"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "wayfind").
	TracerName string

	// IncludeState includes the resolved location's state mapping in
	// traces. May contain sensitive query values - disabled by default.
	IncludeState bool

	// Filter determines which operations to trace.
	// Return true to trace the operation, false to skip.
	// If nil, all operations are traced.
	Filter func(op *router.Operation) bool

	// AttributeExtractor extracts custom attributes from the operation.
	// Called after the operation completes.
	AttributeExtractor func(op *router.Operation) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeState enables including the location state in traces.
func WithIncludeState(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeState = include
	}
}

// WithOperationFilter sets a filter function for operations.
func WithOperationFilter(filter func(op *router.Operation) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(op *router.Operation) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:   defaultTracerName,
		IncludeState: false,
		Filter:       nil,
	}
}

// OpenTelemetry creates middleware that traces every navigation operation.
//
// The middleware:
//   - Creates a span per operation named "wayfind <kind> <path>"
//   - Records the matched route, externality and broadcast outcome
//   - Records errors and sets span status
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before wiring the router:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return router.MiddlewareFunc(func(op *router.Operation, next func() error) error {
		if config.Filter != nil && !config.Filter(op) {
			return next()
		}

		attrs := []attribute.KeyValue{
			attribute.String("wayfind.kind", op.Kind.String()),
			attribute.String("wayfind.path", op.Path),
			attribute.Bool("wayfind.replace", op.Replace),
		}

		// Navigation operations carry no caller context; spans root at
		// Background and rely on the global provider for export.
		_, span := config.tracer.Start(
			context.Background(),
			formatSpanName(op),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
			trace.WithTimestamp(time.Now()),
		)
		defer span.End()

		err := next()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		span.SetAttributes(attribute.Bool("wayfind.external", op.External))
		if loc := op.Location; loc != nil {
			span.SetAttributes(
				attribute.String("wayfind.route", loc.Name),
				attribute.String("wayfind.pathname", loc.Pathname),
			)
			if config.IncludeState {
				for k, v := range loc.State {
					span.SetAttributes(attribute.String("wayfind.state."+k, v))
				}
			}
		} else {
			span.SetAttributes(attribute.Bool("wayfind.matched", false))
		}

		if config.AttributeExtractor != nil {
			span.SetAttributes(config.AttributeExtractor(op)...)
		}

		return err
	})
}

// formatSpanName creates a span name from the operation.
func formatSpanName(op *router.Operation) string {
	path := op.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("wayfind %s %s", op.Kind, path)
}
