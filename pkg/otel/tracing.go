package otel

import (
	"context"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
)

func startTracerProvider(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	client := otlptracegrpc.NewClient(otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
	exp, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, err
	}

	tp := newTracerProvider(exp)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(newPropagator())

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

// Sampling follows the parent span; requests started without one are not
// sampled.
func newTracerProvider(exp trace.SpanExporter) *trace.TracerProvider {
	return trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithSampler(trace.ParentBased(trace.NeverSample())),
	)
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
		b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
	)
}
