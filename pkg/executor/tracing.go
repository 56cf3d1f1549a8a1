package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/luizaranda/go-request/pkg/internal"
	"github.com/luizaranda/go-request/pkg/request"
	"github.com/luizaranda/go-request/pkg/telemetry"
	"github.com/luizaranda/go-request/pkg/telemetry/tracing"
	"github.com/luizaranda/go-request/pkg/transport"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	_instrumentationName = "github.com/luizaranda/go-request/pkg/executor"
	_spanName            = "RequestExecutor"

	_executeMetric  = "request.executor.execute"
	_durationMetric = "request.executor.duration"

	_endpointSpanAttribute = attribute.Key("request.executor.endpoint")
	_targetSpanAttribute   = attribute.Key("request.executor.target_id")
)

type instruments struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider) *instruments {
	tracer := tp.Tracer(_instrumentationName, trace.WithInstrumentationVersion(internal.Version))

	meter := mp.Meter(_instrumentationName, metric.WithInstrumentationVersion(internal.Version))
	duration, err := meter.Float64Histogram(_durationMetric,
		metric.WithDescription("Duration of request executions."),
		metric.WithUnit("ms"))
	if err != nil {
		duration, _ = noop.NewMeterProvider().Meter(_instrumentationName).Float64Histogram(_durationMetric)
	}

	return &instruments{tracer: tracer, duration: duration}
}

func (i *instruments) startSpan(ctx context.Context, wire request.Wire) (context.Context, trace.Span) {
	ctx, span := i.tracer.Start(ctx, fmt.Sprintf("%s %s", _spanName, wire.Method), trace.WithSpanKind(trace.SpanKindClient))

	span.SetAttributes(
		semconv.HTTPRequestMethodKey.String(wire.Method.String()),
		semconv.URLFull(wire.URL.Redacted()),
		semconv.ServerAddress(wire.URL.Hostname()),
		_endpointSpanAttribute.String(tracing.EndpointTemplate(ctx)),
	)

	if targetID := tracing.TargetID(ctx); targetID != "" {
		span.SetAttributes(_targetSpanAttribute.String(targetID))
	}

	return ctx, span
}

// record publishes the outcome of an execution: span status, otel duration
// histogram and a statsd counter.
func (i *instruments) record(ctx context.Context, span trace.Span, method request.Method, elapsed time.Duration, res *Response, err error) {
	status, transportErr := 0, err
	if res != nil {
		status = res.Status
		if res.Err != nil {
			transportErr = res.Err
		}
	}

	switch {
	case transportErr != nil:
		recordError(span, transportErr)
	default:
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
		if status >= 400 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		}
	}

	tags := append([]string{
		"method:" + strings.ToLower(method.String()),
	}, transport.StatusTags(status, transportErr)...)

	if targetID := tracing.TargetID(ctx); targetID != "" {
		tags = append(tags, "target_id:"+telemetry.SanitizeMetricTagValue(targetID))
	}

	telemetry.Incr(ctx, _executeMetric, tags)

	attrs := []attribute.KeyValue{
		semconv.HTTPRequestMethodKey.String(method.String()),
	}
	if transportErr == nil {
		attrs = append(attrs, semconv.HTTPResponseStatusCode(status))
	}
	i.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), metric.WithAttributes(attrs...))
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
