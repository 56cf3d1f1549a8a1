package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEndpoint(t *testing.T) {
	t.Setenv(_otelAgentHostEnv, "")
	t.Setenv(_otelAgentPortEnv, "")
	assert.Equal(t, "otel-agent:4317", Endpoint())

	t.Setenv(_otelAgentHostEnv, "localhost")
	t.Setenv(_otelAgentPortEnv, "14317")
	assert.Equal(t, "localhost:14317", Endpoint())
}

func TestNewPropagator(t *testing.T) {
	fields := newPropagator().Fields()
	for _, f := range []string{"traceparent", "baggage", "x-b3-traceid", "x-b3-spanid"} {
		assert.Contains(t, fields, f)
	}
}

func TestNewTracerProvider_NotSampledWithoutParent(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := newTracerProvider(exp)

	_, span := tp.Tracer("test").Start(context.Background(), "root")
	span.End()

	require.NoError(t, tp.ForceFlush(context.Background()))
	assert.False(t, span.SpanContext().IsSampled())
	assert.Empty(t, exp.GetSpans())
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewMeterProvider_HistogramBuckets(t *testing.T) {
	reader := metric.NewManualReader()
	mp := newMeterProvider(reader)

	h, err := mp.Meter("test").Float64Histogram("latency")
	require.NoError(t, err)
	h.Record(context.Background(), 30000)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	hist, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, _histogramBuckets, hist.DataPoints[0].Bounds)
}
