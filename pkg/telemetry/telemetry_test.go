package telemetry

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/stretchr/testify/assert"
)

type recordingStatsd struct {
	statsd.NoOpClient

	mu      sync.Mutex
	metrics []string
}

func (r *recordingStatsd) record(kind, name string, value any, tags []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = append(r.metrics, fmt.Sprintf("%s %s %v %v", kind, name, value, tags))
}

func (r *recordingStatsd) Incr(name string, tags []string, _ float64) error {
	r.record("incr", name, 1, tags)
	return nil
}

func (r *recordingStatsd) Timing(name string, value time.Duration, tags []string, _ float64) error {
	r.record("timing", name, value, tags)
	return nil
}

func (r *recordingStatsd) Gauge(name string, value float64, tags []string, _ float64) error {
	r.record("gauge", name, value, tags)
	return nil
}

func TestMetrics_UseContextClient(t *testing.T) {
	rec := &recordingStatsd{}
	ctx := Context(context.Background(), NewStatsdClient(rec))

	Incr(ctx, "requests", []string{"a:b"})
	Timing(ctx, "latency", time.Second, nil)
	Gauge(ctx, "pool", 3, nil)

	assert.Equal(t, []string{
		"incr requests 1 [a:b]",
		"timing latency 1s []",
		"gauge pool 3 []",
	}, rec.metrics)
}

func TestMetrics_DefaultTracer(t *testing.T) {
	assert.Equal(t, DefaultTracer, FromContext(context.Background()))
	assert.NotPanics(t, func() {
		Incr(context.Background(), "requests", nil)
		Count(context.Background(), "requests", 2, nil)
		Histogram(context.Background(), "size", 1.5, nil)
	})
}

func TestSanitizeMetricTagValue(t *testing.T) {
	testCases := map[string]string{
		"":                         "",
		"/":                        "/",
		"/users/":                  "/users",
		"/users/{id}":              "/users/_id",
		"/users/{id}/orders/{oid}": "/users/_id/orders/_oid",
	}

	for in, expected := range testCases {
		assert.Equal(t, expected, SanitizeMetricTagValue(in), in)
	}
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"method:get", "status:200", "cached:false"}, Tags("method", "get", "status", 200, "cached", false))
	assert.Panics(t, func() { Tags("odd") })
	assert.Panics(t, func() { Tags("float", 1.5) })
}
