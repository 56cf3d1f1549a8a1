package telemetry

import (
	"context"
	"time"
)

// Client records metrics and spans. Implementations are safe for concurrent
// use.
type Client interface {
	Close() error
	StartSpan(ctx context.Context, name string) (context.Context, Span)
	Gauge(name string, value float64, tags []string)
	Count(name string, value int64, tags []string)
	Incr(name string, tags []string)
	Histogram(name string, value float64, tags []string)
	Timing(name string, value time.Duration, tags []string)
}
