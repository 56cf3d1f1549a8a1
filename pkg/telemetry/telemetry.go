package telemetry

import (
	"context"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/newrelic/go-agent/v3/newrelic"
)

var (
	_defaultBufferLen = 500
	_defaultTimeout   = 200 * time.Millisecond
	_defaultRate      = 1.0
	_shutdownTimeout  = 5 * time.Second
)

// DefaultTracer is used by the package level functions when the context holds
// no Client. It discards everything unless replaced.
var DefaultTracer = NewNoOpClient()

type client struct {
	nrApp  *newrelic.Application
	statsd statsd.ClientInterface
}

var _ Client = (*client)(nil)

// Config contains what NewClient needs to connect to its providers.
type Config struct {
	// ApplicationName is the name shown on NewRelic.
	ApplicationName string

	// NewRelicLicense identifies the NewRelic account. An empty license
	// disables NewRelic.
	NewRelicLicense string

	// DatadogAddress is the address of the statsd agent.
	DatadogAddress string
}

// NewClient returns a Client connected to NewRelic and to a statsd agent.
func NewClient(cfg Config) (Client, error) {
	app, err := newrelic.NewApplication(
		newrelic.ConfigEnabled(cfg.NewRelicLicense != ""),
		newrelic.ConfigLicense(cfg.NewRelicLicense),
		newrelic.ConfigAppName(cfg.ApplicationName),
		newrelic.ConfigDistributedTracerEnabled(false),
	)
	if err != nil {
		return nil, err
	}

	s, err := statsd.New(cfg.DatadogAddress,
		statsd.WithMaxMessagesPerPayload(_defaultBufferLen),
		statsd.WithWriteTimeout(_defaultTimeout),
	)
	if err != nil {
		return nil, err
	}

	return &client{nrApp: app, statsd: s}, nil
}

// NewNoOpClient returns a Client that records nothing. Useful in tests.
func NewNoOpClient() Client {
	app, _ := newrelic.NewApplication(newrelic.ConfigEnabled(false))
	return &client{
		statsd: &statsd.NoOpClient{},
		nrApp:  app,
	}
}

// NewStatsdClient returns a Client sending metrics to s, with no NewRelic
// application behind its spans.
func NewStatsdClient(s statsd.ClientInterface) Client {
	return &client{statsd: s}
}

// Close flushes buffered metrics and shuts NewRelic down.
func (c *client) Close() error {
	c.nrApp.Shutdown(_shutdownTimeout)
	return c.statsd.Close()
}

// StartSpan starts a NewRelic transaction, or a segment of the one already in
// ctx. Caller must call Finish on the returned Span.
func (c *client) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	if tx := newrelic.FromContext(ctx); tx != nil {
		return StartSpan(ctx, name)
	}

	tx := c.nrApp.StartTransaction(name)
	return Context(newrelic.NewContext(ctx, tx), c), &nrTransactionSpan{Transaction: tx}
}

func (c *client) Gauge(name string, value float64, tags []string) {
	_ = c.statsd.Gauge(name, value, tags, _defaultRate)
}

func (c *client) Count(name string, value int64, tags []string) {
	_ = c.statsd.Count(name, value, tags, _defaultRate)
}

func (c *client) Incr(name string, tags []string) {
	_ = c.statsd.Incr(name, tags, _defaultRate)
}

func (c *client) Histogram(name string, value float64, tags []string) {
	_ = c.statsd.Histogram(name, value, tags, _defaultRate)
}

func (c *client) Timing(name string, value time.Duration, tags []string) {
	_ = c.statsd.Timing(name, value, tags, _defaultRate)
}
