package executor

import (
	"github.com/luizaranda/go-request/pkg/request"
	"github.com/luizaranda/go-request/pkg/transport"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type executorOptions struct {
	Sender         transport.Sender
	DefaultHeaders map[string]string
	TargetID       string
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Option configures an HTTPExecutor.
type Option func(opts *executorOptions)

// WithSender sets the transport requests are sent through.
func WithSender(s transport.Sender) Option {
	return func(opts *executorOptions) {
		opts.Sender = s
	}
}

// WithRequester sends requests through r, usually an *http.Client.
func WithRequester(r transport.Requester) Option {
	return WithSender(transport.NewAsyncClient(r))
}

// WithDefaultHeaders adds headers set on every request. A header of the
// request with the same key takes precedence.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(opts *executorOptions) {
		for k, v := range headers {
			opts.DefaultHeaders[k] = v
		}
	}
}

// WithDefaultHeader adds a single default header, see WithDefaultHeaders.
func WithDefaultHeader(key, value string) Option {
	return WithDefaultHeaders(map[string]string{key: value})
}

// WithTargetID sets the telemetry target id of the executions whose context
// has none. Keep its cardinality low.
func WithTargetID(targetID string) Option {
	return func(opts *executorOptions) {
		opts.TargetID = targetID
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. Default is the
// global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(opts *executorOptions) {
		opts.TracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider. Default is the
// global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(opts *executorOptions) {
		opts.MeterProvider = mp
	}
}

func defaultHeaders(m map[string]string) []request.Header {
	return request.HeaderCollection{Headers: m}.Flatten()
}
