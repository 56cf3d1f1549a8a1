package transport

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// OpenTelemetryDecorator returns a decorator that creates a client span per
// round trip and injects the trace context into the outgoing headers.
func OpenTelemetryDecorator(opts ...otelhttp.Option) RoundTripDecorator {
	return func(base http.RoundTripper) http.RoundTripper {
		return otelhttp.NewTransport(base, opts...)
	}
}
