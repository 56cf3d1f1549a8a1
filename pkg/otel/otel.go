// Package otel bootstraps the global OpenTelemetry tracer and meter providers
// that package executor and the otelhttp transport record through.
package otel

import (
	"context"
	"errors"
	"fmt"
	"os"
)

const (
	_defaultAgentHost = "otel-agent"
	_defaultAgentPort = "4317"

	_otelAgentHostEnv = "OTEL_HOST"
	_otelAgentPortEnv = "OTEL_PORT"
)

// ShutdownFunc flushes and stops the providers started by Start.
type ShutdownFunc func() error

// Start exports traces and metrics over OTLP gRPC to the agent at
// OTEL_HOST:OTEL_PORT (otel-agent:4317 by default) and installs the providers
// globally.
func Start(ctx context.Context) (ShutdownFunc, error) {
	endpoint := Endpoint()

	shutdownTracing, err := startTracerProvider(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	shutdownMetrics, err := startMetricsProvider(ctx, endpoint)
	if err != nil {
		return nil, errors.Join(err, shutdownTracing())
	}

	return func() error {
		return errors.Join(shutdownTracing(), shutdownMetrics())
	}, nil
}

// Endpoint returns the address of the OTel agent taken from the environment.
func Endpoint() string {
	host := os.Getenv(_otelAgentHostEnv)
	if host == "" {
		host = _defaultAgentHost
	}
	port := os.Getenv(_otelAgentPortEnv)
	if port == "" {
		port = _defaultAgentPort
	}
	return fmt.Sprintf("%s:%s", host, port)
}
