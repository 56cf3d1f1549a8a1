package executor

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/luizaranda/go-request/pkg/log"
	"github.com/luizaranda/go-request/pkg/request"
	"github.com/luizaranda/go-request/pkg/telemetry/tracing"
	"github.com/luizaranda/go-request/pkg/transport"
	"github.com/luizaranda/go-request/pkg/transport/httpclient"
	"go.opentelemetry.io/otel"
)

// Executor turns a Request into a Response.
type Executor interface {
	Execute(ctx context.Context, req *request.Request) (*Response, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req *request.Request) (*Response, error)

func (f ExecutorFunc) Execute(ctx context.Context, req *request.Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPExecutor executes requests over a transport.Sender, one attempt per
// call. It holds only configuration set by New and is safe for concurrent
// use.
type HTTPExecutor struct {
	sender         transport.Sender
	defaultHeaders []request.Header
	targetID       string
	instruments    *instruments
}

var _ Executor = (*HTTPExecutor)(nil)

// New returns an HTTPExecutor. Without WithSender or WithRequester requests go
// through an *http.Client built by httpclient.New.
func New(opts ...Option) *HTTPExecutor {
	options := executorOptions{
		DefaultHeaders: make(map[string]string),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Sender == nil {
		options.Sender = transport.NewAsyncClient(httpclient.New())
	}

	return &HTTPExecutor{
		sender:         options.Sender,
		defaultHeaders: defaultHeaders(options.DefaultHeaders),
		targetID:       options.TargetID,
		instruments:    newInstruments(options.TracerProvider, options.MeterProvider),
	}
}

// Execute sends req and waits for the transport to complete.
//
// A transport error does not fail Execute: it is returned in Response.Err with
// a zero Status. Execute fails with ErrNoResponse when the transport completes
// with something other than an HTTP reply, and with the underlying error when
// req cannot be turned into an HTTP request.
//
// ctx is attached to the outgoing *http.Request. Execute itself does not
// watch it: cancellation is whatever the transport does with it.
func (e *HTTPExecutor) Execute(ctx context.Context, req *request.Request) (*Response, error) {
	if e.targetID != "" && tracing.TargetID(ctx) == "" {
		ctx = tracing.WithTargetID(ctx, e.targetID)
	}
	ctx = tracing.WithEndpointTemplate(ctx, endpointTemplate(req))

	wire, err := req.Wire()
	if err != nil {
		return nil, err
	}

	ctx, span := e.instruments.startSpan(ctx, wire)
	defer span.End()

	httpReq, err := wire.NewHTTPRequest(ctx, e.defaultHeaders...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	start := time.Now()
	res, err := toResponse(e.send(httpReq))
	elapsed := time.Since(start)

	e.instruments.record(ctx, span, wire.Method, elapsed, res, err)

	switch {
	case err != nil:
		log.Error(ctx, "request executor: uninterpretable transport completion",
			log.String("method", wire.Method.String()),
			log.String("url", wire.URL.Redacted()),
			log.Err(err))
		return nil, err
	case res.Err != nil:
		log.Warn(ctx, "request executor: transport error",
			log.String("method", wire.Method.String()),
			log.String("url", wire.URL.Redacted()),
			log.Duration("elapsed", elapsed),
			log.Err(res.Err))
	default:
		log.Debug(ctx, "request executor: request executed",
			log.String("method", wire.Method.String()),
			log.String("url", wire.URL.Redacted()),
			log.Int("status", res.Status),
			log.Duration("elapsed", elapsed))
	}

	return res, nil
}

type completion struct {
	reply transport.Reply
	err   error
}

// send bridges the callback of the Sender into a blocking call. The Sender
// must complete exactly once: a second completion panics, a missing one
// blocks forever.
func (e *HTTPExecutor) send(req *http.Request) (transport.Reply, error) {
	done := make(chan completion, 1)

	var completed atomic.Bool
	e.sender.Send(req, func(reply transport.Reply, err error) {
		if !completed.CompareAndSwap(false, true) {
			panic("request executor: transport completed a request more than once")
		}
		done <- completion{reply: reply, err: err}
	})

	c := <-done
	return c.reply, c.err
}

// endpointTemplate is the path of the URL template of req, used to label
// telemetry with low cardinality.
func endpointTemplate(req *request.Request) string {
	u, err := url.Parse(req.Template())
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
