package httpclient

import (
	"net/http"
	"time"

	"github.com/luizaranda/go-request/pkg/transport"
)

var _defaultTransport = transport.NewPooled("request-default")

// DefaultTransport returns the transport used by New when none is given.
func DefaultTransport() *transport.PooledTransport {
	return _defaultTransport
}

// CheckRedirectFunc is the signature of http.Client.CheckRedirect.
type CheckRedirectFunc func(req *http.Request, via []*http.Request) error

// NoRedirect makes the client return the redirect response instead of
// following it.
func NoRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

type clientOptions struct {
	Timeout       time.Duration
	CheckRedirect CheckRedirectFunc
	Transport     http.RoundTripper
	ReqHooks      []transport.RequestHook
	ResHooks      []transport.ResponseHook
	TargetID      string
}

// Option configures the client built by New.
type Option func(opts *clientOptions)

// WithTransport sets the base round tripper. Use transport.NewPooled to keep
// connection stats.
func WithTransport(t http.RoundTripper) Option {
	return func(options *clientOptions) {
		options.Transport = t
	}
}

// DisableTimeout disables the client timeout. The dial and TLS timeouts of the
// transport still apply.
func DisableTimeout() Option { return WithTimeout(0) }

// WithTimeout sets the timeout of each request. Zero disables it, negative
// values are ignored.
func WithTimeout(t time.Duration) Option {
	return func(options *clientOptions) {
		if t >= 0 {
			options.Timeout = t
		}
	}
}

// FollowRedirects controls whether redirects are followed, up to 10 of them.
func FollowRedirects(follow bool) Option {
	return func(options *clientOptions) {
		if follow {
			options.CheckRedirect = nil
		} else {
			options.CheckRedirect = NoRedirect
		}
	}
}

// WithRequestHook adds hooks run before every request.
func WithRequestHook(hooks ...transport.RequestHook) Option {
	return func(options *clientOptions) {
		options.ReqHooks = append(options.ReqHooks, hooks...)
	}
}

// WithResponseHook adds hooks run after every response.
func WithResponseHook(hooks ...transport.ResponseHook) Option {
	return func(options *clientOptions) {
		options.ResHooks = append(options.ResHooks, hooks...)
	}
}

// WithRequestID tags every request lacking one with a random X-Request-Id.
func WithRequestID() Option {
	return WithRequestHook(RequestIDHook)
}

// WithTargetID sets the telemetry target id of requests whose context has
// none.
func WithTargetID(targetID string) Option {
	return func(options *clientOptions) {
		options.TargetID = targetID
	}
}

// DefaultTimeout is the client timeout used by New.
var DefaultTimeout = 3 * time.Second

// New builds an *http.Client recording telemetry on every request. Redirects
// are followed unless FollowRedirects(false) is given.
func New(opts ...Option) *http.Client {
	config := clientOptions{
		Timeout:   DefaultTimeout,
		Transport: DefaultTransport(),
	}

	for _, opt := range opts {
		opt(&config)
	}

	return &http.Client{
		Timeout:       config.Timeout,
		CheckRedirect: config.CheckRedirect,
		Transport:     roundTripper(&config),
	}
}

func roundTripper(config *clientOptions) http.RoundTripper {
	chain := transport.RoundTripChain{transport.UserAgentDecorator()}

	if config.TargetID != "" {
		chain = append(chain, transport.TargetDecorator(config.TargetID))
	}

	chain = append(chain,
		transport.HookDecorator(config.ReqHooks, config.ResHooks),
		transport.TraceDecorator(),
		// Must be last so the otel span wraps the actual round trip only.
		transport.OpenTelemetryDecorator(),
	)

	return chain.Apply(config.Transport)
}
