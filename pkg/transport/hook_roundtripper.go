package transport

import (
	"net/http"
)

// HookDecorator returns a RoundTripDecorator running req hooks before and res
// hooks after every round trip.
func HookDecorator(req []RequestHook, res []ResponseHook) RoundTripDecorator {
	return func(base http.RoundTripper) http.RoundTripper {
		return &HookRoundTripper{
			Transport:    base,
			RequestHook:  req,
			ResponseHook: res,
		}
	}
}

// RequestHook runs before each request. Only the request headers and context
// are safe to mutate.
type RequestHook func(*http.Request) error

// ResponseHook runs after each round trip with its outcome. Reading or closing
// the response body from a hook affects the caller.
type ResponseHook func(*http.Request, *http.Response, error)

// HookRoundTripper runs hooks around the round trips of Transport.
type HookRoundTripper struct {
	Transport    http.RoundTripper
	RequestHook  []RequestHook
	ResponseHook []ResponseHook
}

// RoundTrip runs the request hooks in order, stopping at the first error,
// then the underlying round trip and finally every response hook.
func (t *HookRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, hook := range t.RequestHook {
		if err := hook(req); err != nil {
			return nil, err
		}
	}

	res, err := t.Transport.RoundTrip(req)

	for _, hook := range t.ResponseHook {
		hook(req, res, err)
	}

	return res, err
}
