package transport

import (
	"net/http"

	"github.com/luizaranda/go-request/pkg/internal"
)

// DefaultUserAgent is set on requests that carry no User-Agent.
var DefaultUserAgent = "go-request/" + internal.Version

// UserAgentDecorator returns a RoundTripDecorator that sets DefaultUserAgent
// on requests without a User-Agent header.
func UserAgentDecorator() RoundTripDecorator {
	return func(base http.RoundTripper) http.RoundTripper {
		return &UserAgentRoundTripper{Transport: base}
	}
}

// UserAgentRoundTripper sets a default User-Agent header only if the caller
// did not provide one.
type UserAgentRoundTripper struct {
	Transport http.RoundTripper
}

func (ua *UserAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.UserAgent() == "" {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	return ua.Transport.RoundTrip(req)
}
