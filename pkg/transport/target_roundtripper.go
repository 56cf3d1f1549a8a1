package transport

import (
	"net/http"

	"github.com/luizaranda/go-request/pkg/telemetry/tracing"
)

// TargetDecorator returns a RoundTripDecorator tagging requests with targetID
// unless their context already has one.
func TargetDecorator(targetID string) RoundTripDecorator {
	return func(base http.RoundTripper) http.RoundTripper {
		return &TargetRoundTripper{
			Transport: base,
			TargetID:  targetID,
		}
	}
}

// TargetRoundTripper sets a telemetry target id on the context of the requests
// it handles. A target id already present in the context is kept.
type TargetRoundTripper struct {
	Transport http.RoundTripper
	TargetID  string
}

func (t *TargetRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if tracing.TargetID(req.Context()) == "" {
		req = req.WithContext(tracing.WithTargetID(req.Context(), t.TargetID))
	}
	return t.Transport.RoundTrip(req)
}
