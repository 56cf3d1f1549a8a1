package request

import (
	"context"
	"net/http"
	"net/url"

	"github.com/luizaranda/go-request/pkg/transport/httpclient"
)

// Wire is the fully resolved form of a Request, ready for a transport.
type Wire struct {
	URL    *url.URL
	Method Method
	Header []Header
	Body   []byte
}

// Wire derives the wire form of r. It fails with ErrEncodeBody when the body
// content cannot be encoded.
func (r *Request) Wire() (Wire, error) {
	body, err := r.Body()
	if err != nil {
		return Wire{}, err
	}

	return Wire{
		URL:    r.URL(),
		Method: r.method,
		Header: r.Headers(),
		Body:   body,
	}, nil
}

// NewHTTPRequest builds the *http.Request for w bound to ctx.
//
// Headers are applied with http.Header.Set: defaults first, then w.Header in
// order, so the last value set for a key wins and request headers override
// defaults. No Content-Type is inferred.
func (w Wire) NewHTTPRequest(ctx context.Context, defaults ...Header) (*http.Request, error) {
	var body any
	if w.Body != nil {
		body = w.Body
	}

	req, err := httpclient.NewRequest(ctx, w.Method.String(), w.URL.String(), body)
	if err != nil {
		return nil, err
	}

	for _, h := range defaults {
		req.Header.Set(h.Key, h.Value)
	}

	for _, h := range w.Header {
		req.Header.Set(h.Key, h.Value)
	}

	return req, nil
}
