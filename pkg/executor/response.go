package executor

import (
	"net/http"
	"sort"
	"strings"

	"github.com/luizaranda/go-request/pkg/transport"
)

// Response is the immutable outcome of an execution.
//
// Either Status is positive, Err is nil and Data holds the body (possibly
// empty), or Status is 0, Data is nil and Err holds the transport error.
type Response struct {
	// Status is the HTTP status code, 0 when no response was received.
	Status int

	// Header holds the response headers in canonical form. Multiple values
	// of a header are joined with ", ".
	Header map[string]string

	Data []byte

	// Err is the transport error when no response was received.
	Err error
}

// OK reports whether a response was received with a 2xx status.
func (r *Response) OK() bool {
	return r.Err == nil && r.Status >= 200 && r.Status < 300
}

// Failed reports whether the request failed at the transport level.
func (r *Response) Failed() bool {
	return r.Err != nil
}

func failedResponse(err error) *Response {
	return &Response{
		Header: map[string]string{},
		Err:    err,
	}
}

// toResponse translates the completion of a transport.Sender.
func toResponse(reply transport.Reply, err error) (*Response, error) {
	if err != nil {
		return failedResponse(err), nil
	}

	httpReply, ok := reply.(*transport.HTTPReply)
	if !ok || httpReply == nil || httpReply.StatusCode <= 0 {
		return nil, ErrNoResponse
	}

	data := httpReply.Data
	if data == nil {
		data = []byte{}
	}

	return &Response{
		Status: httpReply.StatusCode,
		Header: flattenHeader(httpReply.Header),
		Data:   data,
	}, nil
}

// flattenHeader joins the values of each header with ", ". Keys that only
// differ in case are merged, in ascending order of their raw spelling.
func flattenHeader(h http.Header) map[string]string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := make(map[string][]string, len(h))
	for _, k := range keys {
		ck := http.CanonicalHeaderKey(k)
		merged[ck] = append(merged[ck], h[k]...)
	}

	out := make(map[string]string, len(merged))
	for k, v := range merged {
		out[k] = strings.Join(v, ", ")
	}
	return out
}
