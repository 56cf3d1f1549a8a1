package transport

import (
	"io"
	"net/http"
)

// Reply is what a Sender delivers on completion. Only *HTTPReply carries an
// HTTP status, any other value is a response the caller cannot interpret.
type Reply any

// HTTPReply is the reply of an HTTP exchange with its body fully read.
type HTTPReply struct {
	StatusCode int
	Header     http.Header
	Data       []byte
}

// Completion receives the outcome of Sender.Send. It is given either a reply
// or an error.
type Completion func(Reply, error)

// Sender is a callback based transport.
//
// Implementations must call done exactly once per Send, from any goroutine.
// A Sender that never calls done leaves the caller blocked forever.
type Sender interface {
	Send(req *http.Request, done Completion)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(req *http.Request, done Completion)

func (f SenderFunc) Send(req *http.Request, done Completion) { f(req, done) }

// Requester exposes the http.Client.Do method, which is the minimum
// required method for executing HTTP requests.
type Requester interface {
	Do(*http.Request) (*http.Response, error)
}

// AsyncClient is a Sender backed by a Requester, usually an *http.Client built
// with package httpclient. Each Send runs the request on its own goroutine.
type AsyncClient struct {
	Requester Requester
}

// NewAsyncClient returns an AsyncClient sending requests with r.
func NewAsyncClient(r Requester) *AsyncClient {
	return &AsyncClient{Requester: r}
}

// Send executes req and calls done with an *HTTPReply once the response body
// has been read and closed. Errors from Do or from reading the body are
// reported as errors. A Requester returning neither a response nor an error
// completes with (nil, nil).
func (c *AsyncClient) Send(req *http.Request, done Completion) {
	go func() {
		res, err := c.Requester.Do(req)
		if err != nil {
			done(nil, err)
			return
		}

		if res == nil {
			done(nil, nil)
			return
		}

		if res.Body == nil {
			done(&HTTPReply{StatusCode: res.StatusCode, Header: res.Header}, nil)
			return
		}

		defer res.Body.Close()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			done(nil, err)
			return
		}

		done(&HTTPReply{
			StatusCode: res.StatusCode,
			Header:     res.Header,
			Data:       data,
		}, nil)
	}()
}
