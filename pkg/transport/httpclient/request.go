package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// ReaderFunc returns a fresh reader over a request body each time it is
// called.
type ReaderFunc func() (io.Reader, error)

// GetBodyFunc adapts r to the http.Request.GetBody signature.
func (r ReaderFunc) GetBodyFunc() (io.ReadCloser, error) {
	tmp, err := r()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(tmp), nil
}

// NewRequest creates an http.Request whose body can be read again through
// GetBody, which lets net/http replay it on redirects.
//
// rawBody may be nil, a []byte, a *bytes.Buffer, a *bytes.Reader, a
// ReaderFunc or any io.Reader, which is then read in full.
func NewRequest(ctx context.Context, method, url string, rawBody any) (*http.Request, error) {
	if rawBody == nil {
		return http.NewRequestWithContext(ctx, method, url, nil)
	}

	readerFunc, contentLength, err := bodyReader(rawBody)
	if err != nil {
		return nil, err
	}

	body, err := readerFunc()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.ContentLength = contentLength
	req.GetBody = readerFunc.GetBodyFunc

	return req, nil
}

type lenReader interface{ Len() int }

func bodyReader(rawBody any) (ReaderFunc, int64, error) {
	switch body := rawBody.(type) {
	case ReaderFunc:
		tmp, err := body()
		if err != nil {
			return nil, 0, err
		}
		var n int64
		if lr, ok := tmp.(lenReader); ok {
			n = int64(lr.Len())
		}
		return body, n, nil

	case []byte:
		return func() (io.Reader, error) { return bytes.NewReader(body), nil }, int64(len(body)), nil

	case *bytes.Buffer:
		buf := body.Bytes()
		return func() (io.Reader, error) { return bytes.NewReader(buf), nil }, int64(len(buf)), nil

	case *bytes.Reader:
		snapshot := *body
		return func() (io.Reader, error) {
			r := snapshot
			return &r, nil
		}, int64(body.Len()), nil

	case io.Reader:
		buf, err := io.ReadAll(body)
		if err != nil {
			return nil, 0, err
		}
		if len(buf) == 0 {
			return func() (io.Reader, error) { return http.NoBody, nil }, 0, nil
		}
		return func() (io.Reader, error) { return bytes.NewReader(buf), nil }, int64(len(buf)), nil

	default:
		return nil, 0, fmt.Errorf("httpclient: cannot handle body of type %T", rawBody)
	}
}
