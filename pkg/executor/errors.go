package executor

import "errors"

var (
	// ErrNoResponse is returned by Execute when the transport completes with
	// something that is not an HTTP response.
	ErrNoResponse = errors.New("executor: no response")

	// ErrUnableToDecodeBody is returned by DecodeAs when the response has no
	// body or the body cannot be decoded into the target type.
	ErrUnableToDecodeBody = errors.New("executor: unable to decode body")
)
