/*
Package executor runs the requests built with package request.

An Executor turns a *request.Request into a *Response. HTTPExecutor does it
over a callback based transport.Sender, by default an *http.Client built with
package httpclient:

	exec := executor.New(executor.WithDefaultHeader("Accept", "application/json"))

	res, err := exec.Execute(ctx, req)
	if err != nil {
		// ErrNoResponse, or the request could not be built.
	}
	if res.Err != nil {
		// Network failure: res.Status is 0 and there is no data.
	}

Network failures are returned as data in Response.Err, not as an error from
Execute, so callers must check both.

A Decoder executes a request and unmarshals the response body into a typed
value:

	parsed, err := executor.DecodeAs[User](ctx, executor.NewDecoder(exec), req)
*/
package executor
