/*
Package request builds HTTP requests out of declarative components.

A Request is assembled from an ordered list of Component values (Header,
HeaderCollection, Query, QueryCollection, Param and Body) instead of a hand
built URL and body:

	req, err := request.New("https://api.server.com/users/{id}", request.MethodPost,
		request.NewParam("id", "42"),
		request.NewHeader("Content-Type", "application/json"),
		request.NewQuery("verbose", "true"),
		request.NewBody(func() request.Content { return request.JSON(payload) }),
	)

The URL is resolved once, at construction. Headers, query items and the
serialized body are derived views recomputed on every access. Wire returns the
fully resolved request ready to be handed to a transport, see package
executor for running it.
*/
package request
