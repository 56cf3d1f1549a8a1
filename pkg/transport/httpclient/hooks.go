package httpclient

import (
	"net/http"

	"github.com/gofrs/uuid"
)

// RequestIDHeader is the header set by RequestIDHook.
const RequestIDHeader = "X-Request-Id"

// RequestIDHook sets a random UUID v4 as RequestIDHeader when the request has
// none.
func RequestIDHook(req *http.Request) error {
	if req.Header.Get(RequestIDHeader) != "" {
		return nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	req.Header.Set(RequestIDHeader, id.String())
	return nil
}
