package request

import "errors"

var (
	// ErrInvalidURL is returned when the base URL plus the computed query
	// string is not a valid absolute URL.
	ErrInvalidURL = errors.New("request: invalid url")

	// ErrMultipleBodiesFound is returned by Builder.Build when more than one
	// Body was added and RejectMultipleBodies was requested. New never returns
	// it: the first Body wins.
	ErrMultipleBodiesFound = errors.New("request: multiple bodies found")

	// ErrEncodeBody is returned when the Content of a Body fails to encode.
	ErrEncodeBody = errors.New("request: unable to encode body")

	// ErrEmptyURLParam empty param value for replacing in a URL placeholder.
	ErrEmptyURLParam = errors.New("request: empty param value for url placeholder")

	// ErrMissingURLParam missing param for replacing in a URL placeholder.
	ErrMissingURLParam = errors.New("request: missing param value for url placeholder")
)
