package request

import (
	"encoding/json"
	"net/url"
)

// Content is the payload kind produced by a Body. Encode must be pure: it is
// called every time the body is read.
//
// New kinds only need to implement Encode, Request never inspects the
// concrete type.
type Content interface {
	Encode() ([]byte, error)
}

// JSON returns Content encoding v with encoding/json.
func JSON(v any) Content { return jsonContent{v: v} }

// Text returns Content holding the UTF-8 bytes of s.
func Text(s string) Content { return textContent(s) }

// Raw returns Content holding b as is.
func Raw(b []byte) Content { return rawContent(b) }

// Form returns Content holding v in application/x-www-form-urlencoded form.
func Form(v url.Values) Content { return formContent(v) }

type jsonContent struct{ v any }

func (c jsonContent) Encode() ([]byte, error) { return json.Marshal(c.v) }

type textContent string

func (c textContent) Encode() ([]byte, error) { return []byte(c), nil }

type rawContent []byte

func (c rawContent) Encode() ([]byte, error) {
	out := make([]byte, len(c))
	copy(out, c)
	return out, nil
}

type formContent url.Values

func (c formContent) Encode() ([]byte, error) { return []byte(url.Values(c).Encode()), nil }
