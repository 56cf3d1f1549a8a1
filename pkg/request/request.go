package request

import (
	"fmt"
	"net/url"
	"strings"
)

// Request is an immutable HTTP request described by its components. It is
// safe to share between goroutines as long as the Body producers are.
type Request struct {
	template   string
	url        *url.URL
	method     Method
	components []Component
}

// New builds a Request for rawURL.
//
// The query string is computed from the same items QueryItems returns (direct
// Query components first, then QueryCollection entries) and appended to rawURL
// after a "?", which is kept even if there are no items. If any Param
// component exists, its {name} placeholder in rawURL is replaced first.
//
// An empty method means MethodGet, any other is upper cased.
//
// New fails with ErrInvalidURL when the result is not an absolute URL. When
// several Body components are given the first one wins; use
// Builder.RejectMultipleBodies to fail instead.
func New(rawURL string, method Method, components ...Component) (*Request, error) {
	method = Method(strings.ToUpper(string(method)))
	if method == "" {
		method = MethodGet
	}

	cs := make([]Component, len(components))
	copy(cs, components)

	r := &Request{template: rawURL, method: method, components: cs}

	u, err := resolveURL(rawURL, r.params(), r.QueryItems())
	if err != nil {
		return nil, err
	}
	r.url = u

	return r, nil
}

// URL returns a copy of the resolved request URL.
func (r *Request) URL() *url.URL { return cloneURL(r.url) }

// Template returns the URL as given to New, before placeholders were
// expanded and the query string appended.
func (r *Request) Template() string { return r.template }

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// Components returns a copy of the components in declaration order.
func (r *Request) Components() []Component {
	out := make([]Component, len(r.components))
	copy(out, r.components)
	return out
}

// Headers returns every direct Header in declaration order followed by the
// entries of every HeaderCollection, collections taken in declaration order.
func (r *Request) Headers() []Header {
	var direct, collected []Header
	for _, c := range r.components {
		switch t := c.(type) {
		case Header:
			direct = append(direct, t)
		case HeaderCollection:
			collected = append(collected, t.Flatten()...)
		}
	}
	return append(direct, collected...)
}

// QueryItems follows the same rule as Headers for Query and QueryCollection.
func (r *Request) QueryItems() []Query {
	var direct, collected []Query
	for _, c := range r.components {
		switch t := c.(type) {
		case Query:
			direct = append(direct, t)
		case QueryCollection:
			collected = append(collected, t.Flatten()...)
		}
	}
	return append(direct, collected...)
}

// Body returns the encoded content of the first Body component, or nil if
// there is none. Any later Body is ignored.
func (r *Request) Body() ([]byte, error) {
	for _, c := range r.components {
		b, ok := c.(Body)
		if !ok {
			continue
		}

		if b.Producer == nil {
			return nil, nil
		}

		content := b.Producer()
		if content == nil {
			return nil, nil
		}

		data, err := content.Encode()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeBody, err)
		}
		return data, nil
	}
	return nil, nil
}

func (r *Request) params() map[string]string {
	var params map[string]string
	for _, c := range r.components {
		if p, ok := c.(Param); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[p.Name] = p.Value
		}
	}
	return params
}

func countBodies(components []Component) int {
	n := 0
	for _, c := range components {
		if _, ok := c.(Body); ok {
			n++
		}
	}
	return n
}
