package request

import (
	"net/http"
	"sort"
)

// Method is the HTTP method of a Request. The set is open: MethodGet and
// MethodPost are provided, any other token such as "DELETE" is sent as is
// after New upper cases it.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

func (m Method) String() string {
	if m == "" {
		return string(MethodGet)
	}
	return string(m)
}

// Component is a fragment contributed to a Request. The set of components is
// closed: Header, HeaderCollection, Query, QueryCollection, Param and Body.
type Component interface {
	component()
}

// Header is a single request header.
type Header struct {
	Key   string
	Value string
}

// HeaderCollection contributes every entry of Headers as an independent
// Header. Entries are flattened in ascending key order.
type HeaderCollection struct {
	Headers map[string]string
}

// Query is a single query parameter.
type Query struct {
	Key   string
	Value string
}

// QueryCollection contributes every entry of Items as an independent Query.
// Entries are flattened in ascending key order.
type QueryCollection struct {
	Items map[string]string
}

// Param fills the {Name} placeholder of the request URL with Value.
type Param struct {
	Name  string
	Value string
}

// Body lazily produces the request body. Producer is called on every access
// to Request.Body.
type Body struct {
	Producer func() Content
}

func (Header) component()           {}
func (HeaderCollection) component() {}
func (Query) component()            {}
func (QueryCollection) component()  {}
func (Param) component()            {}
func (Body) component()             {}

// NewHeader returns a Header component.
func NewHeader(key, value string) Header { return Header{Key: key, Value: value} }

// NewQuery returns a Query component.
func NewQuery(key, value string) Query { return Query{Key: key, Value: value} }

// NewParam returns a Param component.
func NewParam(name, value string) Param { return Param{Name: name, Value: value} }

// NewBody returns a Body component whose content is produced by fn.
func NewBody(fn func() Content) Body { return Body{Producer: fn} }

// Flatten returns the entries as Header values in ascending key order.
func (c HeaderCollection) Flatten() []Header {
	out := make([]Header, 0, len(c.Headers))
	for _, k := range sortedKeys(c.Headers) {
		out = append(out, Header{Key: k, Value: c.Headers[k]})
	}
	return out
}

// Flatten returns the entries as Query values in ascending key order.
func (c QueryCollection) Flatten() []Query {
	out := make([]Query, 0, len(c.Items))
	for _, k := range sortedKeys(c.Items) {
		out = append(out, Query{Key: k, Value: c.Items[k]})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
