package request

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/valyala/fasttemplate"
)

// resolveURL expands the {name} placeholders of rawURL with params, appends
// the query string and parses the result. The "?" separator is appended even
// when query is empty.
func resolveURL(rawURL string, params map[string]string, query []Query) (*url.URL, error) {
	if len(params) > 0 {
		expanded, err := fasttemplate.ExecuteFuncStringWithErr(rawURL, "{", "}", func(w io.Writer, tag string) (int, error) {
			return tagFunc(w, tag, params)
		})
		if err != nil {
			return nil, err
		}
		rawURL = expanded
	}

	u, err := url.ParseRequestURI(rawURL + "?" + queryString(query))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, rawURL)
	}

	return u, nil
}

// queryString joins the items as key=value pairs in the given order. Unlike
// url.Values.Encode it does not sort.
func queryString(items []Query) string {
	var sb strings.Builder
	for i, q := range items {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(q.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(q.Value))
	}
	return sb.String()
}

func tagFunc(w io.Writer, tag string, params map[string]string) (int, error) {
	v, ok := params[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingURLParam, tag)
	}

	if v == "" {
		return 0, fmt.Errorf("%w: %s", ErrEmptyURLParam, tag)
	}

	return w.Write([]byte(url.PathEscape(v)))
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	u2 := new(url.URL)
	*u2 = *u
	if u.User != nil {
		u2.User = new(url.Userinfo)
		*u2.User = *u.User
	}
	return u2
}
