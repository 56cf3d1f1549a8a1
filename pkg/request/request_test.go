package request

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	req, err := New("https://example.com", MethodPost,
		NewHeader("A", "B"),
		NewQuery("q", "1"),
		NewBody(func() Content { return Text("hi") }),
	)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com?q=1", req.URL().String())
	assert.Equal(t, MethodPost, req.Method())
	assert.Equal(t, []Header{{Key: "A", Value: "B"}}, req.Headers())

	body, err := req.Body()
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), body)
}

func TestNew_URL(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		components []Component
		expected   string
	}{
		{
			name:     "no query keeps trailing question mark",
			url:      "https://example.com/path",
			expected: "https://example.com/path?",
		},
		{
			name:       "queries in declaration order",
			url:        "https://example.com",
			components: []Component{NewQuery("b", "2"), NewQuery("a", "1")},
			expected:   "https://example.com?b=2&a=1",
		},
		{
			name: "collections after direct queries",
			url:  "https://example.com",
			components: []Component{
				QueryCollection{Items: map[string]string{"y": "2", "x": "1"}},
				NewQuery("q", "0"),
			},
			expected: "https://example.com?q=0&x=1&y=2",
		},
		{
			name:       "keys and values are escaped",
			url:        "https://example.com",
			components: []Component{NewQuery("full name", "ada lovelace&co")},
			expected:   "https://example.com?full+name=ada+lovelace%26co",
		},
		{
			name:       "encoded values are escaped again",
			url:        "https://example.com",
			components: []Component{NewQuery("q", "a%20b")},
			expected:   "https://example.com?q=a%2520b",
		},
		{
			name:       "params fill placeholders",
			url:        "https://example.com/users/{id}/orders/{order}",
			components: []Component{NewParam("id", "42"), NewParam("order", "a/b")},
			expected:   "https://example.com/users/42/orders/a%2Fb?",
		},
		{
			name:       "headers and bodies do not touch the url",
			url:        "https://example.com",
			components: []Component{NewHeader("q", "1"), NewBody(func() Content { return Text("x") })},
			expected:   "https://example.com?",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req, err := New(tt.url, MethodGet, tt.components...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.URL().String())
		})
	}
}

func TestNew_InvalidURL(t *testing.T) {
	for _, raw := range []string{
		"",
		"not a url",
		"example.com/path",
		"/relative/path",
		"http://[::1",
		"https://",
		"https://exa mple.com",
	} {
		t.Run(raw, func(t *testing.T) {
			req, err := New(raw, MethodGet, NewQuery("q", "1"))
			assert.Nil(t, req)
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestNew_Params(t *testing.T) {
	t.Run("missing param", func(t *testing.T) {
		_, err := New("https://example.com/{id}/{other}", MethodGet, NewParam("id", "1"))
		assert.ErrorIs(t, err, ErrMissingURLParam)
	})

	t.Run("empty param", func(t *testing.T) {
		_, err := New("https://example.com/{id}", MethodGet, NewParam("id", ""))
		assert.ErrorIs(t, err, ErrEmptyURLParam)
	})

	t.Run("template is kept", func(t *testing.T) {
		req, err := New("https://example.com/{id}", MethodGet, NewParam("id", "7"))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/{id}", req.Template())
		assert.Equal(t, "/7", req.URL().Path)
	})
}

func TestNew_DefaultMethod(t *testing.T) {
	req, err := New("https://example.com", "")
	require.NoError(t, err)
	assert.Equal(t, MethodGet, req.Method())
}

func TestNew_Methods(t *testing.T) {
	testCases := map[Method]Method{
		"":       MethodGet,
		"get":    MethodGet,
		"Post":   MethodPost,
		"DELETE": "DELETE",
		"patch":  "PATCH",
	}

	for in, expected := range testCases {
		req, err := New("https://example.com", in)
		require.NoError(t, err)
		assert.Equal(t, expected, req.Method(), string(in))
	}
}

func TestRequest_Headers(t *testing.T) {
	req, err := New("https://example.com", MethodGet,
		HeaderCollection{Headers: map[string]string{"C2": "c2", "C1": "c1"}},
		NewHeader("D1", "d1"),
		NewQuery("q", "1"),
		HeaderCollection{Headers: map[string]string{"E1": "e1"}},
		NewHeader("D2", "d2"),
	)
	require.NoError(t, err)

	headers := req.Headers()
	require.Len(t, headers, 5)
	assert.Equal(t, []Header{
		{Key: "D1", Value: "d1"},
		{Key: "D2", Value: "d2"},
		{Key: "C1", Value: "c1"},
		{Key: "C2", Value: "c2"},
		{Key: "E1", Value: "e1"},
	}, headers)
}

func TestRequest_QueryItems(t *testing.T) {
	req, err := New("https://example.com", MethodGet,
		QueryCollection{Items: map[string]string{"b": "2", "a": "1"}},
		NewQuery("z", "26"),
	)
	require.NoError(t, err)

	assert.Equal(t, []Query{
		{Key: "z", Value: "26"},
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}, req.QueryItems())
}

func TestRequest_Body(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name       string
		components []Component
		expected   []byte
	}{
		{
			name: "no body",
		},
		{
			name:       "text",
			components: []Component{NewBody(func() Content { return Text("héllo") })},
			expected:   []byte("héllo"),
		},
		{
			name:       "json",
			components: []Component{NewBody(func() Content { return JSON(payload{Name: "ada"}) })},
			expected:   []byte(`{"name":"ada"}`),
		},
		{
			name:       "raw",
			components: []Component{NewBody(func() Content { return Raw([]byte{0x01, 0x02}) })},
			expected:   []byte{0x01, 0x02},
		},
		{
			name:       "form",
			components: []Component{NewBody(func() Content { return Form(url.Values{"b": {"2"}, "a": {"1"}}) })},
			expected:   []byte("a=1&b=2"),
		},
		{
			name: "first body wins",
			components: []Component{
				NewBody(func() Content { return Text("first") }),
				NewBody(func() Content { return Text("second") }),
			},
			expected: []byte("first"),
		},
		{
			name:       "nil producer",
			components: []Component{Body{}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req, err := New("https://example.com", MethodPost, tt.components...)
			require.NoError(t, err)

			body, err := req.Body()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestRequest_BodyIsProducedOnEveryAccess(t *testing.T) {
	calls := 0
	req, err := New("https://example.com", MethodPost, NewBody(func() Content {
		calls++
		return Text("x")
	}))
	require.NoError(t, err)
	assert.Zero(t, calls)

	_, _ = req.Body()
	_, _ = req.Body()
	assert.Equal(t, 2, calls)
}

func TestRequest_BodyEncodeError(t *testing.T) {
	req, err := New("https://example.com", MethodPost, NewBody(func() Content {
		return JSON(make(chan int))
	}))
	require.NoError(t, err)

	body, err := req.Body()
	assert.Nil(t, body)
	assert.ErrorIs(t, err, ErrEncodeBody)

	_, err = req.Wire()
	assert.ErrorIs(t, err, ErrEncodeBody)
}

func TestRequest_Immutable(t *testing.T) {
	components := []Component{NewHeader("A", "1")}
	req, err := New("https://example.com", MethodGet, components...)
	require.NoError(t, err)

	components[0] = NewHeader("A", "changed")
	req.Components()[0] = NewHeader("A", "changed")
	req.URL().Host = "changed.com"

	assert.Equal(t, []Header{{Key: "A", Value: "1"}}, req.Headers())
	assert.Equal(t, "example.com", req.URL().Host)
}

func TestBuilder(t *testing.T) {
	req, err := NewBuilder("https://example.com/users/{id}").
		Method(MethodPost).
		Param("id", "3").
		Header("Content-Type", "text/plain").
		Query("verbose", "true").
		Body(func() Content { return Text("one") }).
		Body(func() Content { return Text("two") }).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/users/3?verbose=true", req.URL().String())
	assert.Equal(t, MethodPost, req.Method())

	body, err := req.Body()
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), body)
}

func TestBuilder_RejectMultipleBodies(t *testing.T) {
	b := NewBuilder("https://example.com").
		RejectMultipleBodies().
		Body(func() Content { return Text("one") })

	_, err := b.Build()
	require.NoError(t, err)

	req, err := b.Body(func() Content { return Text("two") }).Build()
	assert.Nil(t, req)
	assert.True(t, errors.Is(err, ErrMultipleBodiesFound))
}
