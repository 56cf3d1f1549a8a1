package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizaranda/go-request/pkg/telemetry/tracing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func okRoundTripper(seen *[]*http.Request) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		*seen = append(*seen, req)
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
	})
}

func TestRoundTripChain_Apply(t *testing.T) {
	var order []string
	decorator := func(name string) RoundTripDecorator {
		return func(base http.RoundTripper) http.RoundTripper {
			return roundTripFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return base.RoundTrip(req)
			})
		}
	}

	var seen []*http.Request
	rt := RoundTripChain{decorator("outer"), decorator("inner")}.Apply(okRoundTripper(&seen))

	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Len(t, seen, 1)
}

func TestUserAgentRoundTripper(t *testing.T) {
	var seen []*http.Request
	rt := UserAgentDecorator()(okRoundTripper(&seen))

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Del("User-Agent")
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("User-Agent", "custom/1.0")
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, DefaultUserAgent, seen[0].UserAgent())
	assert.Equal(t, "custom/1.0", seen[1].UserAgent())
}

func TestHookRoundTripper(t *testing.T) {
	var seen []*http.Request
	var responses []int

	rt := HookDecorator(
		[]RequestHook{func(req *http.Request) error {
			req.Header.Set("X-Hooked", "yes")
			return nil
		}},
		[]ResponseHook{func(_ *http.Request, res *http.Response, err error) {
			if err == nil {
				responses = append(responses, res.StatusCode)
			}
		}},
	)(okRoundTripper(&seen))

	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, "yes", seen[0].Header.Get("X-Hooked"))
	assert.Equal(t, []int{http.StatusOK}, responses)
}

func TestHookRoundTripper_RequestHookError(t *testing.T) {
	boom := errors.New("boom")
	var seen []*http.Request
	rt := HookDecorator([]RequestHook{func(*http.Request) error { return boom }}, nil)(okRoundTripper(&seen))

	res, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, seen)
}

func TestTargetRoundTripper(t *testing.T) {
	var seen []*http.Request
	rt := TargetDecorator("users")(okRoundTripper(&seen))

	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req = req.WithContext(tracing.WithTargetID(req.Context(), "orders"))
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "users", tracing.TargetID(seen[0].Context()))
	assert.Equal(t, "orders", tracing.TargetID(seen[1].Context()))
}

func TestTracedRoundTripper(t *testing.T) {
	var seen []*http.Request
	rt := TraceDecorator()(okRoundTripper(&seen))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/users/1", nil)
	req = req.WithContext(tracing.WithEndpointTemplate(req.Context(), "/users/{id}"))

	res, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "GET /users/{id}", segmentProcedure(req))
}

func TestPooledTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	pooled := NewPooled("test-pooled", OptionIdleConnTimeout(0))
	client := &http.Client{Transport: pooled}

	res, err := client.Get(srv.URL)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	stats := pooled.Stats()
	assert.Equal(t, int64(1), stats["tcp:"+srv.Listener.Addr().String()])
}

func TestNewTransport(t *testing.T) {
	tr := NewTransport(OptionResponseHeaderTimeout(42), OptionIdleConnTimeout(7))
	assert.EqualValues(t, 42, tr.ResponseHeaderTimeout)
	assert.EqualValues(t, 7, tr.IdleConnTimeout)
	assert.NotNil(t, tr.DialContext)
}
