package transport

import (
	"expvar"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/luizaranda/go-request/pkg/telemetry/dialtrace"
)

var _expvar = expvar.NewMap("request.transport.conn_pools")

// NewPooled creates an *http.Transport with the given options and counts the
// connections it holds open per network address.
func NewPooled(name string, opts ...Option) *PooledTransport {
	return NewPooledFromTransport(name, NewTransport(opts...))
}

// NewPooledFromTransport decorates the dialer of transport to count its open
// connections. Stats are also published through expvar under name.
func NewPooledFromTransport(name string, transport *http.Transport) *PooledTransport {
	t := &PooledTransport{
		Transport: transport,
		Name:      name,
	}

	t.DialContext = dialtrace.NewTracedDialer(t.DialContext, dialtrace.DialerTrace{
		GotConn:   t.traceConn(1),
		CloseConn: t.traceConn(-1),
	})

	_expvar.Set(t.Name, expvar.Func(func() any { return t.Stats() }))

	return t
}

// PooledTransport is an *http.Transport reporting how many connections it has
// open per network address.
type PooledTransport struct {
	*http.Transport

	Name  string
	stats sync.Map
}

func (t *PooledTransport) traceConn(delta int64) func(network, address string) {
	return func(network, address string) {
		value, _ := t.stats.LoadOrStore(network+":"+address, new(int64))
		atomic.AddInt64(value.(*int64), delta)
	}
}

// Stats returns the number of open connections keyed by "network:address".
func (t *PooledTransport) Stats() map[string]int64 {
	stats := map[string]int64{}

	t.stats.Range(func(key, value any) bool {
		stats[key.(string)] = atomic.LoadInt64(value.(*int64))
		return true
	})

	return stats
}
