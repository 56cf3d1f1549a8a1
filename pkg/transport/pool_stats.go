package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/luizaranda/go-request/pkg/telemetry"
)

const _connPoolMetric = "request.transport.conn_pool"

// DefaultPoolStatsInterval is the polling interval of ReportPoolStats when
// none is given.
var DefaultPoolStatsInterval = 10 * time.Second

// ReportPoolStats sends the open connection count of every PooledTransport as
// a gauge through client, every interval, until ctx is done. It blocks, run it
// on its own goroutine.
func ReportPoolStats(ctx context.Context, client telemetry.Client, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPoolStatsInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			reportPoolStats(client)
		case <-ctx.Done():
			return
		}
	}
}

type connPoolsInfo map[string]map[string]int64

func reportPoolStats(client telemetry.Client) {
	var info connPoolsInfo
	if err := json.Unmarshal([]byte(_expvar.String()), &info); err != nil {
		return
	}

	for pool, conns := range info {
		for address, n := range conns {
			client.Gauge(_connPoolMetric, float64(n), telemetry.Tags("pool", pool, "address", address))
		}
	}
}
