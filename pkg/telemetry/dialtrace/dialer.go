// Package dialtrace instruments net.Dialer connections with callbacks.
package dialtrace

import (
	"context"
	"net"
)

// DialContextFunc has the signature of net.Dialer.DialContext.
type DialContextFunc func(ctx context.Context, network, address string) (net.Conn, error)

// NewTracedDialer wraps dial so that trace hooks run on connect, connect
// failure and close.
func NewTracedDialer(dial DialContextFunc, trace DialerTrace) DialContextFunc {
	d := &tracedDialer{dial: dial, trace: trace}
	return d.DialContext
}

// DialerTrace is a set of hooks run at the stages of a connection. Any hook
// may be nil. Hooks may be called concurrently.
type DialerTrace struct {
	GotConn   func(network, address string)
	ConnError func(network, address string, err error)
	CloseConn func(network, address string)
}

type tracedDialer struct {
	dial  DialContextFunc
	trace DialerTrace
}

func (d *tracedDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	conn, err := d.dial(ctx, network, address)
	if err != nil {
		if d.trace.ConnError != nil {
			d.trace.ConnError(network, address, err)
		}
		return nil, err
	}

	if d.trace.GotConn != nil {
		d.trace.GotConn(network, address)
	}

	return &tracedConn{
		Conn: conn,
		closeFunc: func() {
			if d.trace.CloseConn != nil {
				d.trace.CloseConn(network, address)
			}
		},
	}, nil
}

type tracedConn struct {
	net.Conn

	closed    bool
	closeFunc func()
}

// Close closes the connection and runs the CloseConn hook once.
func (c *tracedConn) Close() error {
	err := c.Conn.Close()
	if !c.closed {
		c.closed = true
		c.closeFunc()
	}
	return err
}
