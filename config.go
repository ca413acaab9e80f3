package memcache

import (
	"context"
	"net"
	"time"

	"github.com/pior/gometa/engine"
	"github.com/pior/gometa/meta"
)

// DialFunc dials the memcached server. Overridable for tests, grounded on
// the teacher's Config.DialFunc in client.go.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Config configures Dial. Grounded on the teacher's Config struct
// (client.go), trimmed of pool-sizing fields that no longer apply now
// that a Client owns exactly one connection.
type Config struct {
	// Address is the "host:port" to dial.
	Address string

	// DialTimeout bounds the TCP handshake. Defaults to 5 seconds.
	DialTimeout time.Duration

	// DialFunc overrides the dialer, e.g. to inject a fake or
	// instrumented net.Conn in tests. Defaults to net.Dialer.DialContext.
	DialFunc DialFunc

	// QueueCapacity bounds the number of operations waiting for the
	// Engine's run loop to write them; Submit blocks while that queue is
	// full (spec §4.3/§5, back-pressure). Operations already written and
	// awaiting a response are not counted. Defaults to 256.
	QueueCapacity int

	// MaxValueSize rejects oversized values before they reach the wire.
	// Defaults to 1 MiB.
	MaxValueSize int
}

const defaultDialTimeout = 5 * time.Second

func (c Config) withDefaults() Config {
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultDialTimeout
	}
	if c.DialFunc == nil {
		c.DialFunc = func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{Timeout: c.DialTimeout}
			return d.DialContext(ctx, network, address)
		}
	}
	if c.QueueCapacity <= 0 {
		c.QueueCapacity = engine.DefaultQueueCapacity
	}
	if c.MaxValueSize <= 0 {
		c.MaxValueSize = meta.DefaultMaxValueSize
	}
	return c
}
