// Package memcache is the public facade over the meta-protocol engine: a
// single-connection, pipelined memcached client built on package meta's
// wire codec, package engine's run loop, and package codec's typed value
// translation.
package memcache

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/pior/gometa/engine"
	"github.com/pior/gometa/internal/coarsetime"
	"github.com/pior/gometa/meta"
)

// Client is a single multiplexed connection to one memcached instance.
// Operations are safe for concurrent use; the Client itself owns exactly
// one Transport, driven by one Engine run loop (spec §4.3, §5).
type Client struct {
	engine       *engine.Engine
	maxValueSize int
	bufs         *bufferPool
	cancelRun    context.CancelFunc
	runDone      chan error
	closed       atomic.Bool
}

// Dial connects to cfg.Address and starts the Engine's run loop. The
// returned Client is ready for use immediately; Dial does not wait for
// the connection to be proven healthy beyond the TCP handshake.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()

	conn, err := cfg.DialFunc(ctx, "tcp", cfg.Address)
	if err != nil {
		return nil, err
	}

	transport := engine.NewNetTransport(conn)
	eng := engine.New(transport, cfg.QueueCapacity)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- eng.Run(runCtx) }()

	return &Client{
		engine:       eng,
		maxValueSize: cfg.MaxValueSize,
		bufs:         newBufferPool(128),
		cancelRun:    cancel,
		runDone:      done,
	}, nil
}

// Close shuts the Engine down: the underlying connection is closed and
// every in-flight operation fails with ErrClosed (or the Engine's own
// termination cause, if it shut down for another reason first).
func (c *Client) Close() error {
	c.closed.Store(true)
	c.cancelRun()
	<-c.runDone
	return nil
}

// do encodes req, submits it on the wire, and returns the raw response.
// Return-code interpretation is each operation's own responsibility, per
// spec §4.5's per-command table.
func (c *Client) do(ctx context.Context, req *meta.Request) (*meta.Response, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	buf := c.bufs.get()

	frame, err := meta.Encode(buf, req, c.maxValueSize, coarsetime.Now)
	if err != nil {
		c.bufs.put(buf)
		return nil, err
	}

	resp, err := c.engine.Submit(ctx, frame)
	if err != nil {
		// Submit may have returned before the Engine's run loop got
		// around to writing frame (e.g. ctx cancelled while queued);
		// the buffer's lifetime then outlives this call, so it must
		// not go back into the pool for reuse.
		if c.closed.Load() && ctx.Err() == nil && errors.Is(err, context.Canceled) {
			// Close cancelled the Engine while this operation was in flight.
			return nil, ErrClosed
		}
		return nil, err
	}
	c.bufs.put(frame)
	return resp, nil
}
