// Package engine implements the Pipeline Engine from spec §4.3: a single
// multiplexed connection driven by one run-loop goroutine, with a bounded
// inbound queue providing back-pressure and a FIFO of pending
// continuations pairing each written request with its eventual response.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/pior/gometa/meta"
)

// DefaultQueueCapacity is the default bound on submissions waiting for
// the run loop to write them (spec §4.3, back-pressure).
const DefaultQueueCapacity = 256

// submission is one frame in transit from a caller to the run loop.
type submission struct {
	frame []byte
	entry *pendingEntry
}

// Engine multiplexes many concurrent Submit callers over one Transport.
// decodeBuf and cursor are only ever touched by the run loop goroutine;
// the fields above them are safe for concurrent use.
type Engine struct {
	transport Transport

	inbound    chan *submission
	started    atomic.Bool
	terminated chan struct{}
	cause      error

	decodeBuf []byte
	cursor    int
}

// New builds an Engine around transport. Call Run exactly once, typically
// in its own goroutine, to start driving it.
func New(transport Transport, queueCapacity int) *Engine {
	if queueCapacity <= 0 {
		queueCapacity = DefaultQueueCapacity
	}
	return &Engine{
		transport:  transport,
		inbound:    make(chan *submission, queueCapacity),
		terminated: make(chan struct{}),
	}
}

// Submit enqueues frame for writing and blocks until its paired response
// arrives, the Engine terminates, or ctx is done. On ctx cancellation the
// frame may already be on the wire; its eventual response is discarded
// (spec §4.3, cancellation semantics) rather than blocking the caller.
func (e *Engine) Submit(ctx context.Context, frame []byte) (*meta.Response, error) {
	entry := newPendingEntry()
	sub := &submission{frame: frame, entry: entry}

	select {
	case e.inbound <- sub:
	case <-e.terminated:
		return nil, e.terminationError()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-entry.done:
		return r.Response, r.Err
	case <-e.terminated:
		// The submission may have raced the shutdown drain; either way
		// the entry will be (or was) completed with the same cause.
		select {
		case r := <-entry.done:
			return r.Response, r.Err
		default:
			return nil, e.terminationError()
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Engine) terminationError() error {
	if e.cause != nil {
		return e.cause
	}
	return ErrTerminated
}

// Run drives the Engine until ctx is done, the transport fails, or a
// framing violation occurs, then tears the Engine down: every pending
// and future Submit fails with ErrTerminated wrapping the terminal cause.
// Run returns the unwrapped cause (nil only if ctx.Err() is nil, which cannot happen on a normal
// return). It must be called exactly once.
func (e *Engine) Run(ctx context.Context) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	chunks := make(chan []byte)
	readErr := make(chan error, 1)
	go e.readLoop(chunks, readErr)

	var queue pendingQueue
	var cause error

runLoop:
	for {
		select {
		case sub := <-e.inbound:
			if _, err := e.transport.Write(sub.frame); err != nil {
				cause = fmt.Errorf("engine: write: %w", err)
				sub.entry.complete(nil, cause)
				break runLoop
			}
			if err := e.transport.Flush(); err != nil {
				cause = fmt.Errorf("engine: flush: %w", err)
				sub.entry.complete(nil, cause)
				break runLoop
			}
			queue.push(sub.entry)

		case chunk, ok := <-chunks:
			if !ok {
				break
			}
			e.decodeBuf = append(e.decodeBuf, chunk...)
			if drained, err := e.drainResponses(&queue); err != nil {
				cause = err
				break runLoop
			} else if drained {
				e.compact()
			}

		case err := <-readErr:
			cause = fmt.Errorf("engine: read: %w", err)
			break runLoop

		case <-ctx.Done():
			cause = ctx.Err()
			break runLoop
		}
	}

	e.shutdown(cause, &queue)
	return cause
}

// drainResponses decodes every complete frame currently buffered,
// pairing each with the oldest pending entry (spec §4.3: responses
// arrive in the same order requests were written).
func (e *Engine) drainResponses(queue *pendingQueue) (bool, error) {
	drainedAny := false
	for {
		resp, newCursor, ok, err := meta.Decode(e.decodeBuf, e.cursor)
		if err != nil {
			return drainedAny, fmt.Errorf("engine: decode: %w", err)
		}
		if !ok {
			return drainedAny, nil
		}
		e.cursor = newCursor
		drainedAny = true

		entry, hasEntry := queue.popFront()
		if !hasEntry {
			return drainedAny, ErrUnsolicitedResponse
		}
		entry.complete(resp, nil)
	}
}

// compact drops the already-decoded prefix of decodeBuf so memory use
// tracks in-flight data rather than the connection's lifetime total.
func (e *Engine) compact() {
	if e.cursor == 0 {
		return
	}
	remaining := len(e.decodeBuf) - e.cursor
	copy(e.decodeBuf, e.decodeBuf[e.cursor:])
	e.decodeBuf = e.decodeBuf[:remaining]
	e.cursor = 0
}

func (e *Engine) readLoop(chunks chan<- []byte, errc chan<- error) {
	for {
		chunk, err := e.transport.ReadChunk()
		if len(chunk) > 0 {
			select {
			case chunks <- chunk:
			case <-e.terminated:
				return
			}
		}
		if err != nil {
			select {
			case errc <- err:
			case <-e.terminated:
			}
			return
		}
	}
}

func (e *Engine) shutdown(cause error, queue *pendingQueue) {
	if cause == nil {
		cause = ErrTerminated
	} else {
		cause = fmt.Errorf("%w: %w", ErrTerminated, cause)
	}
	e.cause = cause
	queue.drain(cause)
	close(e.terminated)
	_ = e.transport.Close()
}
