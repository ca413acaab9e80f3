package engine

import "github.com/pior/gometa/meta"

// Result is what a submitted request eventually resolves to.
type Result struct {
	Response *meta.Response
	Err      error
}

// pendingEntry is one FIFO slot: a request already written to the wire,
// awaiting its response. Grounded on the teacher's Command{ready chan
// struct{}} / SetResponse / Wait continuation pattern in
// protocol/commands.go, adapted to a buffered channel so completing an
// entry never blocks on a caller who has stopped waiting (spec §4.3,
// cancellation semantics).
type pendingEntry struct {
	done chan Result
}

func newPendingEntry() *pendingEntry {
	return &pendingEntry{done: make(chan Result, 1)}
}

func (p *pendingEntry) complete(resp *meta.Response, err error) {
	p.done <- Result{Response: resp, Err: err}
}

// pendingQueue is a simple slice-backed FIFO. It is only ever touched
// from the Engine's run loop goroutine, so it needs no locking.
type pendingQueue struct {
	entries []*pendingEntry
}

func (q *pendingQueue) push(e *pendingEntry) {
	q.entries = append(q.entries, e)
}

func (q *pendingQueue) popFront() (*pendingEntry, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	e := q.entries[0]
	q.entries[0] = nil
	q.entries = q.entries[1:]
	return e, true
}

func (q *pendingQueue) len() int { return len(q.entries) }

func (q *pendingQueue) drain(err error) {
	for _, e := range q.entries {
		e.complete(nil, err)
	}
	q.entries = nil
}
